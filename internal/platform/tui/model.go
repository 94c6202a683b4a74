package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jigsaw/internal/content"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/game"
	"github.com/vovakirdan/tui-jigsaw/internal/loop"
	"github.com/vovakirdan/tui-jigsaw/internal/phase"
	"github.com/vovakirdan/tui-jigsaw/internal/ui"
)

// ContentLoadedMsg carries the result of the content load task.
type ContentLoadedMsg struct {
	Result content.Result
	Err    error
}

// SceneLoadedMsg carries the loaded UI layout.
type SceneLoadedMsg struct {
	Scene *ui.Scene
	Err   error
}

// Options wires a Model.
type Options struct {
	Root       *game.Root
	Scheduler  *loop.Scheduler
	Surface    *ui.Surface
	Task       game.LoadTask
	LayoutPath string // Empty = embedded layout
	Config     core.RuntimeConfig
	Logger     *log.Logger
}

// Model is the Bubble Tea model hosting the lobby.
type Model struct {
	root       *game.Root
	scheduler  *loop.Scheduler
	surface    *ui.Surface
	task       game.LoadTask
	layoutPath string
	config     core.RuntimeConfig
	logger     *log.Logger

	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates the host model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		root:       opts.Root,
		scheduler:  opts.Scheduler,
		surface:    opts.Surface,
		task:       opts.Task,
		layoutPath: opts.LayoutPath,
		config:     opts.Config.Normalize(),
		logger:     logger.WithPrefix("tui"),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// Init starts the content load, the layout load and the frame pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadContentCmd(m.task, m.config.LoadTimeout),
		loadSceneCmd(m.layoutPath),
		tickCmd(m.config.TickRate),
	)
}

// loadContentCmd runs task off the frame loop.
func loadContentCmd(task game.LoadTask, timeout time.Duration) tea.Cmd {
	if task == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := task(ctx)
		return ContentLoadedMsg{Result: res, Err: err}
	}
}

func loadSceneCmd(path string) tea.Cmd {
	return func() tea.Msg {
		scene, err := ui.LoadScene(path)
		return SceneLoadedMsg{Scene: scene, Err: err}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.scheduler.Tick()
		return m, tickCmd(m.config.TickRate)

	case ContentLoadedMsg:
		m.root.CompleteLoad(msg.Result, msg.Err)
		return m, nil

	case SceneLoadedMsg:
		if msg.Err != nil {
			m.logger.Error("layout load failed", "path", m.layoutPath, "error", msg.Err)
		}
		m.root.AttachUI(msg.Scene)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Lobby input is ignored until ready.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.root.Shutdown()
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionHelp {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.root.Phase() != phase.Ready {
		return m, nil
	}

	switch action {
	case core.ActionLeft:
		m.surface.MoveFocus(-1)
	case core.ActionRight:
		m.surface.MoveFocus(1)
	case core.ActionConfirm:
		m.surface.Activate()
	case core.ActionPlay:
		m.surface.FocusPlay()
	}
	return m, nil
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	p := m.root.Phase()
	switch {
	case p == phase.Ready:
		body := m.surface.Render(m.config.ScreenW)
		return lipgloss.JoinVertical(lipgloss.Left, body, "", helpStyle.Render(m.help.View(m.keys)))
	case p.Failed():
		// The lobby is never shown once loading failed
		return statusStyle.Render("q to quit")
	default:
		return statusStyle.Render("loading... (" + p.String() + ")")
	}
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
