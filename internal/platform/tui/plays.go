package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

// Play journal layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the per-size sidebar
	sidebarWidth       = 20  // Width of the per-size sidebar
	maxPlays           = 100 // Max plays to load
)

// PlaysKeyMap defines the key bindings for the play journal.
type PlaysKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultPlaysKeyMap returns default key bindings.
func DefaultPlaysKeyMap() PlaysKeyMap {
	return PlaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PlaysModel is the Bubble Tea model for the play journal screen.
type PlaysModel struct {
	store       *storage.Store
	plays       []storage.PlayEntry
	stats       []storage.SizeStats
	table       table.Model
	help        help.Model
	keys        PlaysKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewPlaysModel creates a new play journal model.
func NewPlaysModel(store *storage.Store, width, height int) PlaysModel {
	m := PlaysModel{
		store:       store,
		keys:        DefaultPlaysKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *PlaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "Size", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 18},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the journal. Errors leave the view empty.
func (m *PlaysModel) load() {
	m.plays, m.stats = nil, nil
	if m.store != nil {
		if plays, err := m.store.RecentPlays(maxPlays); err == nil {
			m.plays = plays
		}
		if stats, err := m.store.PlaysBySize(); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current plays.
func (m *PlaysModel) updateTableRows() {
	rows := make([]table.Row, len(m.plays))
	for i, p := range m.plays {
		rows[i] = table.Row{
			fmt.Sprintf("%d", p.ID),
			fmt.Sprintf("%d", p.DifficultySize),
			fmt.Sprintf("%d", p.Score),
			p.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the play journal model.
func (m PlaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the play journal.
func (m PlaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the play journal.
func (m PlaysModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "PLAY JOURNAL")))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := boxStyle.Render(m.renderTableContent())

	if m.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderSidebar())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists play counts per difficulty size.
func (m PlaysModel) renderSidebar() string {
	var b strings.Builder
	b.WriteString("By size\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")
	for _, st := range m.stats {
		b.WriteString(fmt.Sprintf("%-6d %5d\n", st.DifficultySize, st.Plays))
	}
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m PlaysModel) renderTableContent() string {
	if len(m.plays) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No plays recorded yet.\nPress play in the lobby to start one!")
	}

	return m.table.View()
}

// RunPlays runs the play journal screen.
func RunPlays(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewPlaysModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
