package ui

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jigsaw/internal/assets"
	"github.com/vovakirdan/tui-jigsaw/internal/command"
)

// Element names bound to command element ids.
var elementNames = [command.ElementCount]string{
	command.PlayerScore:         "score-label",
	command.PlayButtonIcon:      "play-icon",
	command.PlayButton:          "play-button",
	command.PuzzlePictureView:   "PuzzlePicture",
	command.PuzzleStartView:     "PuzzlePreview",
	command.DifficultyContainer: "difficulty-container",
	command.PlayerScoreIcon:     "coin-icon",
}

// ClassDifficultyButton and ClassDifficultySelected style the difficulty row.
const (
	ClassDifficultyButton   = "difficulty-button"
	ClassDifficultySelected = "difficulty-selected"
	ClassFocused            = "focused"
)

// Sink receives commands raised by UI event handlers.
type Sink interface {
	EnqueueUIUpdate(cmd command.Command)
	EnqueueUserAction(cmd command.Command)
}

// Surface applies UI-update commands to a registered document and turns
// clicks into commands.
type Surface struct {
	doc      *Document
	elements [command.ElementCount]*Element
	buttons  []*Element
	selected int
	focus    int

	assets *assets.Store
	logger *log.Logger
}

// NewSurface creates an unregistered surface. store resolves icon handles.
func NewSurface(store *assets.Store, logger *log.Logger) *Surface {
	if logger == nil {
		logger = log.Default()
	}
	return &Surface{assets: store, logger: logger}
}

// RegisterElements binds the lobby elements in doc, creates one button per
// difficulty size and wires click handlers to sink.
func (s *Surface) RegisterElements(doc *Document, sizes []int, sink Sink) {
	s.doc = doc
	s.buttons = make([]*Element, 0, len(sizes))
	s.selected = 0
	s.focus = 0

	for id, name := range elementNames {
		el := doc.Q(name)
		if el == nil {
			s.logger.Warn("layout element missing", "element", command.ElementID(id), "name", name)
		}
		s.elements[id] = el
	}

	s.createDifficultyButtons(sizes, sink)

	if play := s.elements[command.PlayButton]; play != nil {
		// Sizes are captured at registration; the index is read at click time
		play.OnClick = func() {
			if s.selected < 0 || s.selected >= len(sizes) {
				return
			}
			sink.EnqueueUserAction(command.PlayClicked(sizes[s.selected]))
		}
	}
	s.updateFocus()
}

func (s *Surface) createDifficultyButtons(sizes []int, sink Sink) {
	container := s.elements[command.DifficultyContainer]
	if container == nil {
		return
	}

	for i, size := range sizes {
		label := strconv.Itoa(size)
		button := &Element{
			Name:   "difficulty-" + label,
			Type:   TypeButton,
			Text:   label,
			Layout: LayoutRow,
		}
		button.AddClass(ClassDifficultyButton)
		if i == 0 {
			button.AddClass(ClassDifficultySelected)
		}

		index := i
		button.OnClick = func() {
			sink.EnqueueUIUpdate(command.DifficultySelectionChange(index))
		}

		s.buttons = append(s.buttons, button)
		container.Add(button)
	}
}

// Element returns the element bound to id, or nil.
func (s *Surface) Element(id command.ElementID) *Element {
	if int(id) >= len(s.elements) {
		return nil
	}
	return s.elements[id]
}

// Buttons returns the difficulty buttons in display order.
func (s *Surface) Buttons() []*Element {
	return s.buttons
}

// SelectedDifficulty returns the highlighted difficulty index.
func (s *Surface) SelectedDifficulty() int {
	return s.selected
}

// Registered reports whether RegisterElements has run.
func (s *Surface) Registered() bool {
	return s.doc != nil
}

// ProcessUpdate applies one UI-update command.
func (s *Surface) ProcessUpdate(cmd command.Command) {
	switch cmd.Kind {
	case command.UpdateScore:
		if el := s.Element(cmd.Element); el != nil && el.Type == TypeLabel {
			el.Text = strconv.Itoa(cmd.Value)
		}
	case command.ChangeIcon:
		if el := s.Element(cmd.Element); el != nil {
			el.Icon = cmd.Asset
		}
	case command.SetVisibility:
		if el := s.Element(cmd.Element); el != nil {
			el.Hidden = !cmd.Visible()
		}
	case command.DifficultySelection:
		s.selectDifficulty(cmd.Value)
	default:
		s.logger.Debug("ignoring command", "kind", cmd.Kind, "element", cmd.Element)
	}
}

func (s *Surface) selectDifficulty(index int) {
	if index < 0 || index >= len(s.buttons) || index == s.selected {
		return
	}
	s.buttons[s.selected].RemoveClass(ClassDifficultySelected)
	s.selected = index
	s.buttons[s.selected].AddClass(ClassDifficultySelected)
}

// Click runs the click handler of the element named name.
// It reports whether a handler ran.
func (s *Surface) Click(name string) bool {
	if s.doc == nil {
		return false
	}
	el := s.doc.Q(name)
	if el == nil || el.OnClick == nil || !s.shown(el) {
		return false
	}
	el.OnClick()
	return true
}

// ClickPlay clicks the play button.
func (s *Surface) ClickPlay() bool {
	return s.Click(elementNames[command.PlayButton])
}

// ClickDifficulty clicks the difficulty button at index.
func (s *Surface) ClickDifficulty(index int) bool {
	if index < 0 || index >= len(s.buttons) {
		return false
	}
	return s.Click(s.buttons[index].Name)
}

// focusables returns the keyboard focus order: difficulty buttons, then play.
func (s *Surface) focusables() []*Element {
	out := make([]*Element, 0, len(s.buttons)+1)
	out = append(out, s.buttons...)
	if play := s.elements[command.PlayButton]; play != nil {
		out = append(out, play)
	}
	return out
}

// MoveFocus moves keyboard focus by delta, clamped to the focus order.
func (s *Surface) MoveFocus(delta int) {
	items := s.focusables()
	if len(items) == 0 {
		return
	}
	s.focus += delta
	if s.focus < 0 {
		s.focus = 0
	}
	if s.focus >= len(items) {
		s.focus = len(items) - 1
	}
	s.updateFocus()
}

// FocusPlay moves keyboard focus to the play button.
func (s *Surface) FocusPlay() {
	s.focus = len(s.buttons)
	s.MoveFocus(0)
}

// Activate clicks the focused element.
func (s *Surface) Activate() bool {
	items := s.focusables()
	if s.focus < 0 || s.focus >= len(items) {
		return false
	}
	el := items[s.focus]
	if el.OnClick == nil || !s.shown(el) {
		return false
	}
	el.OnClick()
	return true
}

func (s *Surface) updateFocus() {
	for i, el := range s.focusables() {
		if i == s.focus {
			el.AddClass(ClassFocused)
		} else {
			el.RemoveClass(ClassFocused)
		}
	}
}

// shown reports whether el and all its ancestors are visible.
func (s *Surface) shown(target *Element) bool {
	var walk func(e *Element) (found, visible bool)
	walk = func(e *Element) (bool, bool) {
		if e == target {
			return true, !e.Hidden
		}
		for _, c := range e.Children {
			if found, visible := walk(c); found {
				return true, visible && !e.Hidden
			}
		}
		return false, false
	}
	_, visible := walk(s.doc.Root)
	return visible
}

// Cleanup drops every element reference.
func (s *Surface) Cleanup() {
	s.doc = nil
	s.elements = [command.ElementCount]*Element{}
	s.buttons = nil
	s.selected = 0
	s.focus = 0
}
