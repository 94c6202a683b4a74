package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle  = lipgloss.NewStyle()
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	selectedStyle = buttonStyle.
			BorderForeground(lipgloss.Color("11")).
			Foreground(lipgloss.Color("11")).
			Bold(true)
	focusedStyle = buttonStyle.
			BorderForeground(lipgloss.Color("14"))
	selectedFocusedStyle = selectedStyle.
				BorderForeground(lipgloss.Color("14"))
	viewStyle = lipgloss.NewStyle().Padding(1, 2)
)

// Render draws the registered document centred in width columns.
// Hidden elements and their subtrees are skipped.
func (s *Surface) Render(width int) string {
	if s.doc == nil || s.doc.Root == nil {
		return ""
	}
	out := s.render(s.doc.Root)
	if width <= 0 {
		return out
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, out)
}

func (s *Surface) render(e *Element) string {
	if e.Hidden {
		return ""
	}

	switch e.Type {
	case TypeLabel:
		return labelStyle.Render(e.Text)
	case TypeIcon:
		return s.renderIcon(e)
	case TypeButton:
		inner := e.Text
		if len(e.Children) > 0 {
			inner = s.join(e)
		}
		return buttonStyleFor(e).Render(inner)
	case TypeView:
		return viewStyle.Render(s.join(e))
	default:
		return s.join(e)
	}
}

func (s *Surface) join(e *Element) string {
	parts := make([]string, 0, len(e.Children))
	for _, c := range e.Children {
		if r := s.render(c); r != "" {
			parts = append(parts, r)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	if e.Layout == LayoutRow {
		return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (s *Surface) renderIcon(e *Element) string {
	if s.assets == nil {
		return "  "
	}
	img, ok := s.assets.Get(e.Icon)
	if !ok {
		return "  "
	}
	c := img.Swatch()
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}

func buttonStyleFor(e *Element) lipgloss.Style {
	selected := e.HasClass(ClassDifficultySelected)
	focused := e.HasClass(ClassFocused)
	switch {
	case selected && focused:
		return selectedFocusedStyle
	case selected:
		return selectedStyle
	case focused:
		return focusedStyle
	default:
		return buttonStyle
	}
}
