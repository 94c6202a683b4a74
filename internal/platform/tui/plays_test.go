package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

func openJournal(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "plays.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPlaysModelLoadsJournal(t *testing.T) {
	store := openJournal(t)
	for _, p := range []struct{ index, size, score int }{
		{0, 36, 120},
		{0, 36, 1500},
		{1, 64, 900},
	} {
		if _, err := store.RecordPlay(p.index, p.size, p.score); err != nil {
			t.Fatalf("RecordPlay() failed: %v", err)
		}
	}

	m := NewPlaysModel(store, 100, 30)

	if got := len(m.table.Rows()); got != 3 {
		t.Errorf("Expected 3 rows, got %d", got)
	}
	if len(m.stats) != 2 {
		t.Errorf("Expected 2 size groups, got %d", len(m.stats))
	}

	view := m.View()
	if !strings.Contains(view, "PLAY JOURNAL") {
		t.Error("View should contain title")
	}
	if !strings.Contains(view, "By size") {
		t.Error("Wide view should show the sidebar")
	}
	if strings.Contains(view, "No plays recorded yet") {
		t.Error("Empty message shown with plays recorded")
	}
}

func TestPlaysModelEmpty(t *testing.T) {
	m := NewPlaysModel(openJournal(t), 60, 20)

	if len(m.table.Rows()) != 0 {
		t.Errorf("Expected no rows, got %d", len(m.table.Rows()))
	}
	view := m.View()
	if !strings.Contains(view, "No plays recorded yet") {
		t.Error("Empty journal should show the empty message")
	}
	if strings.Contains(view, "By size") {
		t.Error("Narrow view should hide the sidebar")
	}
}

func TestPlaysModelNilStore(t *testing.T) {
	m := NewPlaysModel(nil, 100, 30)
	if len(m.plays) != 0 || len(m.stats) != 0 {
		t.Error("Nil store should load nothing")
	}
}

func TestPlaysModelQuit(t *testing.T) {
	m := NewPlaysModel(openJournal(t), 100, 30)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if updated.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestPlaysModelResize(t *testing.T) {
	m := NewPlaysModel(openJournal(t), 60, 20)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	pm := updated.(PlaysModel)
	if !pm.showSidebar {
		t.Error("Sidebar should show after widening")
	}
}
