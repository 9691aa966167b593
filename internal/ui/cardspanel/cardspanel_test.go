package cardspanel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvaillant/strum/internal/filter"
)

func testCards() []filter.Card {
	return []filter.Card{
		{Title: "Favourites"},
		{Title: "Morning Mix", Artist: "Aska"},
		{Title: "Deep Cuts"},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestModel() Model {
	m := New(testCards())
	m.SetSize(30, 20)
	m.SetFocused(true)
	return m
}

func TestNavigationAndSelection(t *testing.T) {
	m := newTestModel()

	m, _ = m.Update(key("j"))
	m, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected a command from card activation")
	}
	msg, ok := cmd().(CardSelectedMsg)
	if !ok {
		t.Fatalf("cmd message = %T, want CardSelectedMsg", cmd())
	}
	if msg.Index != 1 {
		t.Errorf("CardSelectedMsg.Index = %d, want 1", msg.Index)
	}
}

func TestNavigationClamps(t *testing.T) {
	m := newTestModel()

	m, _ = m.Update(key("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped at 0", m.cursor)
	}

	m, _ = m.Update(key("G"))
	m, _ = m.Update(key("j"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want clamped at 2", m.cursor)
	}
}

func TestEscClearsActiveFilter(t *testing.T) {
	m := newTestModel()

	// No active filter: esc is a no-op.
	m, cmd := m.Update(key("esc"))
	if cmd != nil {
		t.Error("esc without an active filter should not emit")
	}

	m.SetActive(1)
	_, cmd = m.Update(key("esc"))
	if cmd == nil {
		t.Fatal("esc with an active filter should emit")
	}
	if _, ok := cmd().(ClearFilterMsg); !ok {
		t.Errorf("cmd message = %T, want ClearFilterMsg", cmd())
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := newTestModel()
	m.SetFocused(false)

	m, cmd := m.Update(key("enter"))
	if cmd != nil {
		t.Error("unfocused panel should not emit")
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestViewListsCards(t *testing.T) {
	m := newTestModel()
	out := m.View()
	for _, want := range []string{"Favourites", "Morning Mix", "Deep Cuts"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing card %q", want)
		}
	}
}
