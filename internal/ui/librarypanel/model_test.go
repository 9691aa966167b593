package librarypanel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvaillant/strum/internal/catalog"
	"github.com/mvaillant/strum/internal/filter"
	"github.com/mvaillant/strum/internal/libraryview"
)

type fakeFavorites map[string]bool

func (f fakeFavorites) Has(file string) bool { return f[file] }

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Track{
		{File: "Aska - Dawn.mp3", Display: "Dawn", Artist: "Aska"},
		{File: "Aska - Dusk.mp3", Display: "Dusk", Artist: "Aska"},
		{File: "Bram - Tide.mp3", Display: "Tide", Artist: "Bram"},
	})
}

func newTestModel(favs libraryview.Favorites, f filter.Filter) Model {
	c := testCatalog()
	m := New(c)
	m.SetSize(60, 20)
	m.SetFocused(true)
	m.SetSections(libraryview.Build(c, favs, f))
	return m
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCollapsedSectionsShowOnlyHeaders(t *testing.T) {
	m := newTestModel(fakeFavorites{}, filter.Filter{})

	// Favourites + 2 artist sections, all collapsed by default.
	if len(m.rows) != 3 {
		t.Fatalf("rows = %d, want 3 headers", len(m.rows))
	}
	for _, r := range m.rows {
		if r.kind != rowHeader {
			t.Errorf("row kind = %v, want header", r.kind)
		}
	}
}

func TestEnterOnHeaderExpandsSection(t *testing.T) {
	m := newTestModel(fakeFavorites{}, filter.Filter{})

	// Move to the Aska header and expand it.
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("enter"))

	if len(m.rows) != 5 {
		t.Fatalf("rows after expand = %d, want 5", len(m.rows))
	}
	if m.rows[2].kind != rowTrack || m.rows[2].track.Display != "Dawn" {
		t.Errorf("rows[2] = %+v, want the Dawn track", m.rows[2])
	}

	// Toggle again collapses.
	m, _ = m.Update(key("enter"))
	if len(m.rows) != 3 {
		t.Errorf("rows after collapse = %d, want 3", len(m.rows))
	}
}

func TestEnterOnTrackEmitsPlayMsg(t *testing.T) {
	m := newTestModel(fakeFavorites{}, filter.Filter{})

	m, _ = m.Update(key("j"))     // Aska header
	m, _ = m.Update(key("enter")) // expand
	m, _ = m.Update(key("j"))     // first track
	m, _ = m.Update(key("j"))     // second track (Dusk, catalog index 1)

	rowsBefore := len(m.rows)
	m, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected a command from track activation")
	}
	msg, ok := cmd().(PlayTrackMsg)
	if !ok {
		t.Fatalf("cmd message = %T, want PlayTrackMsg", cmd())
	}
	if msg.Index != 1 {
		t.Errorf("PlayTrackMsg.Index = %d, want 1", msg.Index)
	}
	// Activating a track must not collapse the section.
	if len(m.rows) != rowsBefore {
		t.Errorf("rows = %d, want %d (section state untouched)", len(m.rows), rowsBefore)
	}
}

func TestFavouritesFilterShowsEmptyMessage(t *testing.T) {
	m := newTestModel(fakeFavorites{}, filter.ByFavourites())

	if len(m.rows) != 2 {
		t.Fatalf("rows = %d, want header + placeholder", len(m.rows))
	}
	if m.rows[1].kind != rowEmpty {
		t.Errorf("rows[1].kind = %v, want empty placeholder", m.rows[1].kind)
	}
	if !strings.Contains(m.View(), libraryview.EmptyFavouritesMessage) {
		t.Error("view should show the empty favourites message")
	}
}

func TestArtistFilterExpandedByDefault(t *testing.T) {
	m := newTestModel(fakeFavorites{}, filter.ByArtist("Aska"))

	if len(m.rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 tracks", len(m.rows))
	}
	if m.rows[1].kind != rowTrack {
		t.Errorf("filtered section should be expanded")
	}
}

func TestResetExpansionDropsToggles(t *testing.T) {
	m := newTestModel(fakeFavorites{}, filter.Filter{})

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("enter"))
	if len(m.rows) == 3 {
		t.Fatal("expected an expanded section before reset")
	}

	m.ResetExpansion()
	if len(m.rows) != 3 {
		t.Errorf("rows after reset = %d, want 3 collapsed headers", len(m.rows))
	}
	if m.cur.Pos() != 0 {
		t.Errorf("cursor after reset = %d, want 0", m.cur.Pos())
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := newTestModel(fakeFavorites{}, filter.Filter{})
	m.SetFocused(false)

	m, _ = m.Update(key("j"))
	if m.cur.Pos() != 0 {
		t.Errorf("unfocused panel moved cursor to %d", m.cur.Pos())
	}
}

func TestViewMarksNowPlaying(t *testing.T) {
	m := newTestModel(fakeFavorites{"Aska - Dawn.mp3": true}, filter.ByFavourites())
	m.SetNowPlaying(0)

	out := m.View()
	if !strings.Contains(out, "Dawn") {
		t.Error("view should list the favourite track")
	}
}
