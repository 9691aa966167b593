// Package librarypanel renders the grouped track list with collapsible
// artist sections.
package librarypanel

import (
	"github.com/mvaillant/strum/internal/catalog"
	"github.com/mvaillant/strum/internal/libraryview"
	"github.com/mvaillant/strum/internal/ui"
	"github.com/mvaillant/strum/internal/ui/cursor"
)

// PlayTrackMsg is sent when the user activates a track row. Index is the
// catalog position.
type PlayTrackMsg struct {
	Index int
}

type rowKind int

const (
	rowHeader rowKind = iota
	rowTrack
	rowEmpty
)

// row is one renderable line of the flattened section tree.
type row struct {
	kind         rowKind
	section      int // index into m.sections
	catalogIndex int // catalog position, rowTrack only
	track        catalog.Track
}

// Model represents the library panel state.
type Model struct {
	catalog  *catalog.Catalog
	sections []libraryview.Section
	expanded map[string]bool // user toggles layered over section defaults
	rows     []row

	cur     cursor.Cursor
	width   int
	height  int
	focused bool
	playing int // catalog index of the active track, -1 for none
}

// New creates a new library panel model.
func New(c *catalog.Catalog) Model {
	return Model{
		catalog:  c,
		expanded: make(map[string]bool),
		cur:      cursor.New(2),
		playing:  -1,
	}
}

// SetFocused sets whether the panel is focused.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// IsFocused returns whether the panel is focused.
func (m Model) IsFocused() bool {
	return m.focused
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetNowPlaying marks the active track by catalog index (-1 for none).
func (m *Model) SetNowPlaying(index int) {
	m.playing = index
}

// SetSections replaces the rendered section tree, keeping the user's
// expand/collapse toggles for sections that survive the rebuild.
func (m *Model) SetSections(sections []libraryview.Section) {
	m.sections = sections
	m.rebuildRows()
	m.cur.ClampToBounds(len(m.rows))
	m.cur.EnsureVisible(len(m.rows), m.listHeight())
}

// ResetExpansion drops the user's expand/collapse toggles. Called when
// the active filter changes, so filtered views open with their defaults.
func (m *Model) ResetExpansion() {
	m.expanded = make(map[string]bool)
	m.cur.Reset()
	m.rebuildRows()
}

// isExpanded resolves a section's current expansion state.
func (m Model) isExpanded(s libraryview.Section) bool {
	if v, ok := m.expanded[s.Name]; ok {
		return v
	}
	return s.Expanded
}

// rebuildRows flattens the sections into renderable rows. Collapsed
// sections contribute only their header; an expanded empty favourites
// section contributes a placeholder row.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	for si, s := range m.sections {
		m.rows = append(m.rows, row{kind: rowHeader, section: si})
		if !m.isExpanded(s) {
			continue
		}
		if len(s.Tracks) == 0 {
			m.rows = append(m.rows, row{kind: rowEmpty, section: si})
			continue
		}
		for _, t := range s.Tracks {
			m.rows = append(m.rows, row{
				kind:         rowTrack,
				section:      si,
				catalogIndex: m.catalog.IndexOf(t.File),
				track:        t,
			})
		}
	}
}

func (m Model) listHeight() int {
	return m.height - ui.PanelOverhead
}
