package librarypanel

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages for the library panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	if m.cur.HandleKey(keyMsg.String(), len(m.rows), m.listHeight()) {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "l":
		return m.activate()
	case "h":
		// Collapse the section under the cursor, from any of its rows.
		if r, ok := m.currentRow(); ok {
			m.collapse(r.section)
		}
	}

	return m, nil
}

// activate runs the cursor row: headers toggle their section, track rows
// start playback without touching the section state.
func (m Model) activate() (Model, tea.Cmd) {
	r, ok := m.currentRow()
	if !ok {
		return m, nil
	}

	switch r.kind {
	case rowHeader:
		m.toggle(r.section)
		return m, nil
	case rowTrack:
		if r.catalogIndex < 0 {
			return m, nil
		}
		index := r.catalogIndex
		return m, func() tea.Msg {
			return PlayTrackMsg{Index: index}
		}
	default:
		return m, nil
	}
}

func (m Model) currentRow() (row, bool) {
	pos := m.cur.Pos()
	if pos < 0 || pos >= len(m.rows) {
		return row{}, false
	}
	return m.rows[pos], true
}

func (m *Model) toggle(section int) {
	if section < 0 || section >= len(m.sections) {
		return
	}
	s := m.sections[section]
	m.expanded[s.Name] = !m.isExpanded(s)
	m.rebuildRows()
	m.cur.ClampToBounds(len(m.rows))
	m.cur.EnsureVisible(len(m.rows), m.listHeight())
}

func (m *Model) collapse(section int) {
	if section < 0 || section >= len(m.sections) {
		return
	}
	s := m.sections[section]
	if !m.isExpanded(s) {
		return
	}
	m.expanded[s.Name] = false
	// Land on the collapsed section's header.
	headerPos := 0
	for i, r := range m.rows {
		if r.kind == rowHeader && r.section == section {
			headerPos = i
			break
		}
	}
	m.rebuildRows()
	m.cur.Jump(headerPos, len(m.rows), m.listHeight())
}
