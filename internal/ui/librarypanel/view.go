package librarypanel

import (
	"fmt"
	"strings"

	"github.com/mvaillant/strum/internal/icons"
	"github.com/mvaillant/strum/internal/libraryview"
	"github.com/mvaillant/strum/internal/ui"
	"github.com/mvaillant/strum/internal/ui/render"
	"github.com/mvaillant/strum/internal/ui/styles"
)

// View renders the library panel.
func (m Model) View() string {
	innerWidth := max(m.width-4, 0)
	th := styles.T()

	var b strings.Builder
	b.WriteString(th.S().Title.Render(render.TruncateAndPad("Library", innerWidth)))
	b.WriteString("\n")
	b.WriteString(th.S().Subtle.Render(render.Separator(innerWidth)))

	height := m.listHeight()
	start, end := m.cur.VisibleRange(len(m.rows), height)
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.renderRow(i, innerWidth))
	}
	// Fill remaining height so the panel stays stable.
	for i := end - start; i < height; i++ {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", innerWidth))
	}

	return styles.PanelStyle(m.focused).
		Width(m.width - ui.BorderHeight).
		Padding(0, 1).
		Render(b.String())
}

func (m Model) renderRow(i, width int) string {
	r := m.rows[i]
	th := styles.T()
	selected := m.focused && i == m.cur.Pos()

	var line string
	switch r.kind {
	case rowHeader:
		line = m.renderHeader(m.sections[r.section], width)
	case rowEmpty:
		line = th.S().Subtle.Render(render.TruncateAndPad("   "+libraryview.EmptyFavouritesMessage, width))
	case rowTrack:
		line = m.renderTrack(r, width)
	}

	if selected {
		return th.S().Cursor.Render(line)
	}
	return line
}

func (m Model) renderHeader(s libraryview.Section, width int) string {
	th := styles.T()

	marker := "▸"
	if m.isExpanded(s) {
		marker = "▾"
	}

	name := s.Name
	if s.IsFavourites {
		name = icons.Heart(true) + " " + name
	} else {
		name = icons.FormatArtist(name)
	}

	left := fmt.Sprintf("%s %s", marker, name)
	line := render.Row(render.Truncate(left, width-6), fmt.Sprintf("%d", len(s.Tracks)), width)

	if s.IsFavourites {
		return th.S().Heart.Render(line)
	}
	return th.S().Title.Render(line)
}

func (m Model) renderTrack(r row, width int) string {
	th := styles.T()

	name := icons.FormatAudio(r.track.Display)
	left := "   " + render.Truncate(name, max(width-20, 10))
	line := render.Row(left, render.Truncate(r.track.Artist, 16), width)

	if r.catalogIndex >= 0 && r.catalogIndex == m.playing {
		return th.S().Playing.Render(line)
	}
	return th.S().Base.Render(line)
}
