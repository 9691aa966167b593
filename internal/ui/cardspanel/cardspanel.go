// Package cardspanel renders the spotlight cards sidebar. Activating a
// card asks the app to apply the matching library filter.
package cardspanel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvaillant/strum/internal/filter"
	"github.com/mvaillant/strum/internal/ui"
	"github.com/mvaillant/strum/internal/ui/render"
	"github.com/mvaillant/strum/internal/ui/styles"
)

// CardSelectedMsg is sent when the user activates a card. Index is the
// card's ordinal position, which the filter router may use as a
// positional fallback.
type CardSelectedMsg struct {
	Index int
}

// ClearFilterMsg is sent when the user dismisses the active filter.
type ClearFilterMsg struct{}

// Model represents the cards panel state.
type Model struct {
	ui.Base
	cards  []filter.Card
	cursor int
	active int // index of the card whose filter is applied, -1 for none
}

// New creates a new cards panel model.
func New(cards []filter.Card) Model {
	return Model{
		cards:  cards,
		active: -1,
	}
}

// Cards returns the configured cards.
func (m Model) Cards() []filter.Card {
	return m.cards
}

// SetActive marks the card whose filter is currently applied (-1 for none).
func (m *Model) SetActive(index int) {
	m.active = index
}

// Update handles messages for the cards panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() || len(m.cards) == 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.cards) - 1
	case "enter", "l":
		index := m.cursor
		return m, func() tea.Msg {
			return CardSelectedMsg{Index: index}
		}
	case "esc":
		if m.active >= 0 {
			return m, func() tea.Msg {
				return ClearFilterMsg{}
			}
		}
	}

	return m, nil
}

// View renders the cards panel.
func (m Model) View() string {
	innerWidth := max(m.Width()-4, 0)
	th := styles.T()

	var b strings.Builder
	b.WriteString(th.S().Title.Render(render.TruncateAndPad("Spotlight", innerWidth)))
	b.WriteString("\n")
	b.WriteString(th.S().Subtle.Render(render.Separator(innerWidth)))

	for i, card := range m.cards {
		b.WriteString("\n")
		b.WriteString(m.renderCard(i, card, innerWidth))
	}
	if len(m.cards) == 0 {
		b.WriteString("\n")
		b.WriteString(th.S().Subtle.Render("No cards configured"))
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(m.Width() - ui.BorderHeight).
		Padding(0, 1).
		Render(b.String())
}

func (m Model) renderCard(i int, card filter.Card, width int) string {
	th := styles.T()

	title := card.Title
	if title == "" {
		title = card.Artist
	}
	title = render.Truncate(title, max(width-4, 4))

	marker := "  "
	switch {
	case i == m.active:
		marker = "● "
	case m.IsFocused() && i == m.cursor:
		marker = "▸ "
	}

	line := marker + th.Gradient(title, i == m.cursor)
	if card.Artist != "" && !strings.EqualFold(card.Artist, title) {
		line += " " + th.S().Subtle.Render(render.Truncate(card.Artist, 14))
	}
	return line
}
