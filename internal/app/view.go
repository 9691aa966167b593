package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mvaillant/strum/internal/ui/playerbar"
	"github.com/mvaillant/strum/internal/ui/render"
	"github.com/mvaillant/strum/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spin.View()+" Loading catalog...")
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top, m.cards.View(), m.library.View())

	var bar playerbar.State
	if m.service != nil {
		bar = playerbar.NewState(m.service)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		panels,
		m.statusLine(),
		playerbar.Render(bar, m.width),
	)
}

// statusLine shows the last error, or a short key hint when all is well.
func (m Model) statusLine() string {
	th := styles.T()
	if m.errorMsg != "" {
		return th.S().Error.Render(render.TruncateEllipsis(" "+m.errorMsg, max(m.width, 0)))
	}
	hint := " tab switch panel   space play/pause   n/p track   f favourite   q quit"
	return th.S().Subtle.Render(render.TruncateEllipsis(hint, max(m.width, 0)))
}
