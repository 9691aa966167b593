// Package playerbar renders the transport bar: now-playing info, heart,
// play state, progress, and volume.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvaillant/strum/internal/icons"
	"github.com/mvaillant/strum/internal/playback"
	"github.com/mvaillant/strum/internal/ui/render"
	"github.com/mvaillant/strum/internal/ui/styles"
)

// State holds everything needed to render the player bar.
type State struct {
	Playing       bool
	Paused        bool
	Title         string
	Artist        string
	Liked         bool
	Position      time.Duration
	Duration      time.Duration
	VolumePercent float64
	Muted         bool
}

// BarHeight is the rendered height including borders.
const BarHeight = 3

// NewState snapshots the playback service for rendering.
func NewState(svc playback.Service) State {
	s := State{
		VolumePercent: svc.VolumePercent(),
	}
	s.Muted = s.VolumePercent == 0

	track := svc.CurrentTrack()
	if track == nil {
		return s
	}

	s.Playing = svc.State() == playback.StatePlaying
	s.Paused = svc.State() == playback.StatePaused
	s.Title = track.Display
	s.Artist = track.Artist
	s.Liked = svc.IsFavorite(track.File)
	s.Position = svc.Position()
	s.Duration = svc.Duration()
	return s
}

// Render returns the transport bar for the given width. With no current
// track it shows an idle hint instead of track info.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0)
	th := styles.T()

	if !s.Playing && !s.Paused {
		idle := th.S().Muted.Render("Nothing playing") +
			"   " +
			th.S().Subtle.Render("space to start")
		return barFrame(render.Row(idle, volumeGauge(s), innerWidth), width)
	}

	status := icons.Play()
	if s.Paused {
		status = icons.Pause()
	}

	heart := th.S().Subtle.Render(icons.Heart(false))
	if s.Liked {
		heart = th.S().Heart.Render(icons.Heart(true))
	}

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}

	timeStr := fmt.Sprintf("%s / %s",
		render.FormatSeconds(s.Position.Seconds()),
		render.FormatSeconds(s.Duration.Seconds()))

	volume := volumeGauge(s)

	separator := "   "
	sepWidth := lipgloss.Width(separator)

	// Fixed-width pieces: heart, status, time, volume.
	fixed := lipgloss.Width(heart) + 1 +
		lipgloss.Width(status) + 2 +
		lipgloss.Width(timeStr) +
		lipgloss.Width(volume) +
		sepWidth*3

	minBarWidth := 10
	availableForText := innerWidth - fixed - minBarWidth - sepWidth

	titleWidth := lipgloss.Width(title)
	artistWidth := lipgloss.Width(s.Artist)

	var styledTitle, styledArtist string
	var usedText int
	switch {
	case titleWidth+sepWidth+artistWidth <= availableForText:
		styledTitle = th.S().Title.Render(title)
		styledArtist = th.S().Muted.Render(s.Artist)
		usedText = titleWidth + sepWidth + artistWidth
	case titleWidth+sepWidth <= availableForText && s.Artist != "":
		maxArtist := availableForText - titleWidth - sepWidth
		styledTitle = th.S().Title.Render(title)
		styledArtist = th.S().Muted.Render(render.TruncateEllipsis(s.Artist, maxArtist))
		usedText = titleWidth + sepWidth + maxArtist
	default:
		maxTitle := max(availableForText, 10)
		styledTitle = th.S().Title.Render(render.TruncateEllipsis(title, maxTitle))
		styledArtist = ""
		usedText = min(titleWidth, maxTitle)
	}

	barWidth := max(innerWidth-fixed-usedText-sepWidth, 5)
	bar := progressBar(s.Position, s.Duration, barWidth)

	var content strings.Builder
	content.WriteString(heart)
	content.WriteString(" ")
	content.WriteString(styledTitle)
	if styledArtist != "" {
		content.WriteString(separator)
		content.WriteString(styledArtist)
	}
	content.WriteString(separator)
	content.WriteString(status)
	content.WriteString("  ")
	content.WriteString(bar)
	content.WriteString(separator)
	content.WriteString(th.S().Muted.Render(timeStr))
	content.WriteString(separator)
	content.WriteString(volume)

	return barFrame(content.String(), width)
}

// progressBar renders the seek strip. An unknown duration shows an
// empty strip rather than a bogus position.
func progressBar(position, duration time.Duration, width int) string {
	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	filled := min(int(float64(width)*ratio), width)

	th := styles.T()
	filledStr := lipgloss.NewStyle().Foreground(th.Primary).Render(strings.Repeat("━", filled))
	emptyStr := th.S().Subtle.Render(strings.Repeat("─", width-filled))
	return filledStr + emptyStr
}

func volumeGauge(s State) string {
	icon := icons.Volume(s.Muted)
	return styles.T().S().Muted.Render(fmt.Sprintf("%s %3.0f%%", icon, s.VolumePercent))
}

func barFrame(content string, width int) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 2).
		Width(width - 2).
		Render(content)
}
