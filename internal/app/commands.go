package app

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvaillant/strum/internal/catalog"
	"github.com/mvaillant/strum/internal/notify"
)

const catalogLoadTimeout = 30 * time.Second

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// LoadCatalogCmd fetches the server listing in the background.
func LoadCatalogCmd(loader *catalog.Loader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
		defer cancel()

		c, err := loader.Load(ctx)
		return CatalogLoadedMsg{Catalog: c, Err: err}
	}
}

// watchServiceEvents waits for the next playback service event and
// converts it to a tea.Msg. Re-issued after every received event.
func (m Model) watchServiceEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.PositionChanged:
			return PositionChangedMsg(e)
		case e := <-sub.VolumeChanged:
			return VolumeChangedMsg(e)
		case e := <-sub.FavoritesChanged:
			return FavoritesChangedMsg(e)
		case e := <-sub.Error:
			return PlaybackErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// watchTrackFinished waits for the player to reach end-of-track.
func (m Model) watchTrackFinished() tea.Cmd {
	pl := m.player
	if pl == nil {
		return nil
	}
	return func() tea.Msg {
		<-pl.FinishedChan()
		return TrackFinishedMsg{}
	}
}

// notifyTrackCmd sends a desktop notification for a track change.
func (m Model) notifyTrackCmd(t *catalog.Track) tea.Cmd {
	if m.notifier == nil || t == nil {
		return nil
	}
	notifier, replaces := m.notifier, m.notifyID
	return func() tea.Msg {
		id, err := notifier.Notify(notify.ForTrack(t, replaces))
		if err != nil {
			slog.Warn("failed to send notification", "err", err)
			return nil
		}
		return NotifySentMsg{ID: id}
	}
}
