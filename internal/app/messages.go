package app

import (
	"time"

	"github.com/mvaillant/strum/internal/catalog"
	"github.com/mvaillant/strum/internal/playback"
)

// TickMsg drives the progress display while a track plays.
type TickMsg time.Time

// CatalogLoadedMsg carries the result of the initial catalog fetch.
type CatalogLoadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

// TrackFinishedMsg is sent when the current track plays to its end.
type TrackFinishedMsg struct{}

// NotifySentMsg carries the ID of the last desktop notification, so the
// next track change can replace it.
type NotifySentMsg struct {
	ID uint32
}

// Playback service events, re-wrapped as tea messages.
type (
	StateChangedMsg     playback.StateChange
	TrackChangedMsg     playback.TrackChange
	PositionChangedMsg  playback.PositionChange
	VolumeChangedMsg    playback.VolumeChange
	FavoritesChangedMsg playback.FavoritesChange
	PlaybackErrorMsg    playback.ErrorEvent
	ServiceClosedMsg    struct{}
)
