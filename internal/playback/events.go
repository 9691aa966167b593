package playback

import (
	"time"

	"github.com/mvaillant/strum/internal/catalog"
)

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when playback starts on a different track.
// Re-clicking the current track toggles play/pause and does not emit.
type TrackChange struct {
	Previous      *catalog.Track
	Current       *catalog.Track
	PreviousIndex int
	Index         int
}

// PositionChange is emitted when a seek occurs, so the UI can move the
// progress display without waiting for the next tick.
type PositionChange struct {
	Position time.Duration
}

// VolumeChange is emitted when the volume level changes.
type VolumeChange struct {
	Percent float64
	Muted   bool
}

// FavoritesChange is emitted when the current track's favourite state flips.
type FavoritesChange struct {
	File  string
	Liked bool
}

// ErrorEvent is emitted when an error occurs during playback.
type ErrorEvent struct {
	Operation string // e.g., "play", "fetch"
	File      string // track file if applicable
	Err       error
}
