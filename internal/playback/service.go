package playback

import (
	"context"
	"time"

	"github.com/mvaillant/strum/internal/catalog"
)

// Service defines the playback controller contract. It owns the current
// track index and keeps the audio primitive, the favourites store, and
// subscribers in lockstep.
type Service interface {
	// Transport control
	PlayIndex(i int) error // no-op out of bounds; re-click of current index toggles
	Toggle() error         // from idle with a non-empty catalog, starts index 0
	Next() error           // no-op at the last index
	Previous() error       // no-op at index 0 or when idle
	SeekPercent(pct float64) error
	HandleFinished() // end-of-track: advance, or stop silently at the end

	// Volume
	SetVolumePercent(pct float64)
	VolumePercent() float64
	ToggleMute()

	// Favourites
	ToggleFavorite() // no-op when idle
	IsFavorite(file string) bool

	// State queries
	State() State
	IsPlaying() bool
	TrackCount() int
	CurrentIndex() int // -1 when idle
	CurrentTrack() *catalog.Track
	Position() time.Duration
	Duration() time.Duration
	ProgressPercent() float64 // 0 when duration is unknown

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}

// Fetcher resolves a catalog file to a locally playable path.
type Fetcher interface {
	Fetch(ctx context.Context, file string) (string, error)
}

// Favorites is the favourites store surface the controller drives.
type Favorites interface {
	Has(file string) bool
	Toggle(file string) bool
}

// VolumeSaver persists volume state across sessions.
type VolumeSaver interface {
	SaveVolume(volume float64, muted bool) error
}
