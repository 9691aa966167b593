package playback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mvaillant/strum/internal/catalog"
	"github.com/mvaillant/strum/internal/player"
)

const defaultUnmuteVolume = 70

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.RWMutex

	player  player.Interface
	catalog *catalog.Catalog
	favs    Favorites
	fetcher Fetcher
	saver   VolumeSaver

	currentIndex   int
	volumePercent  float64
	previousVolume float64 // last non-zero volume, for unmute

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// Options configures optional service collaborators.
type Options struct {
	Saver         VolumeSaver
	VolumePercent float64
	Muted         bool
}

// New creates a playback controller over the given collaborators.
func New(p player.Interface, c *catalog.Catalog, favs Favorites, fetcher Fetcher, opts Options) Service {
	s := &serviceImpl{
		player:         p,
		catalog:        c,
		favs:           favs,
		fetcher:        fetcher,
		saver:          opts.Saver,
		currentIndex:   -1,
		volumePercent:  defaultUnmuteVolume,
		previousVolume: defaultUnmuteVolume,
	}

	if opts.VolumePercent > 0 {
		s.volumePercent = clampPercent(opts.VolumePercent)
		s.previousVolume = s.volumePercent
	}
	if opts.Muted {
		s.volumePercent = 0
	}
	p.SetVolume(s.volumePercent / 100)

	return s
}

// PlayIndex plays the track at catalog position i. Out-of-bounds indices
// are ignored. Re-selecting the current track toggles play/pause without
// reloading the source.
func (s *serviceImpl) PlayIndex(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	track := s.catalog.Track(i)
	if track == nil {
		return nil
	}

	if i == s.currentIndex {
		if s.player.State() == player.Stopped {
			// Track ran to its end; re-selecting it restarts from the top.
			return s.startLocked(i, *track)
		}
		prev := s.stateLocked()
		s.player.Toggle()
		s.emitState(prev)
		return nil
	}

	return s.startLocked(i, *track)
}

// startLocked loads and plays the track at index i. Caller holds mu.
func (s *serviceImpl) startLocked(i int, track catalog.Track) error {
	path, err := s.fetcher.Fetch(context.Background(), track.File)
	if err != nil {
		slog.Error("failed to fetch track", "file", track.File, "err", err)
		s.emitError(ErrorEvent{Operation: "fetch", File: track.File, Err: err})
		return err
	}

	prevState := s.stateLocked()
	prevIndex := s.currentIndex
	prevTrack := s.catalog.Track(prevIndex)

	s.currentIndex = i

	if err := s.player.Play(path); err != nil {
		// Playback rejection: keep the index, report the error, and let
		// the state queries reflect whatever the primitive actually did.
		slog.Error("playback rejected", "file", track.File, "err", err)
		s.emitError(ErrorEvent{Operation: "play", File: track.File, Err: err})
	}

	s.emitTrack(TrackChange{
		Previous:      prevTrack,
		Current:       s.catalog.Track(i),
		PreviousIndex: prevIndex,
		Index:         i,
	})
	s.emitState(prevState)
	return nil
}

// Toggle flips play/pause. From idle with a non-empty catalog it starts
// the first track instead.
func (s *serviceImpl) Toggle() error {
	s.mu.Lock()
	if s.currentIndex == -1 {
		s.mu.Unlock()
		if s.catalog.Len() > 0 {
			return s.PlayIndex(0)
		}
		return nil
	}

	defer s.mu.Unlock()
	prev := s.stateLocked()
	s.player.Toggle()
	s.emitState(prev)
	return nil
}

// Next plays the following track; no-op at the last index.
func (s *serviceImpl) Next() error {
	s.mu.RLock()
	i := s.currentIndex
	last := s.catalog.Len() - 1
	s.mu.RUnlock()

	if i >= last {
		return nil
	}
	return s.PlayIndex(i + 1)
}

// Previous plays the preceding track; no-op at index 0 or when idle.
func (s *serviceImpl) Previous() error {
	s.mu.RLock()
	i := s.currentIndex
	s.mu.RUnlock()

	if i <= 0 {
		return nil
	}
	return s.PlayIndex(i - 1)
}

// HandleFinished reacts to the primitive's end-of-track signal.
// Past the last track nothing is queued, so the player is stopped
// explicitly; the finish callback never changes its state on its own.
func (s *serviceImpl) HandleFinished() {
	s.mu.Lock()
	if s.currentIndex >= s.catalog.Len()-1 {
		prev := s.stateLocked()
		s.player.Stop()
		s.emitState(prev)
		s.mu.Unlock()
		return
	}
	next := s.currentIndex + 1
	s.mu.Unlock()

	_ = s.PlayIndex(next)
}

// SeekPercent seeks to a position expressed as 0-100 percent of the
// track. Ignored while the duration is still unknown.
func (s *serviceImpl) SeekPercent(pct float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	duration := s.player.Duration()
	if duration <= 0 {
		return nil
	}

	pct = clampPercent(pct)
	position := time.Duration(float64(duration) * pct / 100)
	s.player.SeekTo(position)
	s.emitPosition(position)
	return nil
}

// SetVolumePercent sets the volume (0-100) and remembers the last
// non-zero value for unmute.
func (s *serviceImpl) SetVolumePercent(pct float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setVolumeLocked(clampPercent(pct))
}

func (s *serviceImpl) setVolumeLocked(pct float64) {
	s.volumePercent = pct
	if pct > 0 {
		s.previousVolume = pct
	}
	s.player.SetVolume(pct / 100)
	s.saveVolumeLocked()
	s.emitVolume(VolumeChange{Percent: pct, Muted: pct == 0})
}

// VolumePercent returns the current volume (0-100).
func (s *serviceImpl) VolumePercent() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volumePercent
}

// ToggleMute drops the volume to zero, or restores the last non-zero
// level (70 if there never was one).
func (s *serviceImpl) ToggleMute() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.volumePercent > 0 {
		s.previousVolume = s.volumePercent
		s.setVolumeLocked(0)
		return
	}

	restore := s.previousVolume
	if restore <= 0 {
		restore = defaultUnmuteVolume
	}
	s.setVolumeLocked(restore)
}

func (s *serviceImpl) saveVolumeLocked() {
	if s.saver == nil {
		return
	}
	level := s.volumePercent
	muted := level == 0
	if muted {
		level = s.previousVolume
	}
	if err := s.saver.SaveVolume(level/100, muted); err != nil {
		slog.Warn("failed to save volume", "err", err)
	}
}

// ToggleFavorite flips the current track's favourite membership.
// No-op when idle.
func (s *serviceImpl) ToggleFavorite() {
	s.mu.Lock()
	defer s.mu.Unlock()

	track := s.catalog.Track(s.currentIndex)
	if track == nil {
		return
	}

	liked := s.favs.Toggle(track.File)
	s.emitFavorites(FavoritesChange{File: track.File, Liked: liked})
}

// IsFavorite reports favourite membership for a file.
func (s *serviceImpl) IsFavorite(file string) bool {
	return s.favs.Has(file)
}

// State returns the current playback state, always read from the
// primitive rather than tracked optimistically.
func (s *serviceImpl) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *serviceImpl) stateLocked() State {
	switch s.player.State() {
	case player.Playing:
		return StatePlaying
	case player.Paused:
		return StatePaused
	default:
		return StateStopped
	}
}

// IsPlaying mirrors the primitive's playing flag.
func (s *serviceImpl) IsPlaying() bool {
	return s.State() == StatePlaying
}

// TrackCount returns the number of tracks in the catalog.
func (s *serviceImpl) TrackCount() int {
	return s.catalog.Len()
}

// CurrentIndex returns the catalog position of the current track (-1 if none).
func (s *serviceImpl) CurrentIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentIndex
}

// CurrentTrack returns the current track, or nil when idle.
func (s *serviceImpl) CurrentTrack() *catalog.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Track(s.currentIndex)
}

// Position returns the current playback position.
func (s *serviceImpl) Position() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Position()
}

// Duration returns the current track duration.
func (s *serviceImpl) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Duration()
}

// ProgressPercent returns position/duration as 0-100, with 0 standing in
// while the duration is unknown.
func (s *serviceImpl) ProgressPercent() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	duration := s.player.Duration()
	if duration <= 0 {
		return 0
	}
	return float64(s.player.Position()) / float64(duration) * 100
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close shuts down the service.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.player.Stop()
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

func (s *serviceImpl) emitState(prev State) {
	current := s.stateLocked()
	if current == prev {
		return
	}
	e := StateChange{Previous: prev, Current: current}
	s.eachSub(func(sub *Subscription) { sub.sendState(e) })
}

func (s *serviceImpl) emitTrack(e TrackChange) {
	s.eachSub(func(sub *Subscription) { sub.sendTrack(e) })
}

func (s *serviceImpl) emitPosition(pos time.Duration) {
	s.eachSub(func(sub *Subscription) { sub.sendPosition(pos) })
}

func (s *serviceImpl) emitVolume(e VolumeChange) {
	s.eachSub(func(sub *Subscription) { sub.sendVolume(e) })
}

func (s *serviceImpl) emitFavorites(e FavoritesChange) {
	s.eachSub(func(sub *Subscription) { sub.sendFavorites(e) })
}

func (s *serviceImpl) emitError(e ErrorEvent) {
	s.eachSub(func(sub *Subscription) { sub.sendError(e) })
}

func (s *serviceImpl) eachSub(fn func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}

func clampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
