// Package favorites maintains the persistent set of liked tracks.
package favorites

import (
	"encoding/json"
	"log/slog"
	"slices"
)

// StorageKey is the single state slot holding the favourites set,
// encoded as a JSON array of track filenames.
const StorageKey = "favourites"

// Slot is the persistent key-value storage the store writes through.
type Slot interface {
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}

// Store is a persistent set of favourite track files. Entries may refer to
// files no longer present in the catalog; stale entries are kept, not errors.
type Store struct {
	slot  Slot
	files map[string]bool
	order []string
}

// NewStore creates an empty store backed by the given slot.
func NewStore(slot Slot) *Store {
	return &Store{
		slot:  slot,
		files: make(map[string]bool),
	}
}

// Load reads the persisted set. Missing or corrupt data leaves the set
// empty; Load never fails, matching the store's degrade-only contract.
func (s *Store) Load() {
	raw, err := s.slot.GetValue(StorageKey)
	if err != nil {
		slog.Warn("failed to load favourites", "err", err)
		return
	}
	if raw == "" {
		return
	}

	var files []string
	if err := json.Unmarshal([]byte(raw), &files); err != nil {
		// Corrupt persisted data is discarded silently.
		slog.Warn("discarding corrupt favourites data", "err", err)
		return
	}

	s.files = make(map[string]bool, len(files))
	s.order = s.order[:0]
	for _, f := range files {
		if !s.files[f] {
			s.files[f] = true
			s.order = append(s.order, f)
		}
	}
}

// Has reports whether a file is favourited.
func (s *Store) Has(file string) bool {
	return s.files[file]
}

// Toggle flips membership for a file and persists the full set before
// returning. Returns the new membership state. A persistence failure is
// logged but does not roll back the in-memory change.
func (s *Store) Toggle(file string) bool {
	if s.files[file] {
		delete(s.files, file)
		if i := slices.Index(s.order, file); i >= 0 {
			s.order = slices.Delete(s.order, i, i+1)
		}
	} else {
		s.files[file] = true
		s.order = append(s.order, file)
	}

	s.save()
	return s.files[file]
}

// Files returns the favourite files in insertion order.
func (s *Store) Files() []string {
	return slices.Clone(s.order)
}

// Len returns the number of favourites.
func (s *Store) Len() int {
	return len(s.files)
}

func (s *Store) save() {
	data, err := json.Marshal(s.order)
	if err != nil {
		slog.Warn("failed to encode favourites", "err", err)
		return
	}
	if err := s.slot.SetValue(StorageKey, string(data)); err != nil {
		slog.Warn("failed to save favourites", "err", err)
	}
}
