package favorites

import (
	"errors"
	"testing"
)

// fakeSlot is an in-memory Slot for tests.
type fakeSlot struct {
	values map[string]string
	getErr error
	setErr error
	sets   int
}

func newFakeSlot() *fakeSlot {
	return &fakeSlot{values: make(map[string]string)}
}

func (f *fakeSlot) GetValue(key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.values[key], nil
}

func (f *fakeSlot) SetValue(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	f.sets++
	return nil
}

func TestStore_ToggleAddsAndPersists(t *testing.T) {
	slot := newFakeSlot()
	s := NewStore(slot)

	if !s.Toggle("a.mp3") {
		t.Error("Toggle should return true after adding")
	}
	if !s.Has("a.mp3") {
		t.Error("Has should be true after adding")
	}
	if slot.values[StorageKey] != `["a.mp3"]` {
		t.Errorf("persisted = %q, want JSON array", slot.values[StorageKey])
	}
}

func TestStore_ToggleTwiceRestoresOriginal(t *testing.T) {
	slot := newFakeSlot()
	s := NewStore(slot)

	s.Toggle("a.mp3")
	if s.Toggle("a.mp3") {
		t.Error("second Toggle should return false")
	}
	if s.Has("a.mp3") {
		t.Error("double toggle should restore non-membership")
	}
	if slot.sets != 2 {
		t.Errorf("sets = %d, want persist after each toggle", slot.sets)
	}
	if slot.values[StorageKey] != `[]` {
		t.Errorf("persisted = %q, want empty array", slot.values[StorageKey])
	}
}

func TestStore_LoadRoundTrip(t *testing.T) {
	slot := newFakeSlot()
	slot.values[StorageKey] = `["a.mp3","b.mp3"]`

	s := NewStore(slot)
	s.Load()

	if !s.Has("a.mp3") || !s.Has("b.mp3") {
		t.Error("Load should restore persisted members")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestStore_LoadCorruptDataIsEmpty(t *testing.T) {
	slot := newFakeSlot()
	slot.values[StorageKey] = `{"not":"an array"`

	s := NewStore(slot)
	s.Load()

	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 after corrupt load", s.Len())
	}
}

func TestStore_LoadReadErrorIsEmpty(t *testing.T) {
	slot := newFakeSlot()
	slot.getErr = errors.New("disk on fire")

	s := NewStore(slot)
	s.Load()

	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 when storage unreadable", s.Len())
	}
}

func TestStore_WriteFailureKeepsMemoryState(t *testing.T) {
	slot := newFakeSlot()
	slot.setErr = errors.New("quota exceeded")

	s := NewStore(slot)
	if !s.Toggle("a.mp3") {
		t.Error("Toggle should report the in-memory state")
	}
	if !s.Has("a.mp3") {
		t.Error("write failure must not roll back the in-memory mutation")
	}
}

func TestStore_ToleratesStaleEntries(t *testing.T) {
	slot := newFakeSlot()
	slot.values[StorageKey] = `["gone.mp3"]`

	s := NewStore(slot)
	s.Load()

	if !s.Has("gone.mp3") {
		t.Error("stale entries are kept, not dropped")
	}
}
