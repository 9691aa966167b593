package player

import "testing"

func TestState_String(t *testing.T) {
	cases := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(42), "Unknown"},
	}

	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("State(%d).String() = %q, want %q", tc.state, got, tc.want)
		}
	}
}

func TestState_IsActive(t *testing.T) {
	if Stopped.IsActive() {
		t.Error("Stopped should not be active")
	}
	if !Playing.IsActive() || !Paused.IsActive() {
		t.Error("Playing and Paused should be active")
	}
}

func TestMock_ToggleCycle(t *testing.T) {
	m := NewMock()

	m.Toggle()
	if m.State() != Stopped {
		t.Error("Toggle when stopped should be a no-op")
	}

	if err := m.Play("a.mp3"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	m.Toggle()
	if m.State() != Paused {
		t.Errorf("State = %v, want Paused", m.State())
	}
	m.Toggle()
	if m.State() != Playing {
		t.Errorf("State = %v, want Playing", m.State())
	}
}

func TestMock_VolumeClamped(t *testing.T) {
	m := NewMock()

	m.SetVolume(1.5)
	if m.Volume() != 1 {
		t.Errorf("Volume = %v, want clamped to 1", m.Volume())
	}
	m.SetVolume(-0.5)
	if m.Volume() != 0 {
		t.Errorf("Volume = %v, want clamped to 0", m.Volume())
	}
}

func TestIsMusicFile(t *testing.T) {
	if !IsMusicFile("song.mp3") || !IsMusicFile("SONG.MP3") || !IsMusicFile("x.flac") {
		t.Error("audio extensions should be accepted")
	}
	if IsMusicFile("cover.jpg") {
		t.Error("non-audio extensions should be rejected")
	}
}
