package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/mvaillant/strum/internal/icons"
)

func TestRenderShowsTrackInfo(t *testing.T) {
	icons.Init("none")

	s := State{
		Playing:       true,
		Title:         "Dawn",
		Artist:        "Aska",
		Position:      65 * time.Second,
		Duration:      238 * time.Second,
		VolumePercent: 70,
	}

	out := Render(s, 120)
	for _, want := range []string{"Dawn", "Aska", "1:05", "3:58", "70%"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q", want)
		}
	}
}

func TestRenderIdle(t *testing.T) {
	icons.Init("none")

	out := Render(State{VolumePercent: 70}, 80)
	if !strings.Contains(out, "Nothing playing") {
		t.Error("idle bar should show the idle hint")
	}
}

func TestRenderUnknownDuration(t *testing.T) {
	icons.Init("none")

	s := State{
		Playing:       true,
		Title:         "Dawn",
		Artist:        "Aska",
		VolumePercent: 70,
	}
	out := Render(s, 120)
	if !strings.Contains(out, "0:00 / 0:00") {
		t.Error("unknown duration should render as 0:00")
	}
}

func TestRenderPausedSymbol(t *testing.T) {
	icons.Init("none")

	s := State{
		Paused:        true,
		Title:         "Dawn",
		VolumePercent: 50,
	}
	out := Render(s, 120)
	if !strings.Contains(out, icons.Pause()) {
		t.Error("paused bar should show the pause symbol")
	}
}

func TestRenderNarrowWidth(t *testing.T) {
	icons.Init("none")

	s := State{
		Playing:       true,
		Title:         "A very long track title that cannot possibly fit",
		Artist:        "An artist with an equally long name",
		Position:      time.Second,
		Duration:      time.Minute,
		VolumePercent: 100,
	}
	// Should not panic at narrow widths.
	_ = Render(s, 40)
	_ = Render(s, 10)
	_ = Render(s, 0)
}
