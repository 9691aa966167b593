// Package player wraps the beep audio pipeline behind a small playback
// primitive: one track at a time, play/pause/seek/volume.
package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
)

type Player struct {
	state    State
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File

	trackInfo   *TrackInfo
	volumeLevel float64
	muted       bool

	finishedCh chan struct{}
}

// TrackInfo is metadata for the loaded track. Title falls back to the file
// name when the file carries no tags.
type TrackInfo struct {
	Path     string
	Title    string
	Artist   string
	Album    string
	Year     int
	Duration time.Duration
}

var speakerInitialized bool

func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel: 0.7,
		finishedCh:  make(chan struct{}, 1),
	}
}

// Play loads the file and starts playback, replacing any current track.
func (p *Player) Play(path string) error {
	p.Stop()

	ext := strings.ToLower(filepath.Ext(path))
	if ext != extMP3 && ext != extFLAC {
		return fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		f.Close()
		return err
	}

	if !speakerInitialized {
		err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
		if err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerInitialized = true
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: streamer, Paused: false}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   p.levelToVolume(p.volumeLevel),
		Silent:   p.muted || p.volumeLevel <= 0,
	}

	info, _ := ReadTrackInfo(path)
	if info == nil {
		info = &TrackInfo{
			Path:  path,
			Title: filepath.Base(path),
		}
	}
	info.Duration = format.SampleRate.D(streamer.Len())
	p.trackInfo = info

	p.state = Playing

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
	})))

	return nil
}

// Stop stops playback and releases resources.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.trackInfo = nil
	p.state = Stopped
}

// Pause pauses playback.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Toggle toggles between playing and paused states.
func (p *Player) Toggle() {
	switch p.state {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (p *Player) State() State { return p.state }

func (p *Player) TrackInfo() *TrackInfo { return p.trackInfo }

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the loaded track's duration, or 0 when nothing is loaded.
func (p *Player) Duration() time.Duration {
	if p.trackInfo == nil {
		return 0
	}
	return p.trackInfo.Duration
}

// SeekTo moves playback to an absolute position, clamped to the track.
func (p *Player) SeekTo(position time.Duration) {
	if p.streamer == nil || p.state == Stopped {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	newPos := p.format.SampleRate.N(position)
	newPos = max(newPos, 0)
	if maxPos := p.streamer.Len() - 1; newPos > maxPos {
		newPos = maxPos
	}
	_ = p.streamer.Seek(newPos)
}

// FinishedChan reports end-of-track events. The channel carries one token
// per finished track; receivers drive what happens next.
func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}

// IsMusicFile reports whether the path has a playable audio extension.
func IsMusicFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == extMP3 || ext == extFLAC
}
