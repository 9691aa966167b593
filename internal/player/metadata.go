package player

import (
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
)

// ReadTrackInfo reads embedded tag metadata from an audio file.
// The result never has an empty title; the file name stands in when the
// file carries no usable tags.
func ReadTrackInfo(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	title := m.Title()
	if title == "" {
		title = filepath.Base(path)
	}

	return &TrackInfo{
		Path:   path,
		Title:  title,
		Artist: m.Artist(),
		Album:  m.Album(),
		Year:   m.Year(),
	}, nil
}
