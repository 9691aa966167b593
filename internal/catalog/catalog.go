// Package catalog loads and indexes the track listing from the song server.
package catalog

// Track is one playable entry from the server listing.
// File is the storage filename and the only unique identity;
// Display and Artist are parsed from it and may repeat across tracks.
type Track struct {
	File    string
	Display string
	Artist  string
}

// Catalog is the ordered track list for the session plus a file -> index map.
// The order is the server listing order and is the index space used by
// next/previous navigation. Built once per session, immutable afterwards.
type Catalog struct {
	tracks []Track
	index  map[string]int
}

// New builds a catalog from an ordered track list.
func New(tracks []Track) *Catalog {
	c := &Catalog{
		tracks: tracks,
		index:  make(map[string]int, len(tracks)),
	}
	for i, t := range tracks {
		c.index[t.File] = i
	}
	return c
}

// Empty returns a catalog with no tracks.
func Empty() *Catalog {
	return New(nil)
}

// Tracks returns all tracks in listing order.
func (c *Catalog) Tracks() []Track {
	return c.tracks
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// Track returns the track at index i, or nil if out of bounds.
func (c *Catalog) Track(i int) *Track {
	if i < 0 || i >= len(c.tracks) {
		return nil
	}
	return &c.tracks[i]
}

// IndexOf returns the catalog position for a file, or -1 if unknown.
func (c *Catalog) IndexOf(file string) int {
	i, ok := c.index[file]
	if !ok {
		return -1
	}
	return i
}

// Artists returns artist names in first-seen catalog order.
func (c *Catalog) Artists() []string {
	seen := make(map[string]bool)
	var artists []string
	for _, t := range c.tracks {
		if !seen[t.Artist] {
			seen[t.Artist] = true
			artists = append(artists, t.Artist)
		}
	}
	return artists
}
