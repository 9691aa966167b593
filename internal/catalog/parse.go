package catalog

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

const (
	audioExt        = ".mp3"
	artistSeparator = " - "
	unknownArtist   = "Unknown Artist"
)

// parseListing extracts tracks from a directory-style HTML listing.
// Every anchor whose href ends in the audio extension (case-insensitive)
// becomes a candidate track.
func parseListing(r *html.Node) []Track {
	var tracks []Track

	for n := range r.Descendants() {
		if n.Type != html.ElementNode || n.Data != "a" {
			continue
		}
		for _, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if t, ok := parseEntry(attr.Val); ok {
				tracks = append(tracks, t)
			}
			break
		}
	}

	return tracks
}

// parseEntry turns one listing href into a track.
// The last path segment, URL-decoded, is the track identity; artist and
// display name come from splitting on the first " - " in the base name.
func parseEntry(href string) (Track, bool) {
	if !strings.HasSuffix(strings.ToLower(href), audioExt) {
		return Track{}, false
	}

	decoded, err := url.PathUnescape(href)
	if err != nil {
		decoded = href
	}

	// Strip directory components, tolerating both separators.
	file := decoded
	if i := strings.LastIndexAny(file, "/\\"); i >= 0 {
		file = file[i+1:]
	}
	if file == "" {
		return Track{}, false
	}

	name := file[:len(file)-len(audioExt)]

	artist := unknownArtist
	display := name
	if before, after, found := strings.Cut(name, artistSeparator); found {
		artist = strings.TrimSpace(before)
		display = strings.TrimSpace(after)
	}

	return Track{File: file, Display: display, Artist: artist}, true
}
