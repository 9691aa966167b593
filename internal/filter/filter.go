// Package filter maps spotlight cards to a library filter.
package filter

import (
	"slices"
	"strings"
)

// FavouritesName is the pseudo-artist owning the favourites section.
// Matched case-insensitively; real artist names match exactly.
const FavouritesName = "Favourites"

// Kind selects the filter mode.
type Kind int

const (
	None Kind = iota
	Favourites
	Artist
)

// Filter narrows the library view to one section. The zero value shows
// the full grouped view.
type Filter struct {
	Kind   Kind
	Artist string // set only for Kind == Artist
}

// ByFavourites returns the favourites-only filter.
func ByFavourites() Filter {
	return Filter{Kind: Favourites}
}

// ByArtist returns a single-artist filter.
func ByArtist(name string) Filter {
	return Filter{Kind: Artist, Artist: name}
}

// IsNone reports whether the filter shows the full view.
func (f Filter) IsNone() bool {
	return f.Kind == None
}

// Card is one spotlight card: a display title plus an optional explicit
// artist tag.
type Card struct {
	Artist string
	Title  string
}

// Resolve maps the card at position i to a filter. artists is the raw
// artist list in first-seen catalog order, as Catalog.Artists returns
// it, favourites-aliased names included; a card landing on an aliased
// name filters to a section that does not exist and renders nothing.
// Resolution order: favourites match (case-insensitive, on tag or
// title), explicit tag against a known artist, title against a known
// artist, then the card's ordinal position against the artist list.
// Returns false when nothing resolves, in which case the caller leaves
// the view unchanged.
func Resolve(cards []Card, i int, artists []string) (Filter, bool) {
	if i < 0 || i >= len(cards) {
		return Filter{}, false
	}
	tag := strings.TrimSpace(cards[i].Artist)
	title := strings.TrimSpace(cards[i].Title)

	if strings.EqualFold(tag, FavouritesName) || strings.EqualFold(title, FavouritesName) {
		return ByFavourites(), true
	}
	if tag != "" && slices.Contains(artists, tag) {
		return ByArtist(tag), true
	}
	if title != "" && slices.Contains(artists, title) {
		return ByArtist(title), true
	}
	if i < len(artists) {
		return ByArtist(artists[i]), true
	}
	return Filter{}, false
}
