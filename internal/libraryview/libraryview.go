// Package libraryview projects the catalog, the favourites set, and the
// active filter into the grouped section list the library panel renders.
package libraryview

import (
	"strings"

	"github.com/mvaillant/strum/internal/catalog"
	"github.com/mvaillant/strum/internal/filter"
)

// EmptyFavouritesMessage is shown in place of track rows when the
// favourites section has none.
const EmptyFavouritesMessage = "No favourites yet"

// favouritesAlias is a catalog naming convention: tracks credited to this
// artist belong to the favourites section, not to an artist group of
// their own.
const favouritesAlias = "with you"

// Section is one collapsible group of tracks in the library panel.
// Expanded is the default presentation; the panel owns the live state.
type Section struct {
	Name         string
	Tracks       []catalog.Track
	IsFavourites bool
	Expanded     bool
}

// Favorites is the membership query the builder needs.
type Favorites interface {
	Has(file string) bool
}

// Build recomputes the full section list from its inputs. It is a pure
// projection with no retained state between calls.
//
// With no filter the favourites section comes first, always present even
// when empty, followed by artist sections in catalog-encounter order.
// A favourites filter yields only the favourites section; an artist
// filter yields only that artist's section, or nothing when the name is
// unknown.
func Build(c *catalog.Catalog, favs Favorites, f filter.Filter) []Section {
	groups := make(map[string][]catalog.Track)
	var order []string
	var favourite []catalog.Track

	for _, t := range c.Tracks() {
		aliased := strings.EqualFold(t.Artist, favouritesAlias)
		if aliased {
			t.Artist = filter.FavouritesName
		}
		if aliased || favs.Has(t.File) {
			favourite = append(favourite, t)
		}
		if aliased {
			continue
		}
		if _, ok := groups[t.Artist]; !ok {
			order = append(order, t.Artist)
		}
		groups[t.Artist] = append(groups[t.Artist], t)
	}

	switch f.Kind {
	case filter.Favourites:
		return []Section{favouritesSection(favourite, true)}

	case filter.Artist:
		tracks, ok := groups[f.Artist]
		if !ok {
			return nil
		}
		return []Section{{Name: f.Artist, Tracks: tracks, Expanded: true}}

	default:
		sections := make([]Section, 0, len(order)+1)
		sections = append(sections, favouritesSection(favourite, len(order) == 0))
		for _, artist := range order {
			sections = append(sections, Section{Name: artist, Tracks: groups[artist]})
		}
		return sections
	}
}

func favouritesSection(tracks []catalog.Track, expanded bool) Section {
	return Section{
		Name:         filter.FavouritesName,
		Tracks:       tracks,
		IsFavourites: true,
		Expanded:     expanded,
	}
}
