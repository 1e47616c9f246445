package playlists

import (
	"strconv"

	"github.com/sahilm/fuzzy"
)

// SearchItem represents a playlist in search results for add-to-playlist.
type SearchItem struct {
	ID         string
	Name       string
	TrackCount int
}

// FilterValue returns the searchable text for filtering.
func (s SearchItem) FilterValue() string {
	return s.Name
}

// DisplayText returns the display string for search results.
func (s SearchItem) DisplayText() string {
	return s.Name + " (" + strconv.Itoa(s.TrackCount) + ")"
}

type searchSource []SearchItem

func (s searchSource) String(i int) string { return s[i].FilterValue() }
func (s searchSource) Len() int            { return len(s) }

// Search returns playlists whose name fuzzily matches query, best match first.
// An empty query returns all playlists in collection order.
func (c *Collection) Search(query string) []SearchItem {
	items := make(searchSource, len(c.items))
	for i, pl := range c.items {
		items[i] = SearchItem{ID: pl.ID, Name: pl.Name, TrackCount: len(pl.Tracks)}
	}
	if query == "" {
		return items
	}

	matches := fuzzy.FindFrom(query, items)
	result := make([]SearchItem, 0, len(matches))
	for _, m := range matches {
		result = append(result, items[m.Index])
	}
	return result
}
