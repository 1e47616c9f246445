package playlist

import "github.com/sahilm/fuzzy"

// Standard history bounds.
const (
	RecentlyPlayedLimit = 15
	SearchHistoryLimit  = 10
)

// History is a most-recent-first list without duplicate keys.
// Pushing an existing key moves it to the front. A positive limit evicts the
// oldest entries once exceeded; zero means unbounded.
type History[T any] struct {
	items []T
	key   func(T) string
	text  func(T) string // searchable text for Match
	limit int
}

// NewHistory creates an empty history keyed by key.
func NewHistory[T any](limit int, key func(T) string) *History[T] {
	return &History[T]{
		items: make([]T, 0),
		key:   key,
		text:  key,
		limit: limit,
	}
}

// NewTrackHistory creates a history of tracks keyed by track ID.
// Match searches title and artists.
func NewTrackHistory(limit int) *History[Track] {
	h := NewHistory(limit, func(t Track) string { return t.ID })
	h.text = func(t Track) string { return t.Title + " " + t.Artists }
	return h
}

// NewQueryHistory creates a history of search queries.
func NewQueryHistory(limit int) *History[string] {
	return NewHistory(limit, func(q string) string { return q })
}

// Push moves item to the front, dropping any older entry with the same key.
func (h *History[T]) Push(item T) {
	k := h.key(item)
	next := make([]T, 0, len(h.items)+1)
	next = append(next, item)
	for _, it := range h.items {
		if h.key(it) != k {
			next = append(next, it)
		}
	}
	if h.limit > 0 && len(next) > h.limit {
		next = next[:h.limit]
	}
	h.items = next
}

// Remove deletes the entry with the given key.
// Returns false if no entry matched.
func (h *History[T]) Remove(key string) bool {
	for i, it := range h.items {
		if h.key(it) == key {
			h.items = append(h.items[:i], h.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether an entry with the given key exists.
func (h *History[T]) Contains(key string) bool {
	for _, it := range h.items {
		if h.key(it) == key {
			return true
		}
	}
	return false
}

// Clear removes all entries.
func (h *History[T]) Clear() {
	h.items = h.items[:0]
}

// Items returns a copy of the entries, most recent first.
func (h *History[T]) Items() []T {
	result := make([]T, len(h.items))
	copy(result, h.items)
	return result
}

// Len returns the number of entries.
func (h *History[T]) Len() int {
	return len(h.items)
}

// Restore replaces the entries from persisted data, applying dedup and the
// limit so a hand-edited snapshot cannot break the invariants.
func (h *History[T]) Restore(items []T) {
	h.items = h.items[:0]
	for i := len(items) - 1; i >= 0; i-- {
		h.Push(items[i])
	}
}

// Match returns entries whose text fuzzily matches query, best match first.
// An empty query returns every entry in history order.
func (h *History[T]) Match(query string) []T {
	if query == "" {
		return h.Items()
	}
	texts := make([]string, len(h.items))
	for i, it := range h.items {
		texts[i] = h.text(it)
	}
	matches := fuzzy.Find(query, texts)
	result := make([]T, 0, len(matches))
	for _, m := range matches {
		result = append(result, h.items[m.Index])
	}
	return result
}
