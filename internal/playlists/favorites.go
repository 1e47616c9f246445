package playlists

import "github.com/Sumitb09/music-player/internal/playlist"

// Favorites is the user's set of liked tracks, most recently added first.
type Favorites struct {
	h *playlist.History[playlist.Track]
}

// NewFavorites creates an empty favorites set.
func NewFavorites() *Favorites {
	return &Favorites{h: playlist.NewTrackHistory(0)}
}

// Add puts a track at the front, moving it there if already present.
func (f *Favorites) Add(t playlist.Track) {
	f.h.Push(t)
}

// Remove removes a track by id. Returns false if it was not a favorite.
func (f *Favorites) Remove(trackID string) bool {
	return f.h.Remove(trackID)
}

// IsFavorite checks if a track is in favorites.
func (f *Favorites) IsFavorite(trackID string) bool {
	return f.h.Contains(trackID)
}

// Toggle adds a track to favorites if not there, removes it if already favorited.
// Returns the new favorite status (true = now favorited).
func (f *Favorites) Toggle(t playlist.Track) bool {
	if f.h.Remove(t.ID) {
		return false
	}
	f.h.Push(t)
	return true
}

// Tracks returns a copy of the favorites, most recent first.
func (f *Favorites) Tracks() []playlist.Track {
	return f.h.Items()
}

// IDs returns favorite track ids as a map for efficient lookup.
func (f *Favorites) IDs() map[string]bool {
	items := f.h.Items()
	ids := make(map[string]bool, len(items))
	for _, t := range items {
		ids[t.ID] = true
	}
	return ids
}

// Len returns the number of favorites.
func (f *Favorites) Len() int {
	return f.h.Len()
}

// Restore replaces favorites from persisted data, dropping duplicate ids.
func (f *Favorites) Restore(tracks []playlist.Track) {
	f.h.Restore(tracks)
}
