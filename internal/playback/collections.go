package playback

import (
	"strings"

	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/playlists"
)

// Favorites

// AddFavorite adds t, moving it to the front if already present.
func (s *Service) AddFavorite(t playlist.Track) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites.Add(t)
	s.collectionChangedLocked(CollectionFavorites)
}

// RemoveFavorite removes the track id. Returns false if it was not a favorite.
func (s *Service) RemoveFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.favorites.Remove(id) {
		return false
	}
	s.collectionChangedLocked(CollectionFavorites)
	return true
}

// ToggleFavorite adds or removes t and reports whether it is now a favorite.
func (s *Service) ToggleFavorite(t playlist.Track) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	on := s.favorites.Toggle(t)
	s.collectionChangedLocked(CollectionFavorites)
	return on
}

// IsFavorite reports whether the track id is a favorite.
func (s *Service) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.IsFavorite(id)
}

// Favorites returns favorites, most recent first.
func (s *Service) Favorites() []playlist.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Tracks()
}

// Recently played

// RecentlyPlayed returns up to 15 played tracks, most recent first.
func (s *Service) RecentlyPlayed() []playlist.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recent.Items()
}

// Search history

// AddSearch records a query. Blank queries are ignored.
func (s *Service) AddSearch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches.Push(query)
	s.collectionChangedLocked(CollectionSearchHistory)
}

// RemoveSearch forgets a query. Returns false if it was not recorded.
func (s *Service) RemoveSearch(query string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.searches.Remove(query) {
		return false
	}
	s.collectionChangedLocked(CollectionSearchHistory)
	return true
}

// ClearSearchHistory forgets all queries.
func (s *Service) ClearSearchHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches.Clear()
	s.collectionChangedLocked(CollectionSearchHistory)
}

// SearchHistory returns up to 10 queries, most recent first.
func (s *Service) SearchHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searches.Items()
}

// SuggestSearches returns recorded queries fuzzily matching prefix.
func (s *Service) SuggestSearches(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searches.Match(prefix)
}

// Playlists

// CreatePlaylist creates an empty playlist at the front of the collection.
func (s *Service) CreatePlaylist(name string) playlists.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.playlists.Create(name)
	s.collectionChangedLocked(CollectionPlaylists)
	return p
}

// RenamePlaylist renames a playlist. Returns false if id is unknown.
func (s *Service) RenamePlaylist(id, name string) bool {
	return s.mutatePlaylists(func(c *playlists.Collection) bool { return c.Rename(id, name) })
}

// DeletePlaylist deletes a playlist. Returns false if id is unknown.
func (s *Service) DeletePlaylist(id string) bool {
	return s.mutatePlaylists(func(c *playlists.Collection) bool { return c.Delete(id) })
}

// AddToPlaylist prepends t to a playlist. Duplicates are allowed.
func (s *Service) AddToPlaylist(id string, t playlist.Track) bool {
	return s.mutatePlaylists(func(c *playlists.Collection) bool { return c.AddTrack(id, t) })
}

// RemoveFromPlaylist removes every occurrence of trackID from a playlist.
func (s *Service) RemoveFromPlaylist(id, trackID string) bool {
	return s.mutatePlaylists(func(c *playlists.Collection) bool { return c.RemoveTrack(id, trackID) })
}

// Playlists returns a deep copy of all playlists, newest first.
func (s *Service) Playlists() []playlists.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlists.List()
}

// Playlist returns a copy of one playlist.
func (s *Service) Playlist(id string) (playlists.Playlist, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlists.Get(id)
}

// SearchPlaylists fuzzily matches playlist names.
func (s *Service) SearchPlaylists(query string) []playlists.SearchItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlists.Search(query)
}

func (s *Service) mutatePlaylists(fn func(*playlists.Collection) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !fn(s.playlists) {
		return false
	}
	s.collectionChangedLocked(CollectionPlaylists)
	return true
}

func (s *Service) collectionChangedLocked(c Collection) {
	s.persistLocked()
	s.notifyCollectionLocked(c)
}
