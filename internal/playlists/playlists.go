package playlists

import (
	"github.com/google/uuid"

	"github.com/Sumitb09/music-player/internal/playlist"
)

// Playlist is a named, user-ordered list of tracks.
type Playlist struct {
	ID     string
	Name   string
	Tracks []playlist.Track
}

func (p Playlist) clone() Playlist {
	tracks := make([]playlist.Track, len(p.Tracks))
	copy(tracks, p.Tracks)
	p.Tracks = tracks
	return p
}

// Collection holds the user's playlists, newest first.
// It is not safe for concurrent use; the owner serializes access.
type Collection struct {
	items []Playlist
	newID func() string
}

// New creates an empty collection that allocates uuid ids.
func New() *Collection {
	return &Collection{
		items: make([]Playlist, 0),
		newID: uuid.NewString,
	}
}

// Create prepends an empty playlist and returns it.
func (c *Collection) Create(name string) Playlist {
	pl := Playlist{
		ID:     c.newID(),
		Name:   name,
		Tracks: make([]playlist.Track, 0),
	}
	c.items = append([]Playlist{pl}, c.items...)
	return pl.clone()
}

// Rename renames a playlist.
// Returns false if no playlist has the given id.
func (c *Collection) Rename(id, name string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items[i].Name = name
	return true
}

// Delete deletes a playlist and all its tracks.
// Returns false if no playlist has the given id.
func (c *Collection) Delete(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// AddTrack prepends a track to a playlist. The same track may appear more
// than once.
func (c *Collection) AddTrack(id string, t playlist.Track) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items[i].Tracks = append([]playlist.Track{t}, c.items[i].Tracks...)
	return true
}

// RemoveTrack removes every occurrence of trackID from a playlist.
// Returns false if the playlist does not exist or does not contain the track.
func (c *Collection) RemoveTrack(id, trackID string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	kept := make([]playlist.Track, 0, len(c.items[i].Tracks))
	for _, t := range c.items[i].Tracks {
		if t.ID != trackID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(c.items[i].Tracks) {
		return false
	}
	c.items[i].Tracks = kept
	return true
}

// Get returns a copy of the playlist with the given id.
func (c *Collection) Get(id string) (Playlist, bool) {
	i := c.index(id)
	if i < 0 {
		return Playlist{}, false
	}
	return c.items[i].clone(), true
}

// List returns a deep copy of all playlists, newest first.
func (c *Collection) List() []Playlist {
	result := make([]Playlist, len(c.items))
	for i, pl := range c.items {
		result[i] = pl.clone()
	}
	return result
}

// Len returns the number of playlists.
func (c *Collection) Len() int {
	return len(c.items)
}

// Restore replaces the collection from persisted data. Entries without an id
// get a fresh one; later duplicates of an id are dropped.
func (c *Collection) Restore(items []Playlist) {
	c.items = make([]Playlist, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, pl := range items {
		if pl.ID == "" {
			pl.ID = c.newID()
		}
		if seen[pl.ID] {
			continue
		}
		seen[pl.ID] = true
		if pl.Tracks == nil {
			pl.Tracks = make([]playlist.Track, 0)
		}
		c.items = append(c.items, pl.clone())
	}
}

func (c *Collection) index(id string) int {
	for i, pl := range c.items {
		if pl.ID == id {
			return i
		}
	}
	return -1
}
