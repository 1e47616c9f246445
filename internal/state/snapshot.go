package state

import (
	"encoding/json"
	"time"

	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/playlists"
)

// Persisted enum values.
const (
	RepeatOff = "off"
	RepeatAll = "all"
	RepeatOne = "one"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Snapshot is the persisted projection of the player state.
// Transport state and the current track are not part of it.
type Snapshot struct {
	Queue          []playlist.Track
	CurrentIndex   int
	Shuffle        bool
	RepeatMode     string
	Downloaded     map[string]string
	Theme          string
	RecentlyPlayed []playlist.Track
	SearchHistory  []string
	Favorites      []playlist.Track
	Playlists      []playlists.Playlist
}

// DefaultSnapshot returns the state of a fresh install.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Queue:          []playlist.Track{},
		RepeatMode:     RepeatOff,
		Downloaded:     map[string]string{},
		Theme:          ThemeLight,
		RecentlyPlayed: []playlist.Track{},
		SearchHistory:  []string{},
		Favorites:      []playlist.Track{},
		Playlists:      []playlists.Playlist{},
	}
}

// Wire format. Every field is optional on read.
type snapshotJSON struct {
	Queue          []trackJSON       `json:"queue"`
	CurrentIndex   *int              `json:"currentIndex,omitempty"`
	Shuffle        *bool             `json:"shuffle,omitempty"`
	RepeatMode     string            `json:"repeatMode,omitempty"`
	Downloaded     map[string]string `json:"downloaded"`
	Theme          string            `json:"theme,omitempty"`
	RecentlyPlayed []trackJSON       `json:"recentlyPlayed"`
	SearchHistory  []string          `json:"searchHistory"`
	Favorites      []trackJSON       `json:"favorites"`
	Playlists      []playlistJSON    `json:"playlists"`
}

type trackJSON struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Title       string       `json:"title,omitempty"` // read-only alias
	Artists     string       `json:"artists,omitempty"`
	Album       string       `json:"album,omitempty"`
	Image       string       `json:"image,omitempty"`
	Duration    float64      `json:"duration,omitempty"` // seconds
	DownloadURL []sourceJSON `json:"downloadUrl,omitempty"`
}

type sourceJSON struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
}

type playlistJSON struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Songs []trackJSON `json:"songs"`
}

// Encode serializes the snapshot.
func (s Snapshot) Encode() ([]byte, error) {
	ci, sh := s.CurrentIndex, s.Shuffle
	w := snapshotJSON{
		Queue:          encodeTracks(s.Queue),
		CurrentIndex:   &ci,
		Shuffle:        &sh,
		RepeatMode:     s.RepeatMode,
		Downloaded:     s.Downloaded,
		Theme:          s.Theme,
		RecentlyPlayed: encodeTracks(s.RecentlyPlayed),
		SearchHistory:  s.SearchHistory,
		Favorites:      encodeTracks(s.Favorites),
		Playlists:      make([]playlistJSON, 0, len(s.Playlists)),
	}
	if w.Downloaded == nil {
		w.Downloaded = map[string]string{}
	}
	if w.SearchHistory == nil {
		w.SearchHistory = []string{}
	}
	for _, pl := range s.Playlists {
		w.Playlists = append(w.Playlists, playlistJSON{
			ID:    pl.ID,
			Name:  pl.Name,
			Songs: encodeTracks(pl.Tracks),
		})
	}
	return json.Marshal(w)
}

// DecodeSnapshot parses a stored snapshot. Missing fields take their
// defaults and unknown enum values fall back to the default.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var w snapshotJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return Snapshot{}, err
	}

	s := DefaultSnapshot()
	s.Queue = decodeTracks(w.Queue)
	if w.CurrentIndex != nil {
		s.CurrentIndex = *w.CurrentIndex
	}
	if w.Shuffle != nil {
		s.Shuffle = *w.Shuffle
	}
	switch w.RepeatMode {
	case RepeatAll, RepeatOne:
		s.RepeatMode = w.RepeatMode
	}
	if w.Theme == ThemeDark {
		s.Theme = ThemeDark
	}
	for id, loc := range w.Downloaded {
		if id != "" && loc != "" {
			s.Downloaded[id] = loc
		}
	}
	s.RecentlyPlayed = decodeTracks(w.RecentlyPlayed)
	if w.SearchHistory != nil {
		s.SearchHistory = w.SearchHistory
	}
	s.Favorites = decodeTracks(w.Favorites)
	for _, pl := range w.Playlists {
		s.Playlists = append(s.Playlists, playlists.Playlist{
			ID:     pl.ID,
			Name:   pl.Name,
			Tracks: decodeTracks(pl.Songs),
		})
	}
	return s, nil
}

func encodeTracks(tracks []playlist.Track) []trackJSON {
	out := make([]trackJSON, len(tracks))
	for i, t := range tracks {
		out[i] = trackJSON{
			ID:       t.ID,
			Name:     t.Title,
			Artists:  t.Artists,
			Album:    t.Album,
			Image:    t.Artwork,
			Duration: t.Duration.Seconds(),
		}
		for _, src := range t.Sources {
			out[i].DownloadURL = append(out[i].DownloadURL, sourceJSON(src))
		}
	}
	return out
}

func decodeTracks(in []trackJSON) []playlist.Track {
	out := make([]playlist.Track, 0, len(in))
	for _, w := range in {
		if w.ID == "" {
			continue
		}
		title := w.Name
		if title == "" {
			title = w.Title
		}
		t := playlist.Track{
			ID:       w.ID,
			Title:    title,
			Artists:  w.Artists,
			Album:    w.Album,
			Artwork:  w.Image,
			Duration: time.Duration(w.Duration * float64(time.Second)),
		}
		for _, src := range w.DownloadURL {
			t.Sources = append(t.Sources, playlist.Source(src))
		}
		out = append(out, t)
	}
	return out
}
