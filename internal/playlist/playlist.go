package playlist

import "time"

// Source is one remote audio candidate for a track.
type Source struct {
	Quality string // e.g. "320kbps"
	URL     string
}

// Track represents a single playable catalog item.
// Tracks are immutable once resolved; identity is ID.
type Track struct {
	ID       string
	Title    string
	Artists  string // display string, comma separated
	Album    string
	Artwork  string // artwork URL, already normalized
	Duration time.Duration
	Sources  []Source
}

// BestSource returns the URL of the first source matching the preferred
// quality, falling back to the first listed source. Returns "" when the
// track has no usable source.
func (t Track) BestSource(preferred string) string {
	if preferred != "" {
		for _, s := range t.Sources {
			if s.Quality == preferred && s.URL != "" {
				return s.URL
			}
		}
	}
	if len(t.Sources) > 0 {
		return t.Sources[0].URL
	}
	return ""
}

// Playlist holds an ordered collection of tracks.
type Playlist struct {
	tracks []Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]Track, 0),
	}
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Prepend inserts a track at the front.
func (p *Playlist) Prepend(t Track) {
	p.tracks = append([]Track{t}, p.tracks...)
}

// Remove removes the track at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.tracks) {
		return false
	}
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)
	return true
}

// RemoveID removes every track with the given id.
// Returns the number of tracks removed.
func (p *Playlist) RemoveID(id string) int {
	kept := p.tracks[:0]
	removed := 0
	for _, t := range p.tracks {
		if t.ID == id {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	p.tracks = kept
	return removed
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Move moves the track at fromIndex to toIndex (splice, not swap).
// toIndex is clamped to the list bounds.
// Returns false if fromIndex is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	if fromIndex < 0 || fromIndex >= len(p.tracks) {
		return false
	}
	toIndex = max(min(toIndex, len(p.tracks)-1), 0)
	if fromIndex == toIndex {
		return true
	}

	track := p.tracks[fromIndex]
	// Remove from old position
	p.tracks = append(p.tracks[:fromIndex], p.tracks[fromIndex+1:]...)
	// Insert at new position
	p.tracks = append(p.tracks[:toIndex], append([]Track{track}, p.tracks[toIndex:]...)...)
	return true
}
