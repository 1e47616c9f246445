package catalog

import (
	"bytes"
	"encoding/json"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/Sumitb09/music-player/internal/playlist"
)

// PlaceholderArtwork is used when a record carries no usable image.
const PlaceholderArtwork = "https://via.placeholder.com/300x300.png?text=Music"

// preferredImageQuality marks the largest artwork rendition.
const preferredImageQuality = "500"

// Album is a catalog album search result.
type Album struct {
	ID        string
	Name      string
	Artists   string
	Year      string
	Artwork   string
	SongCount int
}

// Artist is a catalog artist search result.
type Artist struct {
	ID      string
	Name    string
	Artwork string
}

// PlaylistSummary is a catalog (not user) playlist.
type PlaylistSummary struct {
	ID      string
	Name    string
	Artwork string
}

// Home is the landing feed.
type Home struct {
	Songs     []playlist.Track
	Albums    []Album
	Artists   []Artist
	Playlists []PlaylistSummary
}

type rawLink struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
	Link    string `json:"link"`
}

func (l rawLink) href() string {
	if l.URL != "" {
		return l.URL
	}
	return l.Link
}

type rawName struct {
	Name string `json:"name"`
}

type rawSong struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	PrimaryArtists string          `json:"primaryArtists"`
	Artists        json.RawMessage `json:"artists"`
	Album          json.RawMessage `json:"album"`
	Image          json.RawMessage `json:"image"`
	Duration       json.RawMessage `json:"duration"`
	DownloadURL    []rawLink       `json:"downloadUrl"`
}

type rawAlbum struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	Year           json.RawMessage `json:"year"`
	PrimaryArtists string          `json:"primaryArtists"`
	Artists        json.RawMessage `json:"artists"`
	Image          json.RawMessage `json:"image"`
	SongCount      json.RawMessage `json:"songCount"`
}

type rawArtist struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Title string          `json:"title"`
	Image json.RawMessage `json:"image"`
}

type rawPlaylist struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Title string          `json:"title"`
	Image json.RawMessage `json:"image"`
}

func (r rawSong) track() playlist.Track {
	t := playlist.Track{
		ID:       r.ID,
		Title:    cleanText(firstNonEmpty(r.Name, r.Title)),
		Artists:  artistNames(r.PrimaryArtists, r.Artists),
		Album:    albumName(r.Album),
		Artwork:  ResolveImage(r.Image),
		Duration: parseSeconds(r.Duration),
	}
	for _, l := range r.DownloadURL {
		if u := l.href(); u != "" {
			t.Sources = append(t.Sources, playlist.Source{Quality: l.Quality, URL: u})
		}
	}
	return t
}

func tracks(raw []rawSong) []playlist.Track {
	out := make([]playlist.Track, 0, len(raw))
	for _, r := range raw {
		if r.ID == "" {
			continue
		}
		out = append(out, r.track())
	}
	return out
}

func (r rawAlbum) album() Album {
	return Album{
		ID:        r.ID,
		Name:      cleanText(firstNonEmpty(r.Name, r.Title)),
		Artists:   artistNames(r.PrimaryArtists, r.Artists),
		Year:      scalarString(r.Year),
		Artwork:   ResolveImage(r.Image),
		SongCount: int(parseNumber(r.SongCount)),
	}
}

func (r rawArtist) artist() Artist {
	return Artist{
		ID:      r.ID,
		Name:    cleanText(firstNonEmpty(r.Name, r.Title)),
		Artwork: ResolveImage(r.Image),
	}
}

func (r rawPlaylist) summary() PlaylistSummary {
	return PlaylistSummary{
		ID:      r.ID,
		Name:    cleanText(firstNonEmpty(r.Name, r.Title)),
		Artwork: ResolveImage(r.Image),
	}
}

// ResolveImage picks an artwork URL from the catalog's image field, which
// may be a string, a list of renditions or a single object.
func ResolveImage(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return PlaceholderArtwork
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return PlaceholderArtwork
		}
		return s
	}

	var list []rawLink
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return PlaceholderArtwork
		}
		pick := list[min(len(list), 3)-1]
		for _, l := range list {
			if strings.Contains(l.Quality, preferredImageQuality) {
				pick = l
				break
			}
		}
		if u := pick.href(); u != "" {
			return u
		}
		return PlaceholderArtwork
	}

	var one rawLink
	if err := json.Unmarshal(raw, &one); err == nil && one.href() != "" {
		return one.href()
	}
	return PlaceholderArtwork
}

// artistNames prefers the flat primaryArtists string, then the structured
// artists.primary list.
func artistNames(primary string, artists json.RawMessage) string {
	if primary != "" {
		return cleanText(primary)
	}
	if len(artists) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(artists, &s); err == nil {
		return cleanText(s)
	}

	var structured struct {
		Primary []rawName `json:"primary"`
	}
	if err := json.Unmarshal(artists, &structured); err != nil {
		return ""
	}
	names := make([]string, 0, len(structured.Primary))
	for _, a := range structured.Primary {
		if a.Name != "" {
			names = append(names, cleanText(a.Name))
		}
	}
	return strings.Join(names, ", ")
}

func albumName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return cleanText(s)
	}
	var n rawName
	if err := json.Unmarshal(raw, &n); err == nil {
		return cleanText(n.Name)
	}
	return ""
}

// parseSeconds reads a duration given as a number or numeric string.
func parseSeconds(raw json.RawMessage) time.Duration {
	secs := parseNumber(raw)
	if secs <= 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}

func parseNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return 0
}

func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// cleanText decodes HTML entities the API leaves in names.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
