// Package catalog provides a client for the saavn music catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Sumitb09/music-player/internal/playlist"
)

// ErrNotFound is returned when the catalog has no entry for an id.
var ErrNotFound = errors.New("not found in catalog")

const (
	// DefaultBaseURL is the public saavn API mirror.
	DefaultBaseURL = "https://saavn.sumit.co/api"

	defaultPage    = 1
	defaultLimit   = 20
	playlistLimit  = 50
	defaultTimeout = 15 * time.Second
	userAgent      = "music-player/1.0"

	// homeQuery seeds the home feed.
	homeQuery = "bollywood"
)

// Client is a saavn API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New creates a catalog client. An empty baseURL uses DefaultBaseURL;
// a non-positive timeout uses the default.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger,
	}
}

// envelope is the API response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type results[T any] struct {
	Results []T `json:"results"`
}

// get fetches path and decodes the envelope's data into out.
// A missing or null data field yields ErrNotFound.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return ErrNotFound
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func pageParams(query string, page, limit int) url.Values {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	return params
}

// TrackDetail fetches the full record for a track id.
func (c *Client) TrackDetail(ctx context.Context, id string) (*playlist.Track, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	var songs []rawSong
	if err := c.get(ctx, "/songs/"+url.PathEscape(id), nil, &songs); err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, ErrNotFound
	}
	t := songs[0].track()
	return &t, nil
}

// Search returns songs matching query. Failures are logged and yield an
// empty result.
func (c *Client) Search(ctx context.Context, query string, page, limit int) []playlist.Track {
	return c.searchSongs(ctx, "search songs", query, page, limit)
}

// ArtistTracks returns songs by an artist, looked up by name.
func (c *Client) ArtistTracks(ctx context.Context, artist string, page, limit int) []playlist.Track {
	return c.searchSongs(ctx, "artist tracks", artist, page, limit)
}

func (c *Client) searchSongs(ctx context.Context, op, query string, page, limit int) []playlist.Track {
	var res results[rawSong]
	if err := c.get(ctx, "/search/songs", pageParams(query, page, limit), &res); err != nil {
		c.logFailure(op, query, err)
		return []playlist.Track{}
	}
	return tracks(res.Results)
}

// AlbumTracks returns the songs of an album. The catalog has no album
// listing, so it searches the album name and keeps the songs that name it;
// when none do, the raw search results are returned.
func (c *Client) AlbumTracks(ctx context.Context, album Album, limit int) []playlist.Track {
	query := strings.TrimSpace(album.Name + " " + album.Artists)
	found := c.searchSongs(ctx, "album tracks", query, defaultPage, limit)
	matched := make([]playlist.Track, 0, len(found))
	for _, t := range found {
		if strings.EqualFold(t.Album, album.Name) {
			matched = append(matched, t)
		}
	}
	if len(matched) == 0 {
		return found
	}
	return matched
}

// SearchAlbums returns albums matching query, never failing.
func (c *Client) SearchAlbums(ctx context.Context, query string, page, limit int) []Album {
	var res results[rawAlbum]
	if err := c.get(ctx, "/search/albums", pageParams(query, page, limit), &res); err != nil {
		c.logFailure("search albums", query, err)
		return []Album{}
	}
	albums := make([]Album, 0, len(res.Results))
	for _, r := range res.Results {
		albums = append(albums, r.album())
	}
	return albums
}

// SearchArtists returns artists matching query, never failing.
func (c *Client) SearchArtists(ctx context.Context, query string, page, limit int) []Artist {
	var res results[rawArtist]
	if err := c.get(ctx, "/search/artists", pageParams(query, page, limit), &res); err != nil {
		c.logFailure("search artists", query, err)
		return []Artist{}
	}
	artists := make([]Artist, 0, len(res.Results))
	for _, r := range res.Results {
		artists = append(artists, r.artist())
	}
	return artists
}

// Home returns the landing feed. Failures yield an empty feed.
func (c *Client) Home(ctx context.Context) Home {
	var raw struct {
		Songs     results[rawSong]     `json:"songs"`
		Albums    results[rawAlbum]    `json:"albums"`
		Artists   results[rawArtist]   `json:"artists"`
		Playlists results[rawPlaylist] `json:"playlists"`
	}
	params := url.Values{}
	params.Set("query", homeQuery)
	if err := c.get(ctx, "/search", params, &raw); err != nil {
		c.logFailure("home", homeQuery, err)
		return Home{Songs: []playlist.Track{}, Albums: []Album{}, Artists: []Artist{}, Playlists: []PlaylistSummary{}}
	}

	h := Home{
		Songs:     tracks(raw.Songs.Results),
		Albums:    make([]Album, 0, len(raw.Albums.Results)),
		Artists:   make([]Artist, 0, len(raw.Artists.Results)),
		Playlists: make([]PlaylistSummary, 0, len(raw.Playlists.Results)),
	}
	for _, r := range raw.Albums.Results {
		h.Albums = append(h.Albums, r.album())
	}
	for _, r := range raw.Artists.Results {
		h.Artists = append(h.Artists, r.artist())
	}
	for _, r := range raw.Playlists.Results {
		h.Playlists = append(h.Playlists, r.summary())
	}
	return h
}

// PlaylistTracks fetches a catalog playlist and fills its tracks by
// searching for songs under the playlist's name.
func (c *Client) PlaylistTracks(ctx context.Context, id string) (*PlaylistSummary, []playlist.Track, error) {
	params := url.Values{}
	params.Set("id", id)

	var raw rawPlaylist
	if err := c.get(ctx, "/playlists", params, &raw); err != nil {
		return nil, nil, err
	}
	summary := raw.summary()
	return &summary, c.searchSongs(ctx, "playlist tracks", summary.Name, defaultPage, playlistLimit), nil
}

func (c *Client) logFailure(op, query string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	c.logger.Warn("catalog request failed", "op", op, "query", query, "error", err)
}
