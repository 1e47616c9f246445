package app

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/Sumitb09/music-player/internal/catalog"
	"github.com/Sumitb09/music-player/internal/downloads"
	"github.com/Sumitb09/music-player/internal/playback"
	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/playlists"
	"github.com/Sumitb09/music-player/internal/tags"
	"github.com/Sumitb09/music-player/internal/ui/render"
	"github.com/Sumitb09/music-player/internal/ui/tracklist"
)

// Catalog is the part of the catalog client the UI browses.
type Catalog interface {
	Search(ctx context.Context, query string, page, limit int) []playlist.Track
	SearchArtists(ctx context.Context, query string, page, limit int) []catalog.Artist
	SearchAlbums(ctx context.Context, query string, page, limit int) []catalog.Album
	ArtistTracks(ctx context.Context, artist string, page, limit int) []playlist.Track
	AlbumTracks(ctx context.Context, album catalog.Album, limit int) []playlist.Track
	PlaylistTracks(ctx context.Context, id string) (*catalog.PlaylistSummary, []playlist.Track, error)
	Home(ctx context.Context) catalog.Home
}

var (
	errNoTrack    = errors.New("no track at that position")
	errNoPlaylist = errors.New("playlist not found")
)

// Tab identifies a top-level view.
type Tab int

const (
	TabSearch Tab = iota
	TabQueue
	TabFavorites
	TabRecent
	TabDownloads
	TabPlaylists
	TabBrowse
	tabCount
)

var tabNames = [tabCount]string{"Search", "Queue", "Favorites", "Recent", "Downloads", "Playlists", "Browse"}

// String returns the tab title.
func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "Unknown"
	}
	return tabNames[t]
}

// inputMode is what the text input is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputCreatePlaylist
	inputRenamePlaylist
	inputAddToPlaylist
)

// Deps are the collaborators the UI drives.
type Deps struct {
	Service *playback.Service
	Catalog Catalog
	Logger  *slog.Logger
	// Context bounds asynchronous operations. Defaults to context.Background.
	Context context.Context
}

// Model is the root bubbletea model.
type Model struct {
	svc     *playback.Service
	sub     *playback.Subscription
	catalog Catalog
	logger  *slog.Logger
	ctx     context.Context

	keys  keyMap
	help  help.Model
	input textinput.Model
	mode  inputMode

	tab    Tab
	lists  [tabCount]tracklist.Model
	tracks [tabCount][]playlist.Track

	results     []playlist.Track
	resultsFrom string // query the results are for; empty for the home feed
	playlistIDs []string
	openList    string // playlist shown in the Playlists tab, if any
	renameID    string
	adding      playlist.Track // track waiting for a playlist choice

	browse       []browseEntry
	browseFrom   string // query the entries are for; empty for the home feed
	browseOpen   string // title of the opened entry, if any
	browseTracks []playlist.Track
	fileTags     map[string]playlist.Track // metadata read from downloaded files

	status    string
	statusErr bool

	Width  int
	Height int
}

// New creates the root model and subscribes to the service.
func New(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 120

	m := Model{
		svc:      deps.Service,
		catalog:  deps.Catalog,
		logger:   logger,
		ctx:      ctx,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    ti,
		fileTags: make(map[string]playlist.Track),
	}
	if m.svc != nil {
		m.sub = m.svc.Subscribe()
	}
	m.refresh()
	return m
}

// Init loads the home feed and starts watching service events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.homeCmd(), m.WatchServiceEvents())
}

// Tab returns the active tab.
func (m Model) Tab() Tab {
	return m.tab
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// selected returns the track under the cursor on track tabs.
func (m Model) selected() (int, *playlist.Track) {
	i := m.lists[m.tab].Pos()
	if i < 0 || i >= len(m.tracks[m.tab]) {
		return -1, nil
	}
	t := m.tracks[m.tab][i]
	return i, &t
}

// selectedPlaylist returns the playlist under the cursor when no playlist
// is open.
func (m Model) selectedPlaylist() (playlists.Playlist, bool) {
	if m.openList != "" {
		return m.svc.Playlist(m.openList)
	}
	i := m.lists[TabPlaylists].Pos()
	if i < 0 || i >= len(m.playlistIDs) {
		return playlists.Playlist{}, false
	}
	return m.svc.Playlist(m.playlistIDs[i])
}

// refresh rebuilds every tab from the service.
func (m *Model) refresh() {
	if m.svc == nil {
		return
	}
	current := m.svc.CurrentTrack()
	currentID := ""
	if current != nil {
		currentID = current.ID
	}

	m.setTracks(TabSearch, m.results, currentID)
	m.setQueueTracks()
	m.setTracks(TabFavorites, m.svc.Favorites(), currentID)
	m.setTracks(TabRecent, m.svc.RecentlyPlayed(), currentID)
	m.setDownloads(currentID)
	m.setPlaylists(currentID)
	m.setBrowse(currentID)
}

func (m *Model) setTracks(tab Tab, tracks []playlist.Track, currentID string) {
	m.tracks[tab] = tracks
	rows := make([]tracklist.Row, len(tracks))
	for i, t := range tracks {
		rows[i] = m.trackRow(t, t.ID == currentID)
	}
	m.lists[tab].SetRows(rows)
}

func (m *Model) setQueueTracks() {
	tracks := m.svc.Queue()
	idx := m.svc.CurrentIndex()
	active := m.svc.Phase() != playback.PhaseIdle
	m.tracks[TabQueue] = tracks
	rows := make([]tracklist.Row, len(tracks))
	for i, t := range tracks {
		rows[i] = m.trackRow(t, active && i == idx)
	}
	m.lists[TabQueue].SetRows(rows)
}

func (m *Model) setDownloads(currentID string) {
	entries := m.svc.Downloads()
	known := m.knownTracks()

	tracks := make([]playlist.Track, 0, len(entries))
	for id, locator := range entries {
		t, ok := known[id]
		if !ok {
			t = m.downloadedTrack(id, locator)
		}
		tracks = append(tracks, t)
	}
	slices.SortFunc(tracks, func(a, b playlist.Track) int {
		if c := strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	m.tracks[TabDownloads] = tracks
	rows := make([]tracklist.Row, len(tracks))
	for i, t := range tracks {
		row := m.trackRow(t, t.ID == currentID)
		row.Right = render.Size(downloads.FileSize(entries[t.ID]))
		rows[i] = row
	}
	m.lists[TabDownloads].SetRows(rows)
}

// downloadedTrack describes a download no loaded list knows about, from
// the tags written into the file.
func (m *Model) downloadedTrack(id, locator string) playlist.Track {
	if t, ok := m.fileTags[id]; ok {
		return t
	}
	path := downloads.LocalPath(locator)
	t := playlist.Track{ID: id, Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}
	if tag, err := tags.Read(path); err == nil {
		t.Title = tag.Title
		t.Artists = tag.Artist
		t.Album = tag.Album
	} else {
		m.logger.Debug("read download tags", "id", id, "error", err)
	}
	m.fileTags[id] = t
	return t
}

func (m *Model) knownTracks() map[string]playlist.Track {
	known := make(map[string]playlist.Track)
	add := func(tracks []playlist.Track) {
		for _, t := range tracks {
			if _, ok := known[t.ID]; !ok {
				known[t.ID] = t
			}
		}
	}
	add(m.svc.Queue())
	add(m.svc.Favorites())
	add(m.svc.RecentlyPlayed())
	add(m.results)
	add(m.browseTracks)
	for _, pl := range m.svc.Playlists() {
		add(pl.Tracks)
	}
	return known
}

func (m *Model) setPlaylists(currentID string) {
	if m.openList != "" {
		pl, ok := m.svc.Playlist(m.openList)
		if ok {
			m.setTracks(TabPlaylists, pl.Tracks, currentID)
			return
		}
		m.openList = ""
	}

	lists := m.svc.Playlists()
	m.playlistIDs = make([]string, len(lists))
	m.tracks[TabPlaylists] = nil
	rows := make([]tracklist.Row, len(lists))
	for i, pl := range lists {
		m.playlistIDs[i] = pl.ID
		rows[i] = tracklist.Row{Title: pl.Name, Subtitle: trackCount(len(pl.Tracks))}
	}
	m.lists[TabPlaylists].SetRows(rows)
}

func (m *Model) trackRow(t playlist.Track, active bool) tracklist.Row {
	var marks strings.Builder
	if m.svc.IsFavorite(t.ID) {
		marks.WriteString("♥ ")
	}
	if m.svc.IsDownloaded(t.ID) {
		marks.WriteString("↓ ")
	}
	title := t.Title
	if title == "" {
		title = t.ID
	}
	row := tracklist.Row{
		Title:    title,
		Subtitle: t.Artists,
		Marks:    marks.String(),
		Active:   active,
	}
	if t.Duration > 0 {
		row.Right = render.Duration(t.Duration)
	}
	return row
}

func trackCount(n int) string {
	if n == 1 {
		return "1 track"
	}
	return humanize.Comma(int64(n)) + " tracks"
}
