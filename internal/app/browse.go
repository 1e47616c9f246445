package app

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sumitb09/music-player/internal/catalog"
	"github.com/Sumitb09/music-player/internal/errmsg"
	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/ui/tracklist"
)

// browseLimit is the number of artists and albums fetched per search.
const browseLimit = 10

type browseKind int

const (
	browseArtist browseKind = iota
	browseAlbum
	browsePlaylist
)

func (k browseKind) String() string {
	switch k {
	case browseArtist:
		return "Artist"
	case browseAlbum:
		return "Album"
	case browsePlaylist:
		return "Playlist"
	}
	return "Unknown"
}

// browseEntry is one artist, album or catalog playlist in the Browse tab.
type browseEntry struct {
	kind  browseKind
	id    string
	name  string
	album catalog.Album
}

func homeEntries(h catalog.Home) []browseEntry {
	out := make([]browseEntry, 0, len(h.Artists)+len(h.Albums)+len(h.Playlists))
	out = appendArtists(out, h.Artists)
	out = appendAlbums(out, h.Albums)
	for _, p := range h.Playlists {
		out = append(out, browseEntry{kind: browsePlaylist, id: p.ID, name: p.Name})
	}
	return out
}

func appendArtists(out []browseEntry, artists []catalog.Artist) []browseEntry {
	for _, a := range artists {
		out = append(out, browseEntry{kind: browseArtist, id: a.ID, name: a.Name})
	}
	return out
}

func appendAlbums(out []browseEntry, albums []catalog.Album) []browseEntry {
	for _, a := range albums {
		out = append(out, browseEntry{kind: browseAlbum, id: a.ID, name: a.Name, album: a})
	}
	return out
}

func (e browseEntry) row() tracklist.Row {
	row := tracklist.Row{Title: e.name, Subtitle: e.kind.String()}
	if e.kind == browseAlbum {
		if e.album.Artists != "" {
			row.Subtitle += " · " + e.album.Artists
		}
		if e.album.Year != "" {
			row.Subtitle += " · " + e.album.Year
		}
		if e.album.SongCount > 0 {
			row.Right = strconv.Itoa(e.album.SongCount) + " songs"
		}
	}
	return row
}

func (e browseEntry) op() errmsg.Op {
	switch e.kind {
	case browseAlbum:
		return errmsg.OpLoadAlbum
	case browsePlaylist:
		return errmsg.OpLoadPlaylist
	case browseArtist:
	}
	return errmsg.OpLoadArtist
}

// browseCmd looks up artists and albums for a search query.
func (m Model) browseCmd(query string) tea.Cmd {
	if m.catalog == nil {
		return nil
	}
	ctx, cat := m.ctx, m.catalog
	return func() tea.Msg {
		return BrowseResultsMsg{
			Query:   query,
			Artists: cat.SearchArtists(ctx, query, 1, browseLimit),
			Albums:  cat.SearchAlbums(ctx, query, 1, browseLimit),
		}
	}
}

// openCmd fetches the tracks behind a browse entry.
func (m Model) openCmd(e browseEntry) tea.Cmd {
	if m.catalog == nil {
		return nil
	}
	ctx, cat := m.ctx, m.catalog
	return func() tea.Msg {
		msg := BrowseTracksMsg{Title: e.name, Op: e.op()}
		msg.Tracks, msg.Err = fetchEntry(ctx, cat, e)
		return msg
	}
}

func fetchEntry(ctx context.Context, cat Catalog, e browseEntry) ([]playlist.Track, error) {
	switch e.kind {
	case browseAlbum:
		return cat.AlbumTracks(ctx, e.album, searchLimit), nil
	case browsePlaylist:
		_, tracks, err := cat.PlaylistTracks(ctx, e.id)
		return tracks, err
	case browseArtist:
	}
	return cat.ArtistTracks(ctx, e.name, 1, searchLimit), nil
}

// setBrowse fills the Browse tab: the opened entry's tracks, or the entries.
func (m *Model) setBrowse(currentID string) {
	if m.browseOpen != "" {
		m.setTracks(TabBrowse, m.browseTracks, currentID)
		return
	}
	m.tracks[TabBrowse] = nil
	rows := make([]tracklist.Row, len(m.browse))
	for i, e := range m.browse {
		rows[i] = e.row()
	}
	m.lists[TabBrowse].SetRows(rows)
}

func (m Model) selectedEntry() (browseEntry, bool) {
	i := m.lists[TabBrowse].Pos()
	if m.browseOpen != "" || i < 0 || i >= len(m.browse) {
		return browseEntry{}, false
	}
	return m.browse[i], true
}

func (m *Model) closeBrowse() {
	m.browseOpen = ""
	m.browseTracks = nil
	m.refresh()
}
