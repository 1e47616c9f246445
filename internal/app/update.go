package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sumitb09/music-player/internal/errmsg"
	"github.com/Sumitb09/music-player/internal/playback"
	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/playlists"
)

// seekStep is the distance moved by one seek key press.
const seekStep = 10 * time.Second

// maxSuggestions bounds the search history shown under the input.
const maxSuggestions = 3

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-20, 10)
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)

	case ServiceClosedMsg:
		m.sub = nil
		return m, nil

	case ServiceMessage:
		m.handleServiceMessage(msg)
		return m, m.WatchServiceEvents()

	case HomeLoadedMsg:
		if m.resultsFrom == "" {
			m.results = msg.Home.Songs
		}
		if m.browseFrom == "" {
			m.browse = homeEntries(msg.Home)
		}
		m.refresh()
		return m, nil

	case BrowseResultsMsg:
		m.browse = appendAlbums(appendArtists(nil, msg.Artists), msg.Albums)
		m.browseFrom = msg.Query
		m.browseOpen = ""
		m.browseTracks = nil
		m.lists[TabBrowse].Jump(0)
		m.refresh()
		return m, nil

	case BrowseTracksMsg:
		if msg.Err != nil {
			if !quiet(msg.Err) {
				m.setError(errmsg.FormatWith(msg.Op, msg.Title, msg.Err))
			}
			return m, nil
		}
		m.browseOpen = msg.Title
		m.browseTracks = msg.Tracks
		m.lists[TabBrowse].Jump(0)
		m.setStatus("")
		m.refresh()
		return m, nil

	case SearchResultsMsg:
		m.results = msg.Tracks
		m.resultsFrom = msg.Query
		m.lists[TabSearch].Jump(0)
		m.refresh()
		if len(msg.Tracks) == 0 {
			m.setStatus("No results for '" + msg.Query + "'")
		} else {
			m.setStatus("")
		}
		return m, nil

	case OpResultMsg:
		m.handleOpResult(msg)
		return m, nil
	}

	if m.mode != inputNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleServiceMessage(msg ServiceMessage) {
	switch msg := msg.(type) {
	case ServiceErrorMsg:
		if !quiet(msg.Err) {
			m.setError(errmsg.FormatWith(errmsg.ForOperation(msg.Operation), msg.TrackID, msg.Err))
		}
	case ServiceTransportMsg, ServiceModeChangedMsg:
		// The view reads both straight from the service.
	default:
		m.refresh()
	}
}

func (m *Model) handleOpResult(msg OpResultMsg) {
	switch {
	case msg.Err != nil && !quiet(msg.Err):
		m.setError(errmsg.FormatWith(msg.Op, msg.Context, msg.Err))
	case msg.Err == nil && msg.Done != "":
		m.setStatus(msg.Done)
	}
	m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.Search):
		return m.startInput(inputSearch, "/ ", "")
	case key.Matches(msg, m.keys.Back):
		switch {
		case m.tab == TabPlaylists && m.openList != "":
			m.openList = ""
			m.refresh()
		case m.tab == TabBrowse && m.browseOpen != "":
			m.closeBrowse()
		}
	case key.Matches(msg, m.keys.Select):
		return m.handleSelect()
	case key.Matches(msg, m.keys.TogglePause):
		return m.handleTogglePause()
	case key.Matches(msg, m.keys.Next):
		return m, m.nextCmd()
	case key.Matches(msg, m.keys.Previous):
		return m, m.previousCmd()
	case key.Matches(msg, m.keys.SeekForward):
		m.seekBy(seekStep)
	case key.Matches(msg, m.keys.SeekBack):
		m.seekBy(-seekStep)
	case key.Matches(msg, m.keys.Shuffle):
		if m.svc.ToggleShuffle() {
			m.setStatus("Shuffle on")
		} else {
			m.setStatus("Shuffle off")
		}
	case key.Matches(msg, m.keys.Repeat):
		m.setStatus("Repeat " + strings.ToLower(m.svc.ToggleRepeat().String()))
	case key.Matches(msg, m.keys.Theme):
		m.setStatus("Theme: " + m.svc.ToggleTheme().String())
	case key.Matches(msg, m.keys.Favorite):
		m.handleFavorite()
	case key.Matches(msg, m.keys.Download):
		if _, t := m.selected(); t != nil {
			m.setStatus("Downloading " + t.Title + "…")
			return m, m.downloadCmd(t.ID, t.Title)
		}
	case key.Matches(msg, m.keys.AddTo):
		return m.handleAddToPlaylist()
	case key.Matches(msg, m.keys.Remove):
		m.handleRemove()
	case key.Matches(msg, m.keys.MoveDown):
		m.moveQueueTrack(1)
	case key.Matches(msg, m.keys.MoveUp):
		m.moveQueueTrack(-1)
	case key.Matches(msg, m.keys.NewPlaylist):
		return m.startInput(inputCreatePlaylist, "New playlist: ", "")
	case key.Matches(msg, m.keys.Rename):
		if m.tab == TabPlaylists {
			if pl, ok := m.selectedPlaylist(); ok {
				m.renameID = pl.ID
				return m.startInput(inputRenamePlaylist, "Rename: ", pl.Name)
			}
		}
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] < '1'+byte(tabCount) {
			m.tab = Tab(s[0] - '1')
			return m, nil
		}
		m.lists[m.tab].HandleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleSelect() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabQueue:
		if i := m.lists[TabQueue].Pos(); i >= 0 {
			return m, m.playAtCmd(i)
		}
		return m, nil
	case TabPlaylists:
		if m.openList == "" {
			if pl, ok := m.selectedPlaylist(); ok {
				m.openList = pl.ID
				m.lists[TabPlaylists].Jump(0)
				m.refresh()
			}
			return m, nil
		}
	case TabBrowse:
		if m.browseOpen == "" {
			if e, ok := m.selectedEntry(); ok {
				m.setStatus("Loading " + e.name + "…")
				return m, m.openCmd(e)
			}
			return m, nil
		}
	case TabSearch, TabFavorites, TabRecent, TabDownloads:
	}

	i, t := m.selected()
	if t == nil {
		return m, nil
	}
	m.svc.SetQueue(m.tracks[m.tab], i)
	m.refresh()
	return m, m.playAtCmd(i)
}

func (m Model) handleTogglePause() (tea.Model, tea.Cmd) {
	if m.svc.Phase() == playback.PhaseIdle {
		if len(m.svc.Queue()) == 0 {
			return m, nil
		}
		return m, m.playAtCmd(m.svc.CurrentIndex())
	}
	if err := m.svc.TogglePause(); err != nil && !quiet(err) {
		m.setError(errmsg.Format(errmsg.OpPlaybackPause, err))
	}
	return m, nil
}

func (m *Model) seekBy(delta time.Duration) {
	tr := m.svc.Transport()
	pos := max(tr.Position+delta, 0)
	if tr.Duration > 0 {
		pos = min(pos, tr.Duration)
	}
	if err := m.svc.Seek(pos); err != nil && !quiet(err) {
		m.setError(errmsg.Format(errmsg.OpPlaybackSeek, err))
	}
}

func (m *Model) handleFavorite() {
	_, t := m.selected()
	if t == nil {
		return
	}
	if m.svc.ToggleFavorite(*t) {
		m.setStatus("Added " + t.Title + " to favorites")
	} else {
		m.setStatus("Removed " + t.Title + " from favorites")
	}
	m.refresh()
}

// handleAddToPlaylist adds the selected track to the only playlist, or
// asks which one when there are several.
func (m Model) handleAddToPlaylist() (tea.Model, tea.Cmd) {
	_, t := m.selected()
	if t == nil {
		return m, nil
	}
	lists := m.svc.Playlists()
	switch len(lists) {
	case 0:
		m.setStatus("No playlists yet, press c to create one")
		return m, nil
	case 1:
		m.addToPlaylist(lists[0].ID, lists[0].Name, *t)
		return m, nil
	}
	m.adding = *t
	return m.startInput(inputAddToPlaylist, "Add to playlist: ", "")
}

func (m *Model) addToPlaylist(id, name string, t playlist.Track) {
	if m.svc.AddToPlaylist(id, t) {
		m.setStatus("Added " + t.Title + " to " + name)
	} else {
		m.setError(errmsg.FormatWith(errmsg.OpPlaylistAddTrack, name, errNoPlaylist))
	}
	m.refresh()
}

func (m *Model) handleRemove() {
	i, t := m.selected()
	switch m.tab {
	case TabQueue:
		if i >= 0 && !m.svc.RemoveFromQueue(i) {
			m.setError(errmsg.Format(errmsg.OpQueueRemove, errNoTrack))
		}
	case TabFavorites:
		if t != nil {
			m.svc.RemoveFavorite(t.ID)
		}
	case TabDownloads:
		if t != nil && m.svc.RemoveDownload(t.ID) {
			m.setStatus("Deleted download " + t.Title)
		}
	case TabPlaylists:
		if m.openList != "" {
			if t != nil {
				m.svc.RemoveFromPlaylist(m.openList, t.ID)
			}
		} else if pl, ok := m.selectedPlaylist(); ok && m.svc.DeletePlaylist(pl.ID) {
			m.setStatus("Deleted playlist " + pl.Name)
		}
	case TabSearch, TabRecent, TabBrowse:
	}
	m.refresh()
}

func (m *Model) moveQueueTrack(delta int) {
	if m.tab != TabQueue {
		return
	}
	from := m.lists[TabQueue].Pos()
	to := from + delta
	if from < 0 || to < 0 || to >= len(m.tracks[TabQueue]) {
		return
	}
	if m.svc.ReorderQueue(from, to) {
		m.refresh()
		m.lists[TabQueue].Jump(to)
	}
}

func (m Model) startInput(mode inputMode, prompt, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	m.resize()
	return m, cmd
}

func (m *Model) stopInput() {
	m.mode = inputNone
	m.input.Blur()
	m.input.SetValue("")
	m.renameID = ""
	m.adding = playlist.Track{}
	m.resize()
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopInput()
		return m, nil

	case tea.KeyTab:
		switch m.mode {
		case inputSearch:
			if s := m.suggestions(); len(s) > 0 {
				m.input.SetValue(s[0])
				m.input.CursorEnd()
			}
		case inputAddToPlaylist:
			if pl := m.playlistMatches(); len(pl) > 0 {
				m.input.SetValue(pl[0].Name)
				m.input.CursorEnd()
			}
		case inputNone, inputCreatePlaylist, inputRenamePlaylist:
		}
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		mode, renameID, adding := m.mode, m.renameID, m.adding
		matches := m.playlistMatches()
		m.stopInput()
		if mode == inputAddToPlaylist {
			if len(matches) == 0 {
				m.setError(errmsg.FormatWith(errmsg.OpPlaylistAddTrack, value, errNoPlaylist))
				return m, nil
			}
			m.addToPlaylist(matches[0].ID, matches[0].Name, adding)
			return m, nil
		}
		if value == "" {
			return m, nil
		}
		switch mode {
		case inputSearch:
			m.svc.AddSearch(value)
			m.tab = TabSearch
			m.setStatus("Searching '" + value + "'…")
			return m, tea.Batch(m.searchCmd(value), m.browseCmd(value))
		case inputCreatePlaylist:
			pl := m.svc.CreatePlaylist(value)
			m.setStatus("Created playlist " + pl.Name)
		case inputRenamePlaylist:
			if !m.svc.RenamePlaylist(renameID, value) {
				m.setError(errmsg.FormatWith(errmsg.OpPlaylistRename, value, errNoPlaylist))
			}
		case inputNone, inputAddToPlaylist:
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// suggestions returns the lines shown under the input: search history
// entries, or playlists matching the name typed so far.
func (m Model) suggestions() []string {
	var s []string
	switch m.mode {
	case inputSearch:
		s = m.svc.SuggestSearches(strings.TrimSpace(m.input.Value()))
	case inputAddToPlaylist:
		for _, pl := range m.playlistMatches() {
			s = append(s, pl.DisplayText())
		}
	case inputNone, inputCreatePlaylist, inputRenamePlaylist:
	}
	if len(s) > maxSuggestions {
		s = s[:maxSuggestions]
	}
	return s
}

// playlistMatches ranks playlists against the input, best match first.
func (m Model) playlistMatches() []playlists.SearchItem {
	if m.mode != inputAddToPlaylist {
		return nil
	}
	return m.svc.SearchPlaylists(strings.TrimSpace(m.input.Value()))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}
