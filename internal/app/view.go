package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Sumitb09/music-player/internal/playback"
	"github.com/Sumitb09/music-player/internal/ui/playerbar"
	"github.com/Sumitb09/music-player/internal/ui/render"
	"github.com/Sumitb09/music-player/internal/ui/styles"
)

// Fixed rows: tab header and status line.
const chromeHeight = 2

// theme returns the palette selected in the service.
func (m Model) theme() *styles.Theme {
	return styles.For(m.svc.Theme() == playback.ThemeDark)
}

// inputHeight is the number of rows the input area takes.
func (m Model) inputHeight() int {
	switch m.mode {
	case inputNone:
		return 0
	case inputSearch, inputAddToPlaylist:
		return 1 + maxSuggestions
	case inputCreatePlaylist, inputRenamePlaylist:
		return 1
	}
	return 0
}

func (m Model) helpHeight() int {
	if m.help.ShowAll {
		return len(m.keys.FullHelp()[0])
	}
	return 1
}

// resize gives the lists whatever the chrome leaves.
func (m *Model) resize() {
	h := m.Height - chromeHeight - playerbar.Height() - m.inputHeight() - m.helpHeight()
	for i := range m.lists {
		m.lists[i].SetHeight(max(h, 1))
	}
}

// View renders the whole screen.
func (m Model) View() string {
	if m.Width == 0 || m.svc == nil {
		return ""
	}
	th := m.theme()
	st := th.S()

	var b strings.Builder
	b.WriteString(m.renderTabs(th))
	b.WriteString("\n")
	b.WriteString(m.lists[m.tab].View(m.Width, th, m.emptyText()))
	b.WriteString("\n")

	if m.mode != inputNone {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.mode == inputSearch || m.mode == inputAddToPlaylist {
			sugg := m.suggestions()
			for i := range maxSuggestions {
				if i < len(sugg) {
					b.WriteString(st.Muted.Render("  " + render.Truncate(sugg[i], m.Width-2)))
				}
				b.WriteString("\n")
			}
		}
	}

	status := render.Truncate(m.status, m.Width)
	if m.statusErr {
		status = st.Error.Render(status)
	} else {
		status = st.Muted.Render(status)
	}
	b.WriteString(status)
	b.WriteString("\n")

	b.WriteString(playerbar.Render(m.playerState(), m.Width, th))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) playerState() playerbar.State {
	s := playerbar.State{
		Phase:     m.svc.Phase(),
		Track:     m.svc.CurrentTrack(),
		Transport: m.svc.Transport(),
		Mode:      m.svc.Mode(),
	}
	if s.Track != nil {
		s.Favorite = m.svc.IsFavorite(s.Track.ID)
		s.Downloaded = m.svc.IsDownloaded(s.Track.ID)
	}
	return s
}

func (m Model) renderTabs(th *styles.Theme) string {
	st := th.S()
	parts := make([]string, 0, tabCount)
	for t := range tabCount {
		label := t.String()
		if t == TabPlaylists && m.openList != "" {
			if pl, ok := m.svc.Playlist(m.openList); ok {
				label += " › " + render.Sanitize(pl.Name)
			}
		}
		if t == TabBrowse && m.browseOpen != "" {
			label += " › " + render.Sanitize(m.browseOpen)
		}
		if t == m.tab {
			parts = append(parts, st.TabActive.Render(label))
		} else {
			parts = append(parts, st.Tab.Render(label))
		}
	}
	return ansi.Truncate(strings.Join(parts, ""), m.Width, "…")
}

func (m Model) emptyText() string {
	switch m.tab {
	case TabSearch:
		if m.resultsFrom != "" {
			return "No results for '" + m.resultsFrom + "'"
		}
		return "Press / to search the catalog"
	case TabQueue:
		return "Queue is empty"
	case TabFavorites:
		return "No favorites yet, press f on a track"
	case TabRecent:
		return "Nothing played yet"
	case TabDownloads:
		return "No downloads, press d on a track"
	case TabPlaylists:
		if m.openList != "" {
			return "Playlist is empty, press a on a track to add it"
		}
		return "No playlists, press c to create one"
	case TabBrowse:
		if m.browseOpen != "" {
			return "No tracks found"
		}
		return "Nothing to browse, press / to search"
	}
	return ""
}
