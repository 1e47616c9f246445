// Package playerbar renders the single-line transport bar at the bottom of
// the screen.
package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sumitb09/music-player/internal/playback"
	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/ui/render"
	"github.com/Sumitb09/music-player/internal/ui/styles"
)

const (
	playSymbol    = "▶"
	pauseSymbol   = "⏸"
	loadingSymbol = "…"
	minBarWidth   = 5
)

// State holds everything needed to render the player bar.
type State struct {
	Phase      playback.Phase
	Track      *playlist.Track
	Transport  playback.Transport
	Mode       playback.Mode
	Favorite   bool
	Downloaded bool
}

// Height returns the total height of the player bar.
func Height() int {
	return 3 // top border + content + bottom border
}

// Render returns the player bar string for the given width.
// Returns an empty frame when nothing is loaded.
func Render(s State, width int, th *styles.Theme) string {
	st := th.S()
	inner := max(width-6, 0)

	if s.Track == nil {
		msg := "Nothing playing"
		if s.Phase == playback.PhaseResolving {
			msg = "Loading…"
		}
		return st.Bar.Padding(0, 2).Width(max(width-2, 0)).Render(st.Muted.Render(render.Truncate(msg, inner)))
	}

	status := pauseSymbol
	switch s.Phase {
	case playback.PhasePlaying:
		status = playSymbol
	case playback.PhaseResolving:
		status = loadingSymbol
	case playback.PhaseIdle, playback.PhasePaused:
	}

	title := s.Track.Title
	if title == "" {
		title = "Unknown Track"
	}
	title = marks(s) + title

	duration := s.Transport.Duration
	if duration <= 0 {
		duration = s.Track.Duration
	}
	timeStr := render.Duration(s.Transport.Position) + " / " + render.Duration(duration)
	modeStr := modeLabel(s.Mode)

	const sep = "   "
	fixed := lipgloss.Width(status) + 2 + lipgloss.Width(timeStr) + lipgloss.Width(modeStr) + 3*len(sep)

	// Title and artists get what is left after a minimal progress bar.
	room := max(inner-fixed-minBarWidth, 10)
	info := title
	if s.Track.Artists != "" {
		info += " · " + s.Track.Artists
	}
	info = render.Truncate(info, room)

	barWidth := max(inner-fixed-lipgloss.Width(info), minBarWidth)
	var ratio float64
	if duration > 0 {
		ratio = float64(s.Transport.Position) / float64(duration)
	}
	filled := min(max(int(float64(barWidth)*ratio), 0), barWidth)

	var b strings.Builder
	b.WriteString(st.Title.Render(info))
	b.WriteString(sep)
	b.WriteString(status)
	b.WriteString("  ")
	b.WriteString(th.Accent(strings.Repeat("━", filled)))
	b.WriteString(st.Subtle.Render(strings.Repeat("─", barWidth-filled)))
	b.WriteString(sep)
	b.WriteString(st.Muted.Render(timeStr))
	b.WriteString(sep)
	b.WriteString(st.Muted.Render(modeStr))

	return st.Bar.Padding(0, 2).Width(max(width-2, 0)).Render(b.String())
}

func marks(s State) string {
	var m string
	if s.Favorite {
		m += "♥ "
	}
	if s.Downloaded {
		m += "↓ "
	}
	return m
}

func modeLabel(m playback.Mode) string {
	shuffle := "shuffle off"
	if m.Shuffle {
		shuffle = "shuffle on"
	}
	return shuffle + " · repeat " + strings.ToLower(m.Repeat.String())
}
