// internal/playback/state.go
package playback

import (
	"time"

	"github.com/Sumitb09/music-player/internal/state"
)

// Phase is the orchestrator's transport phase.
type Phase int

const (
	PhaseIdle      Phase = iota // no current track
	PhaseResolving              // fetching track detail for a play request
	PhasePlaying
	PhasePaused
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseResolving:
		return "Resolving"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (playing or paused).
func (p Phase) IsActive() bool {
	return p == PhasePlaying || p == PhasePaused
}

// RepeatMode defines the repeat behavior.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Unknown"
	}
}

// Next returns the mode after m in the cycle off, all, one.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatOff
	}
}

func (m RepeatMode) persisted() string {
	switch m {
	case RepeatAll:
		return state.RepeatAll
	case RepeatOne:
		return state.RepeatOne
	default:
		return state.RepeatOff
	}
}

func parseRepeatMode(s string) RepeatMode {
	switch s {
	case state.RepeatAll:
		return RepeatAll
	case state.RepeatOne:
		return RepeatOne
	default:
		return RepeatOff
	}
}

// Theme is the persisted color scheme.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// String returns the theme name.
func (t Theme) String() string {
	if t == ThemeDark {
		return "Dark"
	}
	return "Light"
}

func (t Theme) persisted() string {
	if t == ThemeDark {
		return state.ThemeDark
	}
	return state.ThemeLight
}

func parseTheme(s string) Theme {
	if s == state.ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Mode is the playback mode pair.
type Mode struct {
	Shuffle bool
	Repeat  RepeatMode
}

// Transport mirrors the engine's last reported status.
type Transport struct {
	Playing  bool
	Position time.Duration
	Duration time.Duration
}
