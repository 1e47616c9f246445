// internal/playback/state_test.go
package playback

import (
	"testing"

	"github.com/Sumitb09/music-player/internal/state"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "Idle"},
		{PhaseResolving, "Resolving"},
		{PhasePlaying, "Playing"},
		{PhasePaused, "Paused"},
		{Phase(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestPhase_IsActive(t *testing.T) {
	tests := []struct {
		phase Phase
		want  bool
	}{
		{PhaseIdle, false},
		{PhaseResolving, false},
		{PhasePlaying, true},
		{PhasePaused, true},
	}
	for _, tt := range tests {
		if got := tt.phase.IsActive(); got != tt.want {
			t.Errorf("%v.IsActive() = %v, want %v", tt.phase, got, tt.want)
		}
	}
}

func TestRepeatMode_String(t *testing.T) {
	tests := []struct {
		mode RepeatMode
		want string
	}{
		{RepeatOff, "Off"},
		{RepeatAll, "All"},
		{RepeatOne, "One"},
		{RepeatMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestRepeatMode_NextCycles(t *testing.T) {
	m := RepeatOff
	want := []RepeatMode{RepeatAll, RepeatOne, RepeatOff, RepeatAll}
	for i, w := range want {
		m = m.Next()
		if m != w {
			t.Fatalf("step %d: Next() = %v, want %v", i, m, w)
		}
	}
}

func TestRepeatMode_Persisted(t *testing.T) {
	tests := []struct {
		mode RepeatMode
		wire string
	}{
		{RepeatOff, state.RepeatOff},
		{RepeatAll, state.RepeatAll},
		{RepeatOne, state.RepeatOne},
	}
	for _, tt := range tests {
		if got := tt.mode.persisted(); got != tt.wire {
			t.Errorf("%v.persisted() = %q, want %q", tt.mode, got, tt.wire)
		}
		if got := parseRepeatMode(tt.wire); got != tt.mode {
			t.Errorf("parseRepeatMode(%q) = %v, want %v", tt.wire, got, tt.mode)
		}
	}
	if got := parseRepeatMode("shuffle-all"); got != RepeatOff {
		t.Errorf("unknown mode parsed as %v, want Off", got)
	}
}

func TestTheme_Persisted(t *testing.T) {
	if got := parseTheme(state.ThemeDark); got != ThemeDark {
		t.Errorf("parseTheme(dark) = %v", got)
	}
	if got := parseTheme("sepia"); got != ThemeLight {
		t.Errorf("parseTheme(sepia) = %v, want Light", got)
	}
	if got := ThemeDark.persisted(); got != state.ThemeDark {
		t.Errorf("ThemeDark.persisted() = %q", got)
	}
}
