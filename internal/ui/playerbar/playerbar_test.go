package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/Sumitb09/music-player/internal/playback"
	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/ui/styles"
)

func TestRender_Idle(t *testing.T) {
	out := Render(State{}, 80, styles.Dark())
	if !strings.Contains(out, "Nothing playing") {
		t.Errorf("idle bar = %q", out)
	}

	out = Render(State{Phase: playback.PhaseResolving}, 80, styles.Dark())
	if !strings.Contains(out, "Loading") {
		t.Errorf("resolving bar = %q", out)
	}
}

func TestRender_Playing(t *testing.T) {
	s := State{
		Phase: playback.PhasePlaying,
		Track: &playlist.Track{Title: "Kesariya", Artists: "Arijit Singh", Duration: 4 * time.Minute},
		Transport: playback.Transport{
			Playing:  true,
			Position: 83 * time.Second,
			Duration: 268 * time.Second,
		},
		Mode:     playback.Mode{Shuffle: true, Repeat: playback.RepeatAll},
		Favorite: true,
	}

	out := Render(s, 120, styles.Light())
	for _, want := range []string{"Kesariya", "Arijit Singh", "1:23 / 4:28", playSymbol, "shuffle on", "repeat all", "♥"} {
		if !strings.Contains(out, want) {
			t.Errorf("bar missing %q: %q", want, out)
		}
	}
}

func TestRender_FallsBackToTrackDuration(t *testing.T) {
	s := State{
		Phase: playback.PhasePaused,
		Track: &playlist.Track{Title: "Song", Duration: 3 * time.Minute},
	}
	out := Render(s, 100, styles.Dark())
	if !strings.Contains(out, "0:00 / 3:00") {
		t.Errorf("bar = %q", out)
	}
	if !strings.Contains(out, pauseSymbol) {
		t.Errorf("paused bar should show %q", pauseSymbol)
	}
}

func TestRender_NarrowDoesNotPanic(t *testing.T) {
	s := State{
		Phase: playback.PhasePlaying,
		Track: &playlist.Track{Title: strings.Repeat("long title ", 20)},
	}
	for _, w := range []int{0, 5, 20, 40} {
		_ = Render(s, w, styles.Dark())
	}
}
