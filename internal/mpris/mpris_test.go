//go:build linux

package mpris

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumitb09/music-player/internal/playback"
	"github.com/Sumitb09/music-player/internal/player"
	"github.com/Sumitb09/music-player/internal/playlist"
)

type mapResolver map[string]playlist.Track

func (m mapResolver) TrackDetail(_ context.Context, id string) (*playlist.Track, error) {
	t, ok := m[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &t, nil
}

func newTestAdapter(t *testing.T) (*playerAdapter, *playback.Service, *player.Mock) {
	t.Helper()
	tracks := []playlist.Track{
		{ID: "a", Title: "First", Artists: "Arijit Singh, Shreya Ghoshal", Album: "Duets",
			Artwork: "https://img/a.jpg", Duration: 3 * time.Minute,
			Sources: []playlist.Source{{Quality: "320kbps", URL: "https://cdn/a.mp4"}}},
		{ID: "b", Title: "Second", Artists: "KK",
			Sources: []playlist.Source{{Quality: "320kbps", URL: "https://cdn/b.mp4"}}},
	}
	res := mapResolver{}
	for _, tr := range tracks {
		res[tr.ID] = tr
	}
	engine := player.NewMock()
	svc := playback.New(playback.Deps{Engine: engine, Resolver: res})
	t.Cleanup(func() { svc.Close() })
	svc.SetQueue(tracks, 0)
	return &playerAdapter{ctx: context.Background(), service: svc, logger: discard()}, svc, engine
}

func TestPlayerAdapter_PlayFromIdle(t *testing.T) {
	p, svc, engine := newTestAdapter(t)

	status, _ := p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusStopped, status)
	canPause, _ := p.CanPause()
	assert.False(t, canPause)

	require.NoError(t, p.PlayPause())
	assert.Equal(t, []string{"https://cdn/a.mp4"}, engine.LoadCalls())
	assert.Equal(t, playback.PhasePlaying, svc.Phase())

	status, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPlaying, status)
}

func TestPlayerAdapter_Metadata(t *testing.T) {
	p, _, _ := newTestAdapter(t)

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Empty(t, meta.Title)

	require.NoError(t, p.Play())
	meta, err = p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "First", meta.Title)
	assert.Equal(t, []string{"Arijit Singh", "Shreya Ghoshal"}, meta.Artist)
	assert.Equal(t, "Duets", meta.Album)
	assert.Equal(t, "https://img/a.jpg", meta.ArtUrl)
	assert.Equal(t, types.Microseconds((3 * time.Minute).Microseconds()), meta.Length)
	assert.Equal(t, formatTrackID("a"), string(meta.TrackId))
}

func TestPlayerAdapter_NavigationErrorsAreQuiet(t *testing.T) {
	p, svc, _ := newTestAdapter(t)

	assert.NoError(t, p.Previous(), "previous at start of queue")
	require.NoError(t, p.Play())
	require.NoError(t, p.Next())
	assert.Equal(t, 1, svc.CurrentIndex())

	canNext, _ := p.CanGoNext()
	assert.False(t, canNext)
	assert.NoError(t, p.Next(), "next at end of queue")

	canPrev, _ := p.CanGoPrevious()
	assert.True(t, canPrev)
}

func TestPlayerAdapter_Seek(t *testing.T) {
	p, _, engine := newTestAdapter(t)
	require.NoError(t, p.Play())

	require.NoError(t, p.SetPosition("", types.Microseconds(90*time.Second/time.Microsecond)))
	// Relative seek from the last reported position (0) clamps at zero.
	require.NoError(t, p.Seek(types.Microseconds(-5*time.Second/time.Microsecond)))

	assert.Equal(t, []time.Duration{90 * time.Second, 0}, engine.SeekCalls())
}

func TestPlayerAdapter_LoopAndShuffle(t *testing.T) {
	p, svc, _ := newTestAdapter(t)

	tests := []struct {
		status types.LoopStatus
		mode   playback.RepeatMode
	}{
		{types.LoopStatusTrack, playback.RepeatOne},
		{types.LoopStatusPlaylist, playback.RepeatAll},
		{types.LoopStatusNone, playback.RepeatOff},
	}
	for _, tt := range tests {
		require.NoError(t, p.SetLoopStatus(tt.status))
		assert.Equal(t, tt.mode, svc.Mode().Repeat)
		got, _ := p.LoopStatus()
		assert.Equal(t, tt.status, got)
	}

	require.NoError(t, p.SetShuffle(true))
	on, _ := p.Shuffle()
	assert.True(t, on)
	canNext, _ := p.CanGoNext()
	assert.True(t, canNext)
}

func TestSplitArtists(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, splitArtists("A, B,"))
	assert.Nil(t, splitArtists(""))
}

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }
