package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/playlists"
	"github.com/Sumitb09/music-player/internal/state"
)

func seedStore(t *testing.T, backend string, snap *state.Snapshot) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state."+backend)
	store, err := state.Open(backend, path)
	require.NoError(t, err)
	if snap != nil {
		data, err := snap.Encode()
		require.NoError(t, err)
		require.NoError(t, store.Set(context.Background(), state.SnapshotKey, string(data)))
	}
	require.NoError(t, store.Close())
	return path
}

func sampleSnapshot(t *testing.T) state.Snapshot {
	t.Helper()
	file := filepath.Join(t.TempDir(), "a.mp3")
	require.NoError(t, os.WriteFile(file, make([]byte, 1500), 0o600))

	s := state.DefaultSnapshot()
	s.Queue = []playlist.Track{
		{ID: "a", Title: "Kesariya", Artists: "Arijit Singh"},
		{ID: "b", Title: "Apna Bana Le"},
	}
	s.CurrentIndex = 1
	s.Shuffle = true
	s.RepeatMode = state.RepeatAll
	s.Theme = state.ThemeDark
	s.SearchHistory = []string{"arijit", "lofi"}
	s.Favorites = []playlist.Track{{ID: "a"}}
	s.Playlists = []playlists.Playlist{{ID: "p1", Name: "Drive", Tracks: []playlist.Track{{ID: "a"}}}}
	s.Downloaded = map[string]string{
		"a":    file,
		"gone": filepath.Join(t.TempDir(), "gone.mp3"),
	}
	return s
}

func TestRun_Summary(t *testing.T) {
	for _, backend := range []string{state.BackendSQLite, state.BackendBolt} {
		t.Run(backend, func(t *testing.T) {
			snap := sampleSnapshot(t)
			path := seedStore(t, backend, &snap)

			var out strings.Builder
			require.NoError(t, run(context.Background(), []string{"-backend", backend, "-path", path}, &out))
			got := out.String()

			assert.Contains(t, got, "2 tracks")
			assert.Contains(t, got, "Shuffle:")
			assert.Contains(t, got, "on")
			assert.Contains(t, got, `"arijit", "lofi"`)
			assert.Contains(t, got, "▶   2  Apna Bana Le")
			assert.Contains(t, got, "    1  Kesariya - Arijit Singh")
			assert.Contains(t, got, "Drive (1 track)")
			assert.Contains(t, got, "Downloads (2, 1.5 kB)")
			assert.Contains(t, got, "missing")
			if backend == state.BackendSQLite {
				assert.Contains(t, got, "Updated:")
			} else {
				assert.NotContains(t, got, "Updated:")
			}
		})
	}
}

func TestRun_JSON(t *testing.T) {
	snap := sampleSnapshot(t)
	path := seedStore(t, state.BackendBolt, &snap)

	var out strings.Builder
	require.NoError(t, run(context.Background(), []string{"-json", "-backend", "bolt", "-path", path}, &out))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out.String()), &decoded))
	assert.Equal(t, "dark", decoded["theme"])
	assert.Contains(t, out.String(), "\n  \"")
}

func TestRun_NoSnapshot(t *testing.T) {
	path := seedStore(t, state.BackendSQLite, nil)

	var out strings.Builder
	require.NoError(t, run(context.Background(), []string{"-backend", "sqlite", "-path", path}, &out))
	assert.Equal(t, "No snapshot stored.\n", out.String())
}

func TestRun_UnknownBackend(t *testing.T) {
	err := run(context.Background(), []string{"-backend", "redis", "-path", "x"}, &strings.Builder{})
	require.ErrorIs(t, err, state.ErrUnknownBackend)
}

func TestRun_CorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	store, err := state.Open(state.BackendSQLite, path)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), state.SnapshotKey, "{not json"))
	require.NoError(t, store.Close())

	err = run(context.Background(), []string{"-backend", "sqlite", "-path", path}, &strings.Builder{})
	assert.Error(t, err)
}

func TestCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 tracks"},
		{1, "1 track"},
		{1200, "1,200 tracks"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, count(tt.n, "track"))
	}
}

func TestPrintSummary_Updated(t *testing.T) {
	var out strings.Builder
	require.NoError(t, printSummary(&out, state.DefaultSnapshot(), time.Now().Add(-3*time.Minute)))
	assert.Contains(t, out.String(), "3 minutes ago")
}
