package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/playlists"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	song := playlist.Track{
		ID:       "abc",
		Title:    "Kesariya",
		Artists:  "Arijit Singh",
		Album:    "Brahmastra",
		Artwork:  "https://c.saavncdn.com/abc-500x500.jpg",
		Duration: 268 * time.Second,
		Sources:  []playlist.Source{{Quality: "320kbps", URL: "https://aac.saavncdn.com/abc_320.mp4"}},
	}
	want := Snapshot{
		Queue:          []playlist.Track{song, {ID: "def", Title: "Other"}},
		CurrentIndex:   1,
		Shuffle:        true,
		RepeatMode:     RepeatOne,
		Downloaded:     map[string]string{"abc": "/music/abc.mp4"},
		Theme:          ThemeDark,
		RecentlyPlayed: []playlist.Track{song},
		SearchHistory:  []string{"arijit", "lofi"},
		Favorites:      []playlist.Track{song},
		Playlists: []playlists.Playlist{
			{ID: "p1", Name: "Mix", Tracks: []playlist.Track{song}},
		},
	}

	data, err := want.Encode()
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeSnapshot_Defaults(t *testing.T) {
	got, err := DecodeSnapshot([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, DefaultSnapshot(), got)
	assert.NotNil(t, got.Queue)
	assert.NotNil(t, got.Downloaded)
	assert.Equal(t, RepeatOff, got.RepeatMode)
	assert.Equal(t, ThemeLight, got.Theme)
}

func TestDecodeSnapshot_UnknownEnums(t *testing.T) {
	got, err := DecodeSnapshot([]byte(`{"repeatMode":"forever","theme":"neon"}`))
	require.NoError(t, err)

	assert.Equal(t, RepeatOff, got.RepeatMode)
	assert.Equal(t, ThemeLight, got.Theme)
}

func TestDecodeSnapshot_PartialOlderSchema(t *testing.T) {
	data := []byte(`{
		"queue": [{"id":"a","title":"Legacy Title"},{"name":"no id"}],
		"currentIndex": 0,
		"repeatMode": "all",
		"downloaded": {"a": "/music/a.mp3", "": "/x", "b": ""}
	}`)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)

	require.Len(t, got.Queue, 1)
	assert.Equal(t, "Legacy Title", got.Queue[0].Title)
	assert.Equal(t, RepeatAll, got.RepeatMode)
	assert.Equal(t, map[string]string{"a": "/music/a.mp3"}, got.Downloaded)
	assert.Empty(t, got.Favorites)
	assert.Empty(t, got.Playlists)
	assert.False(t, got.Shuffle)
}

func TestDecodeSnapshot_Invalid(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`not json`))
	assert.Error(t, err)
}

func TestEncode_EmptySnapshotFieldNames(t *testing.T) {
	data, err := DefaultSnapshot().Encode()
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"queue": [],
		"currentIndex": 0,
		"shuffle": false,
		"repeatMode": "off",
		"downloaded": {},
		"theme": "light",
		"recentlyPlayed": [],
		"searchHistory": [],
		"favorites": [],
		"playlists": []
	}`, string(data))
}
