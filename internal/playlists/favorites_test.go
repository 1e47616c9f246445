package playlists

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumitb09/music-player/internal/playlist"
)

func TestFavorites_AddTwice(t *testing.T) {
	f := NewFavorites()

	f.Add(playlist.Track{ID: "a"})
	f.Add(playlist.Track{ID: "b"})
	f.Add(playlist.Track{ID: "a"})

	assert.Equal(t, []string{"a", "b"}, trackIDs(f.Tracks()))
}

func TestFavorites_Remove(t *testing.T) {
	f := NewFavorites()
	f.Add(playlist.Track{ID: "a"})

	assert.True(t, f.Remove("a"))
	assert.False(t, f.Remove("a"))
	assert.False(t, f.IsFavorite("a"))
}

func TestFavorites_Toggle(t *testing.T) {
	f := NewFavorites()
	tr := playlist.Track{ID: "a"}

	assert.True(t, f.Toggle(tr))
	assert.True(t, f.IsFavorite("a"))
	assert.False(t, f.Toggle(tr))
	assert.False(t, f.IsFavorite("a"))
}

func TestFavorites_Unbounded(t *testing.T) {
	f := NewFavorites()
	for i := range 40 {
		f.Add(playlist.Track{ID: string(rune('A' + i))})
	}

	assert.Equal(t, 40, f.Len())
	assert.Len(t, f.IDs(), 40)
}

func TestFavorites_Restore(t *testing.T) {
	f := NewFavorites()

	f.Restore([]playlist.Track{{ID: "a"}, {ID: "b"}, {ID: "a"}})

	assert.Equal(t, []string{"a", "b"}, trackIDs(f.Tracks()))
}
