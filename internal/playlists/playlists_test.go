//nolint:goconst // test files commonly repeat strings for test data
package playlists

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumitb09/music-player/internal/playlist"
)

// newTestCollection returns a collection with predictable ids pl1, pl2, ...
func newTestCollection() *Collection {
	c := New()
	n := 0
	c.newID = func() string {
		n++
		return fmt.Sprintf("pl%d", n)
	}
	return c
}

func trackIDs(tracks []playlist.Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.ID
	}
	return out
}

func TestCreate_PrependsWithUniqueID(t *testing.T) {
	c := New()

	first := c.Create("Chill")
	second := c.Create("Workout")

	require.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Empty(t, first.Tracks)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Workout", list[0].Name)
	assert.Equal(t, "Chill", list[1].Name)
}

func TestRename(t *testing.T) {
	c := newTestCollection()
	pl := c.Create("Old")

	assert.True(t, c.Rename(pl.ID, "New"))
	assert.False(t, c.Rename("missing", "X"))

	got, ok := c.Get(pl.ID)
	require.True(t, ok)
	assert.Equal(t, "New", got.Name)
}

func TestDelete(t *testing.T) {
	c := newTestCollection()
	a := c.Create("A")
	b := c.Create("B")

	assert.True(t, c.Delete(a.ID))
	assert.False(t, c.Delete(a.ID))

	list := c.List()
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestAddTrack_PrependsWithoutDedup(t *testing.T) {
	c := newTestCollection()
	pl := c.Create("Mix")

	require.True(t, c.AddTrack(pl.ID, playlist.Track{ID: "a"}))
	require.True(t, c.AddTrack(pl.ID, playlist.Track{ID: "b"}))
	require.True(t, c.AddTrack(pl.ID, playlist.Track{ID: "a"}))

	got, _ := c.Get(pl.ID)
	assert.Equal(t, []string{"a", "b", "a"}, trackIDs(got.Tracks))
}

func TestAddTrack_UnknownPlaylist(t *testing.T) {
	c := newTestCollection()
	c.Create("Mix")

	assert.False(t, c.AddTrack("nope", playlist.Track{ID: "a"}))
}

func TestRemoveTrack_RemovesEveryOccurrence(t *testing.T) {
	c := newTestCollection()
	pl := c.Create("Mix")
	c.AddTrack(pl.ID, playlist.Track{ID: "a"})
	c.AddTrack(pl.ID, playlist.Track{ID: "b"})
	c.AddTrack(pl.ID, playlist.Track{ID: "a"})

	assert.True(t, c.RemoveTrack(pl.ID, "a"))
	assert.False(t, c.RemoveTrack(pl.ID, "a"))
	assert.False(t, c.RemoveTrack("nope", "b"))

	got, _ := c.Get(pl.ID)
	assert.Equal(t, []string{"b"}, trackIDs(got.Tracks))
}

func TestList_ReturnsDeepCopy(t *testing.T) {
	c := newTestCollection()
	pl := c.Create("Mix")
	c.AddTrack(pl.ID, playlist.Track{ID: "a"})

	list := c.List()
	list[0].Name = "changed"
	list[0].Tracks[0].ID = "changed"

	got, _ := c.Get(pl.ID)
	assert.Equal(t, "Mix", got.Name)
	assert.Equal(t, "a", got.Tracks[0].ID)
}

func TestRestore(t *testing.T) {
	c := newTestCollection()

	c.Restore([]Playlist{
		{ID: "x", Name: "First", Tracks: []playlist.Track{{ID: "a"}}},
		{ID: "", Name: "NoID"},
		{ID: "x", Name: "Duplicate"},
	})

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "x", list[0].ID)
	assert.Equal(t, "First", list[0].Name)
	assert.Equal(t, "pl1", list[1].ID)
	assert.NotNil(t, list[1].Tracks)
}

func TestSearch(t *testing.T) {
	c := newTestCollection()
	c.Create("Road Trip")
	c.Create("Sleep")
	c.Create("Rock Classics")

	all := c.Search("")
	require.Len(t, all, 3)
	assert.Equal(t, "Rock Classics", all[0].Name)

	got := c.Search("slp")
	require.Len(t, got, 1)
	assert.Equal(t, "Sleep", got[0].Name)
	assert.Equal(t, "Sleep (0)", got[0].DisplayText())
}
