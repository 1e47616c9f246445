package downloads

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/tags"
)

// mp3Bytes returns a single MPEG1 Layer3 frame.
func mp3Bytes() []byte {
	frame := make([]byte, 417)
	frame[0] = 0xff
	frame[1] = 0xfb
	frame[2] = 0x90
	return frame
}

type audioServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newAudioServer(t *testing.T) *audioServer {
	t.Helper()
	s := &audioServer{}
	s.Server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/audio/"):
			s.hits.Add(1)
			_, _ = w.Write(mp3Bytes())
		case r.URL.Path == "/art.png":
			_, _ = w.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func TestFileTransport_Download(t *testing.T) {
	srv := newAudioServer(t)
	dir := t.TempDir()
	tr := NewFileTransport(dir, srv.Client(), nil)

	meta := playlist.Track{ID: "abc", Title: "Song", Artists: "Artist", Album: "Album", Artwork: srv.URL + "/art.png"}
	loc, err := tr.Download(context.Background(), srv.URL+"/audio/abc_320.mp3", "abc", meta)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "abc.mp3"), loc)
	_, err = os.Stat(loc + ".part")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed")

	got, err := tags.Read(loc)
	require.NoError(t, err)
	assert.Equal(t, "Song", got.Title)
	assert.Equal(t, "Artist", got.Artist)
}

func TestFileTransport_ExistingFileNotRefetched(t *testing.T) {
	srv := newAudioServer(t)
	dir := t.TempDir()
	tr := NewFileTransport(dir, srv.Client(), nil)
	url := srv.URL + "/audio/abc.mp3"

	first, err := tr.Download(context.Background(), url, "abc", playlist.Track{})
	require.NoError(t, err)
	second, err := tr.Download(context.Background(), url, "abc", playlist.Track{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), srv.hits.Load())
}

func TestFileTransport_UpgradesHTTP(t *testing.T) {
	srv := newAudioServer(t)
	tr := NewFileTransport(t.TempDir(), srv.Client(), nil)
	plain := "http://" + strings.TrimPrefix(srv.URL, "https://") + "/audio/x.mp3"

	_, err := tr.Download(context.Background(), plain, "x", playlist.Track{})

	require.NoError(t, err)
	assert.Equal(t, int32(1), srv.hits.Load())
}

func TestFileTransport_ExtensionFromURL(t *testing.T) {
	tr := NewFileTransport("/dl", nil, nil)

	assert.Equal(t, filepath.Join("/dl", "a.mp4"), tr.PathFor("https://cdn/x/a_320.mp4?sig=1", "a"))
	assert.Equal(t, filepath.Join("/dl", "a.m4a"), tr.PathFor("https://cdn/x/a.M4A", "a"))
	assert.Equal(t, filepath.Join("/dl", "a.mp3"), tr.PathFor("https://cdn/x/a", "a"))
}

func TestFileTransport_FailureLeavesNoFile(t *testing.T) {
	srv := newAudioServer(t)
	dir := t.TempDir()
	tr := NewFileTransport(dir, srv.Client(), nil)

	_, err := tr.Download(context.Background(), srv.URL+"/missing.mp3", "abc", playlist.Track{})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileTransport_Errors(t *testing.T) {
	tr := NewFileTransport(t.TempDir(), nil, nil)

	_, err := tr.Download(context.Background(), "", "abc", playlist.Track{})
	assert.True(t, errors.Is(err, ErrNoSource))

	for _, id := range []string{"", "..", "a/b", `a\b`} {
		_, err := tr.Download(context.Background(), "https://cdn/a.mp3", id, playlist.Track{})
		assert.True(t, errors.Is(err, ErrInvalidID), "id %q", id)
	}
}

func TestNewFileTransport_DefaultClientTimesOut(t *testing.T) {
	tr := NewFileTransport(t.TempDir(), nil, nil)
	assert.Equal(t, defaultTimeout, tr.httpClient.Timeout)

	custom := &http.Client{}
	assert.Same(t, custom, NewFileTransport(t.TempDir(), custom, nil).httpClient)
}

func TestUpgradeScheme(t *testing.T) {
	assert.Equal(t, "https://a/b", upgradeScheme("http://a/b"))
	assert.Equal(t, "https://a/b", upgradeScheme("https://a/b"))
	assert.Equal(t, "/local/path", upgradeScheme("/local/path"))
}
