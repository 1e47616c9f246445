package downloads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/tags"
)

// ErrNoSource is returned when a download is requested without a URL.
var ErrNoSource = errors.New("no source url")

// ErrInvalidID is returned for ids that cannot be used as a file name.
var ErrInvalidID = errors.New("invalid track id")

// maxArtworkBytes bounds the artwork embedded into downloaded files.
const maxArtworkBytes = 5 << 20

// Transport fetches a remote audio file and returns its local locator.
type Transport interface {
	Download(ctx context.Context, rawURL, id string, meta playlist.Track) (string, error)
}

// FileTransport downloads into a flat directory as <dir>/<id><ext>.
type FileTransport struct {
	dir        string
	httpClient *http.Client
	logger     *slog.Logger
}

// defaultTimeout bounds a whole download when no client is given.
const defaultTimeout = 5 * time.Minute

// NewFileTransport creates a transport writing into dir.
// A nil client uses a default one; a nil logger discards.
func NewFileTransport(dir string, client *http.Client, logger *slog.Logger) *FileTransport {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileTransport{dir: dir, httpClient: client, logger: logger}
}

// Dir returns the download directory.
func (t *FileTransport) Dir() string {
	return t.dir
}

// PathFor returns the file path a download of rawURL for id is stored at.
func (t *FileTransport) PathFor(rawURL, id string) string {
	return filepath.Join(t.dir, id+extFor(rawURL))
}

// Download fetches rawURL into the download directory. A file already present
// for id is returned without fetching. The file is written under a temporary
// name and renamed on success, so a failed download never leaves a partial
// file at the final path.
func (t *FileTransport) Download(ctx context.Context, rawURL, id string, meta playlist.Track) (string, error) {
	if rawURL == "" {
		return "", ErrNoSource
	}
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	dest := t.PathFor(rawURL, id)
	if info, err := os.Stat(dest); err == nil && info.Size() > 0 {
		return dest, nil
	}

	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	if err := t.fetch(ctx, upgradeScheme(rawURL), dest); err != nil {
		return "", err
	}

	if err := t.tag(ctx, dest, meta); err != nil {
		t.logger.Warn("tag downloaded file", "op", "download", "id", id, "path", dest, "err", err)
	}

	return dest, nil
}

func (t *FileTransport) fetch(ctx context.Context, rawURL, dest string) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	tmp := dest + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if n == 0 {
		return errors.New("empty response body")
	}

	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}

// tag embeds track metadata and, when reachable, the artwork.
func (t *FileTransport) tag(ctx context.Context, dest string, meta playlist.Track) error {
	if meta.Title == "" && meta.Artists == "" && meta.Album == "" {
		return nil
	}
	tg := &tags.Tag{
		Title:  meta.Title,
		Artist: meta.Artists,
		Album:  meta.Album,
	}
	if meta.Artwork != "" {
		art, err := t.fetchArtwork(ctx, upgradeScheme(meta.Artwork))
		if err != nil {
			t.logger.Debug("fetch artwork", "op", "download", "url", meta.Artwork, "err", err)
		}
		tg.CoverArt = art
	}
	return tags.Write(dest, tg)
}

func (t *FileTransport) fetchArtwork(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxArtworkBytes))
}

// upgradeScheme rewrites plain http URLs to https.
func upgradeScheme(rawURL string) string {
	if rest, ok := strings.CutPrefix(rawURL, "http://"); ok {
		return "https://" + rest
	}
	return rawURL
}

// extFor picks the file extension from the URL path, defaulting to .mp3.
func extFor(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	ext := strings.ToLower(path.Ext(p))
	if tags.FormatFromExt(ext) == tags.FormatUnknown {
		return tags.ExtMP3
	}
	return ext
}
