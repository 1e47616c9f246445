package player

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gopxl/beep/v2"

	"github.com/Sumitb09/music-player/internal/tags"
)

// maxRemoteBytes bounds a streamed source held in memory.
const maxRemoteBytes = 64 << 20

type readSeekNopCloser struct {
	*bytes.Reader
}

func (readSeekNopCloser) Close() error { return nil }

// isRemote reports whether uri is fetched over HTTP.
func isRemote(uri string) bool {
	return strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://")
}

// openSource opens a local path, a file:// URI or an http(s) URL.
// Remote sources are read fully into memory so they can be seeked.
func openSource(ctx context.Context, client *http.Client, uri string) (io.ReadSeekCloser, error) {
	if !isRemote(uri) {
		return os.Open(strings.TrimPrefix(uri, "file://"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := readLimited(resp.Body, maxRemoteBytes)
	if err != nil {
		return nil, err
	}
	return readSeekNopCloser{bytes.NewReader(data)}, nil
}

// readLimited reads r fully, failing when it holds more than limit bytes.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: over %d bytes", ErrSourceTooLarge, limit)
	}
	return data, nil
}

// detectFormat sniffs the container, falling back to the URI's extension.
func detectFormat(r io.ReadSeeker, uri string) (tags.Format, error) {
	format, err := tags.Identify(r)
	if err == nil {
		return format, nil
	}
	p := uri
	if u, perr := url.Parse(uri); perr == nil && u.Path != "" {
		p = u.Path
	}
	if byExt := tags.FormatFromExt(p); byExt != tags.FormatUnknown {
		return byExt, nil
	}
	return tags.FormatUnknown, fmt.Errorf("%s: %w", uri, err)
}

// decode opens a decoder for the sniffed format. On error rc is closed.
func decode(rc io.ReadSeekCloser, uri string) (beep.StreamSeekCloser, beep.Format, error) {
	format, err := detectFormat(rc, uri)
	if err != nil {
		rc.Close()
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		bf       beep.Format
	)
	switch format {
	case tags.FormatMP3:
		streamer, bf, err = decodeGoMP3(rc)
	case tags.FormatMP4:
		streamer, bf, err = decodeM4A(rc)
	default:
		err = fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		rc.Close()
		return nil, beep.Format{}, err
	}
	return streamer, bf, nil
}
