package playback

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sumitb09/music-player/internal/downloads"
)

// ErrNoTransport is returned by Download when no transport is configured.
var ErrNoTransport = errors.New("no download transport")

// Download fetches a track for offline play and returns its local locator.
// An already-downloaded track returns its existing locator without
// touching the network. The index only gains an entry on success.
func (s *Service) Download(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	loc, ok := s.downloads.Lookup(id)
	s.mu.Unlock()
	if ok {
		return loc, nil
	}
	if s.transport == nil {
		return "", ErrNoTransport
	}

	track, _, err := s.resolve(ctx, id)
	if err != nil {
		s.logger.Warn("resolve track", "op", "download", "id", id, "error", err)
		return "", err
	}
	remote := track.BestSource(s.quality)
	if remote == "" {
		return "", fmt.Errorf("%w: %s", ErrNoSource, id)
	}

	loc, err = s.transport.Download(ctx, remote, id, *track)
	if err != nil {
		s.logger.Warn("download track", "op", "download", "id", id, "error", err)
		return "", fmt.Errorf("download %s: %w", id, err)
	}
	if loc == "" {
		return "", fmt.Errorf("download %s: %w", id, downloads.ErrNoSource)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloads.Put(id, loc)
	s.persistLocked()
	s.notifyCollectionLocked(CollectionDownloads)
	s.logger.Info("downloaded", "id", id, "locator", loc)
	return loc, nil
}

// RemoveDownload drops a downloaded track and deletes its file. A failed
// deletion is logged and the entry is still removed. Returns false if id
// was not downloaded.
func (s *Service) RemoveDownload(id string) bool {
	s.mu.Lock()
	loc, ok := s.downloads.Delete(id)
	if ok {
		s.persistLocked()
		s.notifyCollectionLocked(CollectionDownloads)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}

	if err := downloads.RemoveFile(loc); err != nil {
		s.logger.Warn("delete download", "op", "remove download", "id", id, "locator", loc, "error", err)
	}
	return true
}

// PruneDownloads drops entries whose file is missing or unreadable and
// returns their ids.
func (s *Service) PruneDownloads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	stale := downloads.Verify(s.downloads)
	if len(stale) == 0 {
		return nil
	}
	for _, id := range stale {
		s.downloads.Delete(id)
	}
	s.persistLocked()
	s.notifyCollectionLocked(CollectionDownloads)
	s.logger.Info("pruned stale downloads", "count", len(stale))
	return stale
}

// ResolveSourceURI returns the local locator for id if downloaded, else remote.
func (s *Service) ResolveSourceURI(id, remote string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.downloads.ResolveSourceURI(id, remote)
}

// IsDownloaded reports whether id has a local file.
func (s *Service) IsDownloaded(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.downloads.Has(id)
}

// Downloads returns a copy of the id to locator index.
func (s *Service) Downloads() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.downloads.Entries()
}
