// Package state persists the player snapshot in a small key-value store.
package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "music-player"

// SnapshotKey is the key the player snapshot is stored under.
const SnapshotKey = "PLAYER_STATE"

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a durable string key-value store.
// Get reports ok=false, with a nil error, when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Verify implementations at compile time.
var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*BoltStore)(nil)
	_ Store = (*Mock)(nil)
)

// Open opens the store for backend at path. An empty backend means sqlite;
// an empty path means the default location under the XDG data directory.
func Open(backend, path string) (Store, error) {
	if backend == "" {
		backend = BackendSQLite
	}
	switch backend {
	case BackendSQLite, BackendBolt:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}

	if path == "" {
		var err error
		path, err = DefaultPath(backend)
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	if backend == BackendBolt {
		return OpenBolt(path)
	}
	return OpenSQLite(path)
}

// DefaultPath returns the default database file for backend.
func DefaultPath(backend string) (string, error) {
	name := "state.db"
	if backend == BackendBolt {
		name = "state.bolt"
	}
	return xdg.DataFile(filepath.Join(appName, name))
}
