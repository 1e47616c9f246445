//go:build !linux

package mpris

import (
	"context"
	"log/slog"

	"github.com/Sumitb09/music-player/internal/playback"
)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ context.Context, _ *playback.Service, _ *slog.Logger) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
