// Package player drives audio output for a single loaded source.
package player

import (
	"context"
	"errors"
	"time"
)

// ErrNotLoaded is returned by transport calls when no source is loaded.
var ErrNotLoaded = errors.New("no source loaded")

// ErrClosed is returned by calls on a closed engine.
var ErrClosed = errors.New("engine closed")

// ErrSourceTooLarge is returned for remote sources too big to buffer.
var ErrSourceTooLarge = errors.New("source too large")

// Status is a transport report from the engine.
type Status struct {
	Position time.Duration
	Duration time.Duration
	Playing  bool
	Finished bool // the loaded source just played to its end
	Loaded   bool
}

// Engine plays one source at a time.
//
// Load replaces whatever is loaded and starts playback. Status reports are
// delivered on Events; a Finished report is never dropped, periodic position
// reports may be when the consumer falls behind.
type Engine interface {
	Load(ctx context.Context, uri string) error
	Pause() error
	Resume() error
	Seek(pos time.Duration) error
	Events() <-chan Status
	Close() error
}

// Verify implementations at compile time.
var (
	_ Engine = (*BeepEngine)(nil)
	_ Engine = (*Mock)(nil)
)
