// Package playback owns the player state: queue, current track, modes,
// download index, user collections and their persistence.
package playback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/Sumitb09/music-player/internal/downloads"
	"github.com/Sumitb09/music-player/internal/player"
	"github.com/Sumitb09/music-player/internal/playlist"
	"github.com/Sumitb09/music-player/internal/playlists"
	"github.com/Sumitb09/music-player/internal/state"
)

// DefaultQuality is the preferred remote source quality.
const DefaultQuality = "320kbps"

// writeQueueSize bounds snapshots waiting for the writer.
const writeQueueSize = 64

// Resolver fetches full track details from the catalog.
type Resolver interface {
	TrackDetail(ctx context.Context, id string) (*playlist.Track, error)
}

// Deps are the collaborators a Service drives.
type Deps struct {
	Engine    player.Engine
	Resolver  Resolver
	Transport downloads.Transport
	Store     state.Store
	Logger    *slog.Logger

	// PreferredQuality selects among a track's sources. Defaults to DefaultQuality.
	PreferredQuality string
	// Rand picks a shuffle index in [0, n). Defaults to math/rand/v2.IntN.
	Rand func(n int) int
}

// Service is the single owned player state.
//
// Every mutator runs to completion under mu, so no caller observes the
// queue and the current index out of step. Each mutation encodes a
// Snapshot and hands it to one writer goroutine that stores snapshots in
// order; Close waits for it to drain.
type Service struct {
	mu sync.Mutex

	engine    player.Engine
	resolver  Resolver
	transport downloads.Transport
	store     state.Store
	logger    *slog.Logger
	quality   string
	rand      func(int) int

	queue       *playlist.PlayingQueue
	current     *playlist.Track
	phase       Phase
	transportSt Transport
	shuffle     bool
	repeat      RepeatMode
	theme       Theme
	downloads   *downloads.Index
	recent      *playlist.History[playlist.Track]
	searches    *playlist.History[string]
	favorites   *playlists.Favorites
	playlists   *playlists.Collection
	playGen     uint64
	inflight    int // play requests not yet returned
	closed      bool
	loadMu      sync.Mutex // serializes engine loads
	writes      chan []byte
	writerDone  chan struct{}
	done        chan struct{}
	closeOnce   sync.Once
	runOnce     sync.Once
	subs        []*Subscription
	subsMu      sync.RWMutex
}

// New creates a service with empty state. Call Hydrate to load the
// persisted snapshot and Run to consume engine events.
func New(deps Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	quality := deps.PreferredQuality
	if quality == "" {
		quality = DefaultQuality
	}
	pick := deps.Rand
	if pick == nil {
		pick = rand.IntN
	}

	s := &Service{
		engine:     deps.Engine,
		resolver:   deps.Resolver,
		transport:  deps.Transport,
		store:      deps.Store,
		logger:     logger,
		quality:    quality,
		rand:       pick,
		queue:      playlist.NewQueue(),
		downloads:  downloads.NewIndex(),
		recent:     playlist.NewTrackHistory(playlist.RecentlyPlayedLimit),
		searches:   playlist.NewQueryHistory(playlist.SearchHistoryLimit),
		favorites:  playlists.NewFavorites(),
		playlists:  playlists.New(),
		writes:     make(chan []byte, writeQueueSize),
		writerDone: make(chan struct{}),
		done:       make(chan struct{}),
	}
	go s.writer()
	return s
}

// Hydrate loads the persisted snapshot. A missing snapshot leaves the
// defaults in place; a read or decode failure is returned and also leaves
// the defaults in place.
func (s *Service) Hydrate(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	raw, ok, err := s.store.Get(ctx, state.SnapshotKey)
	if err != nil {
		s.logger.Warn("load snapshot", "op", "hydrate", "error", err)
		return fmt.Errorf("load snapshot: %w", err)
	}
	if !ok {
		return nil
	}
	snap, err := state.DecodeSnapshot([]byte(raw))
	if err != nil {
		s.logger.Warn("decode snapshot", "op", "hydrate", "error", err)
		return fmt.Errorf("decode snapshot: %w", err)
	}

	s.mu.Lock()
	s.queue.Restore(snap.Queue, snap.CurrentIndex)
	s.shuffle = snap.Shuffle
	s.repeat = parseRepeatMode(snap.RepeatMode)
	s.theme = parseTheme(snap.Theme)
	s.downloads.Restore(snap.Downloaded)
	s.recent.Restore(snap.RecentlyPlayed)
	s.searches.Restore(snap.SearchHistory)
	s.favorites.Restore(snap.Favorites)
	s.playlists.Restore(snap.Playlists)

	s.notifyQueueLocked()
	s.notifyModeLocked()
	for _, c := range []Collection{
		CollectionFavorites, CollectionRecentlyPlayed, CollectionSearchHistory,
		CollectionPlaylists, CollectionDownloads,
	} {
		s.notifyCollectionLocked(c)
	}
	s.mu.Unlock()

	s.logger.Info("state restored",
		"queue", len(snap.Queue), "downloads", len(snap.Downloaded),
		"favorites", len(snap.Favorites), "playlists", len(snap.Playlists))
	return nil
}

// Run consumes engine status reports until ctx is done or the service is
// closed. It is the only place engine events mutate state.
func (s *Service) Run(ctx context.Context) {
	if s.engine == nil {
		return
	}
	s.runOnce.Do(func() {
		events := s.engine.Events()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.done:
				return
			case st := <-events:
				s.handleStatus(ctx, st)
			}
		}
	})
}

// Close stops the event loop, waits for queued snapshot writes and closes
// subscriptions. The engine and store are owned by the caller.
func (s *Service) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.done)
		close(s.writes)
		s.mu.Unlock()

		<-s.writerDone

		s.subsMu.Lock()
		for _, sub := range s.subs {
			sub.close()
		}
		s.subs = nil
		s.subsMu.Unlock()
	})
	return nil
}

// Subscribe creates a new event subscription.
func (s *Service) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// persistLocked encodes the snapshot and queues it for the writer.
func (s *Service) persistLocked() {
	if s.closed || s.store == nil {
		return
	}
	data, err := s.snapshotLocked().Encode()
	if err != nil {
		s.logger.Error("encode snapshot", "op", "persist", "error", err)
		return
	}
	s.writes <- data
}

func (s *Service) writer() {
	defer close(s.writerDone)
	for data := range s.writes {
		if err := s.store.Set(context.Background(), state.SnapshotKey, string(data)); err != nil {
			s.logger.Warn("persist snapshot", "op", "persist", "error", err)
			s.notifyError(ErrorEvent{Operation: "persist", Err: err})
		}
	}
}

// Snapshot returns the persisted projection of the current state.
func (s *Service) Snapshot() state.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() state.Snapshot {
	return state.Snapshot{
		Queue:          s.queue.Tracks(),
		CurrentIndex:   s.queue.CurrentIndex(),
		Shuffle:        s.shuffle,
		RepeatMode:     s.repeat.persisted(),
		Downloaded:     s.downloads.Entries(),
		Theme:          s.theme.persisted(),
		RecentlyPlayed: s.recent.Items(),
		SearchHistory:  s.searches.Items(),
		Favorites:      s.favorites.Tracks(),
		Playlists:      s.playlists.List(),
	}
}

// Phase returns the orchestrator phase.
func (s *Service) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Transport returns the last mirrored engine status.
func (s *Service) Transport() Transport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transportSt
}

// CurrentTrack returns a copy of the playing track, or nil if none.
func (s *Service) CurrentTrack() *playlist.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTrack(s.current)
}

func cloneTrack(t *playlist.Track) *playlist.Track {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func (s *Service) setPhaseLocked(p Phase) {
	if s.phase == p {
		return
	}
	prev := s.phase
	s.phase = p
	s.broadcast(func(sub *Subscription) { sub.sendState(StateChange{Previous: prev, Current: p}) })
}

func (s *Service) notifyQueueLocked() {
	e := QueueChange{Tracks: s.queue.Tracks(), Index: s.queue.CurrentIndex()}
	s.broadcast(func(sub *Subscription) { sub.sendQueue(e) })
}

func (s *Service) notifyModeLocked() {
	e := ModeChange{RepeatMode: s.repeat, Shuffle: s.shuffle, Theme: s.theme}
	s.broadcast(func(sub *Subscription) { sub.sendMode(e) })
}

func (s *Service) notifyCollectionLocked(c Collection) {
	s.broadcast(func(sub *Subscription) { sub.sendCollection(CollectionChange{Collection: c}) })
}

func (s *Service) notifyError(e ErrorEvent) {
	s.broadcast(func(sub *Subscription) { sub.sendError(e) })
}

func (s *Service) broadcast(fn func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}

// isQuiet reports errors that are expected outcomes, not failures.
func isQuiet(err error) bool {
	return errors.Is(err, ErrSuperseded) || errors.Is(err, ErrEndOfQueue) ||
		errors.Is(err, context.Canceled)
}
