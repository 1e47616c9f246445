package playback

import (
	"context"
	"fmt"
	"time"

	"github.com/Sumitb09/music-player/internal/player"
	"github.com/Sumitb09/music-player/internal/playlist"
)

// PlayTrackAt resolves and plays the queue track at index.
func (s *Service) PlayTrackAt(ctx context.Context, index int) error {
	s.mu.Lock()
	if s.queue.IsEmpty() {
		s.mu.Unlock()
		return ErrEmptyQueue
	}
	t := s.queue.Track(index)
	s.mu.Unlock()
	if t == nil {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return s.play(ctx, t.ID, index)
}

// PlayTrack resolves and plays the track id and points the queue at index.
// If index has no queue track the pointer is left where it was.
func (s *Service) PlayTrack(ctx context.Context, id string, index int) error {
	if id == "" {
		return ErrUnresolved
	}
	return s.play(ctx, id, index)
}

// Next plays the following track: a random one with shuffle on, otherwise
// the next in order, wrapping to the start only with repeat all.
func (s *Service) Next(ctx context.Context) error {
	s.mu.Lock()
	n := s.queue.Len()
	if n == 0 {
		s.mu.Unlock()
		return ErrEmptyQueue
	}
	var next int
	if s.shuffle {
		// May pick the current track again.
		next = s.rand(n)
	} else {
		next = s.queue.CurrentIndex() + 1
		if next >= n {
			if s.repeat != RepeatAll {
				s.mu.Unlock()
				return ErrEndOfQueue
			}
			next = 0
		}
	}
	s.mu.Unlock()
	return s.PlayTrackAt(ctx, next)
}

// Previous plays the preceding track. It does not wrap.
func (s *Service) Previous(ctx context.Context) error {
	s.mu.Lock()
	cur := s.queue.CurrentIndex()
	s.mu.Unlock()
	if cur <= 0 {
		return ErrStartOfQueue
	}
	return s.PlayTrackAt(ctx, cur-1)
}

// Pause pauses the engine. The phase follows the engine's next report.
func (s *Service) Pause() error {
	if s.engine == nil {
		return ErrNoEngine
	}
	return s.engine.Pause()
}

// Resume resumes the engine.
func (s *Service) Resume() error {
	if s.engine == nil {
		return ErrNoEngine
	}
	return s.engine.Resume()
}

// TogglePause pauses when playing and resumes otherwise.
func (s *Service) TogglePause() error {
	if s.Phase() == PhasePlaying {
		return s.Pause()
	}
	return s.Resume()
}

// Seek moves the engine to an absolute position.
func (s *Service) Seek(pos time.Duration) error {
	if s.engine == nil {
		return ErrNoEngine
	}
	return s.engine.Seek(pos)
}

// play runs one play request. Each request takes a generation token; once
// a newer request exists, the older one is dropped with ErrSuperseded
// before it reaches the engine. A request whose load already reached the
// engine is always applied, since loads are serialized and the engine now
// plays its source; a newer request still in flight owns the phase.
func (s *Service) play(ctx context.Context, id string, index int) error {
	if s.engine == nil {
		return ErrNoEngine
	}

	s.mu.Lock()
	s.playGen++
	gen := s.playGen
	s.inflight++
	s.setPhaseLocked(PhaseResolving)
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inflight--
		s.mu.Unlock()
	}()

	track, uri, err := s.resolve(ctx, id)
	if err != nil {
		s.abort(gen)
		s.logger.Warn("resolve track", "op", "play", "id", id, "error", err)
		return err
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if !s.isLatest(gen) {
		s.logger.Debug("play request superseded", "id", id)
		return ErrSuperseded
	}
	if err := s.engine.Load(ctx, uri); err != nil {
		s.abort(gen)
		s.logger.Warn("load source", "op", "play", "id", id, "uri", uri, "error", err)
		return fmt.Errorf("load %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stale := gen != s.playGen

	prev, prevIndex := s.current, s.queue.CurrentIndex()
	if !stale || s.queueHolds(index, track.ID) {
		s.queue.SetCurrentIndex(index)
	}
	s.current = track
	s.transportSt = Transport{Playing: true}
	if !stale || s.inflight == 1 {
		s.setPhaseLocked(PhasePlaying)
	}
	s.recent.Push(*track)
	s.persistLocked()

	e := TrackChange{
		Previous:      cloneTrack(prev),
		Current:       cloneTrack(track),
		PreviousIndex: prevIndex,
		Index:         s.queue.CurrentIndex(),
	}
	tr := TransportChange{Transport: s.transportSt}
	s.broadcast(func(sub *Subscription) {
		sub.sendTrack(e)
		sub.sendTransport(tr)
	})
	s.notifyQueueLocked()
	s.notifyCollectionLocked(CollectionRecentlyPlayed)

	s.logger.Info("playing", "id", track.ID, "title", track.Title, "index", e.Index, "uri", uri)
	return nil
}

// resolve fetches the track detail and picks its source, preferring a
// downloaded file over the remote URL.
func (s *Service) resolve(ctx context.Context, id string) (*playlist.Track, string, error) {
	if s.resolver == nil {
		return nil, "", ErrUnresolved
	}
	track, err := s.resolver.TrackDetail(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrUnresolved, id, err)
	}
	if track == nil {
		return nil, "", fmt.Errorf("%w: %s", ErrUnresolved, id)
	}
	if track.ID == "" {
		track.ID = id
	}

	s.mu.Lock()
	uri := s.downloads.ResolveSourceURI(id, track.BestSource(s.quality))
	s.mu.Unlock()
	if uri == "" {
		return nil, "", fmt.Errorf("%w: %s", ErrNoSource, id)
	}
	return track, uri, nil
}

// queueHolds reports whether the queue track at index is id. A stale
// request checks it because the queue may have been replaced meanwhile.
func (s *Service) queueHolds(index int, id string) bool {
	t := s.queue.Track(index)
	return t != nil && t.ID == id
}

func (s *Service) isLatest(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.playGen
}

// abort settles the phase after a failed request, unless a newer request
// owns it.
func (s *Service) abort(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.playGen {
		s.settlePhaseLocked()
	}
}

func (s *Service) settlePhaseLocked() {
	switch {
	case s.current == nil:
		s.setPhaseLocked(PhaseIdle)
	case s.transportSt.Playing:
		s.setPhaseLocked(PhasePlaying)
	default:
		s.setPhaseLocked(PhasePaused)
	}
}

// handleStatus mirrors an engine report and reacts to a finished track.
func (s *Service) handleStatus(ctx context.Context, st player.Status) {
	if !st.Loaded {
		return
	}

	s.mu.Lock()
	s.transportSt = Transport{Playing: st.Playing, Position: st.Position, Duration: st.Duration}
	if s.phase.IsActive() {
		s.settlePhaseLocked()
	}
	e := TransportChange{Transport: s.transportSt}
	s.broadcast(func(sub *Subscription) { sub.sendTransport(e) })
	repeat := s.repeat
	var id string
	if s.current != nil {
		id = s.current.ID
	}
	s.mu.Unlock()

	if !st.Finished {
		return
	}

	if repeat == RepeatOne {
		err := s.engine.Seek(0)
		if err == nil {
			err = s.engine.Resume()
		}
		if err != nil {
			s.logger.Warn("replay track", "op", "repeat", "id", id, "error", err)
			s.notifyError(ErrorEvent{Operation: "repeat", TrackID: id, Err: err})
		}
		return
	}

	if err := s.Next(ctx); err != nil && !isQuiet(err) {
		s.logger.Warn("advance queue", "op", "advance", "id", id, "error", err)
		s.notifyError(ErrorEvent{Operation: "advance", TrackID: id, Err: err})
	}
}
