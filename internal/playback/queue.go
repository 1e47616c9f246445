package playback

import (
	"slices"

	"github.com/Sumitb09/music-player/internal/playlist"
)

// SetQueue replaces the queue and points it at start. An out-of-range
// start is stored as given; the next play attempt at it no-ops.
func (s *Service) SetQueue(tracks []playlist.Track, start int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.SetQueue(slices.Clone(tracks), start)
	s.persistLocked()
	s.notifyQueueLocked()
}

// RemoveFromQueue removes the track at index. Removing the current track
// points the queue at the previous one. Returns false if index has no track.
func (s *Service) RemoveFromQueue(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.queue.RemoveAt(index) {
		return false
	}
	s.persistLocked()
	s.notifyQueueLocked()
	return true
}

// ReorderQueue moves the track at from to position to; the current
// pointer keeps following the same track. Returns false if from has no track.
func (s *Service) ReorderQueue(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.queue.Move(from, to) {
		return false
	}
	s.persistLocked()
	s.notifyQueueLocked()
	return true
}

// Queue returns a copy of the queue.
func (s *Service) Queue() []playlist.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Tracks()
}

// CurrentIndex returns the queue pointer.
func (s *Service) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.CurrentIndex()
}
