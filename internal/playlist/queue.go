package playlist

// PlayingQueue wraps a Playlist with the current-track pointer.
//
// After every mutator returns, either 0 <= CurrentIndex < Len, or the
// queue is empty and CurrentIndex is 0. SetQueue is the one exception: the
// start index is stored as given and a later play attempt simply finds no
// track there.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		playlist: NewPlaylist(),
	}
}

// Current returns the track under the current pointer, or nil if none.
func (q *PlayingQueue) Current() *Track {
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the current pointer.
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// SetCurrentIndex moves the pointer to index.
// Returns false (and leaves the pointer untouched) if index has no track.
func (q *PlayingQueue) SetCurrentIndex(index int) bool {
	if q.playlist.Track(index) == nil {
		return false
	}
	q.currentIndex = index
	return true
}

// Track returns a copy of the track at index, or nil if out of bounds.
func (q *PlayingQueue) Track(index int) *Track {
	t := q.playlist.Track(index)
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// SetQueue replaces the queue wholesale and points at startIndex.
func (q *PlayingQueue) SetQueue(tracks []Track, startIndex int) {
	q.playlist.Clear()
	q.playlist.Add(tracks...)
	q.currentIndex = startIndex
}

// Restore replaces the queue from persisted data.
// Unlike SetQueue, an index with no track is reset to 0.
func (q *PlayingQueue) Restore(tracks []Track, index int) {
	q.playlist.Clear()
	q.playlist.Add(tracks...)
	if index < 0 || index >= len(tracks) {
		index = 0
	}
	q.currentIndex = index
}

// RemoveAt removes the track at the given index.
// Returns false if index has no track.
func (q *PlayingQueue) RemoveAt(index int) bool {
	if !q.playlist.Remove(index) {
		return false
	}

	switch {
	case index < q.currentIndex:
		q.currentIndex--
	case index == q.currentIndex:
		// Point at the previous track, not the one sliding into this slot.
		q.currentIndex = max(0, index-1)
	}
	if q.playlist.Len() == 0 {
		q.currentIndex = 0
	}

	return true
}

// Move moves the track at from to position to and remaps the current
// pointer so it keeps pointing at the same logical track. to is clamped
// to the queue bounds. Returns false if from has no track.
func (q *PlayingQueue) Move(from, to int) bool {
	if q.playlist.Track(from) == nil {
		return false
	}
	to = max(min(to, q.playlist.Len()-1), 0)
	if !q.playlist.Move(from, to) {
		return false
	}

	cur := q.currentIndex
	switch {
	case from == cur:
		q.currentIndex = to
	case from < cur && cur <= to:
		q.currentIndex--
	case to <= cur && cur < from:
		q.currentIndex++
	}

	return true
}

// Clear removes all tracks and resets the pointer.
func (q *PlayingQueue) Clear() {
	q.playlist.Clear()
	q.currentIndex = 0
}

// Tracks returns all tracks in the queue.
func (q *PlayingQueue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}
