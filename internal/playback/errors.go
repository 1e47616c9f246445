package playback

import "errors"

// Outcomes of operations that no-opped. A returned error never comes with
// a state change.
var (
	ErrEmptyQueue   = errors.New("queue is empty")
	ErrInvalidIndex = errors.New("no track at index")
	ErrEndOfQueue   = errors.New("end of queue")
	ErrStartOfQueue = errors.New("start of queue")
	ErrUnresolved   = errors.New("track detail unavailable")
	ErrNoSource     = errors.New("no playable source")
	ErrSuperseded   = errors.New("superseded by a newer play request")
	ErrNoEngine     = errors.New("no playback engine")
)
