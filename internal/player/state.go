// internal/player/state.go
package player

// State is the engine's transport state.
//
//	Stopped ──load──▶ Playing ◀──resume── Paused
//	                     │                   ▲
//	                     └───────pause───────┘
//
// A source playing to its end returns the engine to Stopped with the source
// still loaded, so Seek followed by Resume replays it.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused || s == Stopped
}
