package playback

import "github.com/Sumitb09/music-player/internal/playlist"

// StateChange is emitted when the phase changes.
type StateChange struct {
	Previous Phase
	Current  Phase
}

// TrackChange is emitted when playback starts on a track.
//
// Emitted by PlayTrackAt, PlayTrack, Next and Previous once the engine has
// accepted the source, and by auto-advance when a track ends. Not emitted
// when repeat-one replays the same track in place.
type TrackChange struct {
	Previous      *playlist.Track
	Current       *playlist.Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the queue contents or pointer change.
type QueueChange struct {
	Tracks []playlist.Track
	Index  int
}

// ModeChange is emitted when repeat, shuffle or theme changes.
type ModeChange struct {
	RepeatMode RepeatMode
	Shuffle    bool
	Theme      Theme
}

// Collection names a user collection.
type Collection int

const (
	CollectionFavorites Collection = iota
	CollectionRecentlyPlayed
	CollectionSearchHistory
	CollectionPlaylists
	CollectionDownloads
)

// String returns the collection name.
func (c Collection) String() string {
	switch c {
	case CollectionFavorites:
		return "favorites"
	case CollectionRecentlyPlayed:
		return "recently played"
	case CollectionSearchHistory:
		return "search history"
	case CollectionPlaylists:
		return "playlists"
	case CollectionDownloads:
		return "downloads"
	default:
		return "unknown"
	}
}

// CollectionChange is emitted when a user collection changes.
type CollectionChange struct {
	Collection Collection
}

// TransportChange is emitted for every engine status report.
type TransportChange struct {
	Transport Transport
}

// ErrorEvent is emitted when a failure is swallowed rather than returned,
// e.g. a persistence write or an automatic advance.
type ErrorEvent struct {
	Operation string // e.g. "persist", "advance"
	TrackID   string // track id if applicable
	Err       error
}
