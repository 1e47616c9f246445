// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpSearch       Op = "search catalog"
	OpLoadHome     Op = "load home"
	OpLoadArtist   Op = "load artist tracks"
	OpLoadAlbum    Op = "load album"
	OpLoadPlaylist Op = "load playlist"

	// Download operations
	OpDownload       Op = "download track"
	OpDownloadDelete Op = "delete download"
	OpDownloadVerify Op = "verify downloads"

	// Playlist operations
	OpPlaylistCreate   Op = "create playlist"
	OpPlaylistRename   Op = "rename playlist"
	OpPlaylistDelete   Op = "delete playlist"
	OpPlaylistAddTrack Op = "add track to playlist"
	OpPlaylistRemove   Op = "remove track from playlist"

	// Queue operations
	OpQueueRemove  Op = "remove from queue"
	OpQueueReorder Op = "reorder queue"

	// Playback operations
	OpPlaybackStart   Op = "start playback"
	OpPlaybackNext    Op = "skip to next track"
	OpPlaybackPrev    Op = "go to previous track"
	OpPlaybackPause   Op = "pause"
	OpPlaybackSeek    Op = "seek"
	OpPlaybackRepeat  Op = "repeat track"
	OpPlaybackAdvance Op = "advance queue"

	// State
	OpStateSave Op = "save state"
	OpStateLoad Op = "load state"

	// Initialization
	OpInitialize Op = "initialize application"
)

// operations maps background operation names reported on the playback
// error channel to their Op.
var operations = map[string]Op{
	"persist": OpStateSave,
	"hydrate": OpStateLoad,
	"advance": OpPlaybackAdvance,
	"repeat":  OpPlaybackRepeat,
	"play":    OpPlaybackStart,
}

// ForOperation returns the Op for a background operation name.
// Unknown names are used verbatim.
func ForOperation(name string) Op {
	if op, ok := operations[name]; ok {
		return op
	}
	return Op(name)
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
