// Package app is the bubbletea front-end. It renders the playback service's
// state and turns key presses into service operations.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sumitb09/music-player/internal/catalog"
	"github.com/Sumitb09/music-player/internal/errmsg"
	"github.com/Sumitb09/music-player/internal/playback"
	"github.com/Sumitb09/music-player/internal/playlist"
)

// Message category interfaces for type-based routing in Update().

// ServiceMessage is implemented by messages bridged from the playback
// service subscription.
type ServiceMessage interface {
	tea.Msg
	serviceMessage()
}

// CatalogMessage is implemented by catalog fetch results.
type CatalogMessage interface {
	tea.Msg
	catalogMessage()
}

// ServiceStateChangedMsg is sent when the playback phase changes.
type ServiceStateChangedMsg struct {
	Previous playback.Phase
	Current  playback.Phase
}

func (ServiceStateChangedMsg) serviceMessage() {}

// ServiceTrackChangedMsg is sent when a new track starts.
type ServiceTrackChangedMsg struct {
	Index int
	Track *playlist.Track
}

func (ServiceTrackChangedMsg) serviceMessage() {}

// ServiceQueueChangedMsg is sent when the queue or its pointer changes.
type ServiceQueueChangedMsg struct {
	Index int
}

func (ServiceQueueChangedMsg) serviceMessage() {}

// ServiceModeChangedMsg is sent when shuffle, repeat or theme changes.
type ServiceModeChangedMsg struct {
	Mode  playback.Mode
	Theme playback.Theme
}

func (ServiceModeChangedMsg) serviceMessage() {}

// ServiceCollectionChangedMsg is sent when a user collection changes.
type ServiceCollectionChangedMsg struct {
	Collection playback.Collection
}

func (ServiceCollectionChangedMsg) serviceMessage() {}

// ServiceTransportMsg carries an engine status report.
type ServiceTransportMsg struct {
	Transport playback.Transport
}

func (ServiceTransportMsg) serviceMessage() {}

// ServiceErrorMsg reports a background failure.
type ServiceErrorMsg struct {
	Operation string
	TrackID   string
	Err       error
}

func (ServiceErrorMsg) serviceMessage() {}

// ServiceClosedMsg is sent when the service shuts down.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) serviceMessage() {}

// HomeLoadedMsg carries the landing feed.
type HomeLoadedMsg struct {
	Home catalog.Home
}

func (HomeLoadedMsg) catalogMessage() {}

// SearchResultsMsg carries song search results for Query.
type SearchResultsMsg struct {
	Query  string
	Tracks []playlist.Track
}

func (SearchResultsMsg) catalogMessage() {}

// BrowseResultsMsg carries the artists and albums matching Query.
type BrowseResultsMsg struct {
	Query   string
	Artists []catalog.Artist
	Albums  []catalog.Album
}

func (BrowseResultsMsg) catalogMessage() {}

// BrowseTracksMsg carries the tracks of an opened artist, album or
// catalog playlist.
type BrowseTracksMsg struct {
	Title  string
	Op     errmsg.Op
	Tracks []playlist.Track
	Err    error
}

func (BrowseTracksMsg) catalogMessage() {}

// OpResultMsg reports the outcome of an asynchronous service operation.
// Done, when set, is shown on success.
type OpResultMsg struct {
	Op      errmsg.Op
	Context string
	Done    string
	Err     error
}
