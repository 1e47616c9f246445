//go:build linux

package mpris

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/Sumitb09/music-player/internal/playback"
)

// Adapter connects the playback service to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
	logger *slog.Logger
}

// New creates and starts a new MPRIS adapter. Commands arriving over D-Bus
// run with ctx.
func New(ctx context.Context, service *playback.Service, logger *slog.Logger) (*Adapter, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &Adapter{logger: logger}

	a.server = server.NewServer("music_player", &rootAdapter{},
		&playerAdapter{ctx: ctx, service: service, logger: logger})

	// Start the server in background
	go func() {
		if err := a.server.Listen(); err != nil {
			logger.Warn("mpris listen", "error", err)
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Music Player", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp4", "audio/aac"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional interfaces.
type playerAdapter struct {
	ctx     context.Context
	service *playback.Service
	logger  *slog.Logger
}

// quiet drops errors a media key has no use for, such as pressing next
// on the last track.
func (p *playerAdapter) quiet(op string, err error) error {
	if err == nil {
		return nil
	}
	p.logger.Debug("mpris command", "op", op, "error", err)
	return nil
}

func (p *playerAdapter) Next() error {
	return p.quiet("next", p.service.Next(p.ctx))
}

func (p *playerAdapter) Previous() error {
	return p.quiet("previous", p.service.Previous(p.ctx))
}

func (p *playerAdapter) Pause() error {
	if p.service.Phase() != playback.PhasePlaying {
		return nil
	}
	return p.quiet("pause", p.service.Pause())
}

func (p *playerAdapter) PlayPause() error {
	if p.service.Phase() == playback.PhaseIdle {
		return p.Play()
	}
	return p.quiet("play-pause", p.service.TogglePause())
}

func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	switch p.service.Phase() {
	case playback.PhaseIdle:
		return p.quiet("play", p.service.PlayTrackAt(p.ctx, p.service.CurrentIndex()))
	case playback.PhasePaused:
		return p.quiet("play", p.service.Resume())
	case playback.PhaseResolving, playback.PhasePlaying:
	}
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	pos := p.service.Transport().Position + time.Duration(offset)*time.Microsecond
	return p.quiet("seek", p.service.Seek(max(0, pos)))
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.quiet("seek", p.service.Seek(time.Duration(position)*time.Microsecond))
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.service.Phase() {
	case playback.PhasePlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.PhasePaused:
		return types.PlaybackStatusPaused, nil
	case playback.PhaseIdle, playback.PhaseResolving:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	track := p.service.CurrentTrack()
	if track == nil {
		return types.Metadata{}, nil
	}

	length := track.Duration
	if d := p.service.Transport().Duration; d > 0 {
		length = d
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.ID)),
		Length:  types.Microseconds(length.Microseconds()),
		Title:   track.Title,
		Artist:  splitArtists(track.Artists),
		Album:   track.Album,
	}

	local := p.service.ResolveSourceURI(track.ID, "")
	meta.ArtUrl = artURL(track.Artwork, local)

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil // Volume control not exposed via service
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.Transport().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	n := len(p.service.Queue())
	if n == 0 {
		return false, nil
	}
	mode := p.service.Mode()
	if mode.Shuffle || mode.Repeat == playback.RepeatAll {
		return true, nil
	}
	return p.service.CurrentIndex() < n-1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.service.CurrentIndex() > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return len(p.service.Queue()) > 0 || p.service.CurrentTrack() != nil, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.service.CurrentTrack() != nil, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.service.CurrentTrack() != nil, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return loopStatus(p.service.Mode().Repeat), nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	p.service.SetRepeatMode(repeatMode(status))
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.service.Mode().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	p.service.SetShuffle(shuffle)
	return nil
}

func loopStatus(m playback.RepeatMode) types.LoopStatus {
	switch m {
	case playback.RepeatOne:
		return types.LoopStatusTrack
	case playback.RepeatAll:
		return types.LoopStatusPlaylist
	case playback.RepeatOff:
		return types.LoopStatusNone
	}
	return types.LoopStatusNone
}

func repeatMode(s types.LoopStatus) playback.RepeatMode {
	switch s {
	case types.LoopStatusTrack:
		return playback.RepeatOne
	case types.LoopStatusPlaylist:
		return playback.RepeatAll
	case types.LoopStatusNone:
		return playback.RepeatOff
	}
	return playback.RepeatOff
}

func splitArtists(s string) []string {
	var out []string
	for a := range strings.SplitSeq(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
