package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sumitb09/music-player/internal/errmsg"
	"github.com/Sumitb09/music-player/internal/playback"
)

// searchLimit is the number of songs fetched per search.
const searchLimit = 40

// WatchServiceEvents returns a command that waits for playback service events.
// It listens on all subscription channels and converts events to tea.Msg.
// Update re-issues it after every ServiceMessage except ServiceClosedMsg.
func (m Model) WatchServiceEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{Previous: e.Previous, Current: e.Current}
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg{Index: e.Index, Track: e.Current}
		case e := <-sub.QueueChanged:
			return ServiceQueueChangedMsg{Index: e.Index}
		case e := <-sub.ModeChanged:
			return ServiceModeChangedMsg{
				Mode:  playback.Mode{Shuffle: e.Shuffle, Repeat: e.RepeatMode},
				Theme: e.Theme,
			}
		case e := <-sub.CollectionChanged:
			return ServiceCollectionChangedMsg{Collection: e.Collection}
		case e := <-sub.TransportChanged:
			return ServiceTransportMsg{Transport: e.Transport}
		case e := <-sub.Error:
			return ServiceErrorMsg{Operation: e.Operation, TrackID: e.TrackID, Err: e.Err}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

func (m Model) homeCmd() tea.Cmd {
	if m.catalog == nil {
		return nil
	}
	ctx, cat := m.ctx, m.catalog
	return func() tea.Msg {
		return HomeLoadedMsg{Home: cat.Home(ctx)}
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	if m.catalog == nil {
		return nil
	}
	ctx, cat := m.ctx, m.catalog
	return func() tea.Msg {
		return SearchResultsMsg{Query: query, Tracks: cat.Search(ctx, query, 1, searchLimit)}
	}
}

// opCmd runs a blocking service call off the update loop.
func (m Model) opCmd(op errmsg.Op, label, done string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return OpResultMsg{Op: op, Context: label, Done: done, Err: fn(ctx)}
	}
}

func (m Model) playAtCmd(index int) tea.Cmd {
	svc := m.svc
	return m.opCmd(errmsg.OpPlaybackStart, "", "", func(ctx context.Context) error {
		return svc.PlayTrackAt(ctx, index)
	})
}

func (m Model) nextCmd() tea.Cmd {
	return m.opCmd(errmsg.OpPlaybackNext, "", "", m.svc.Next)
}

func (m Model) previousCmd() tea.Cmd {
	return m.opCmd(errmsg.OpPlaybackPrev, "", "", m.svc.Previous)
}

func (m Model) downloadCmd(id, title string) tea.Cmd {
	svc := m.svc
	return m.opCmd(errmsg.OpDownload, title, "Downloaded "+title, func(ctx context.Context) error {
		_, err := svc.Download(ctx, id)
		return err
	})
}

// quiet reports errors the status line never shows.
func quiet(err error) bool {
	return errors.Is(err, playback.ErrSuperseded) || errors.Is(err, context.Canceled)
}
