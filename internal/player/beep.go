package player

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	// DefaultStatusInterval is the position report period.
	DefaultStatusInterval = 250 * time.Millisecond

	eventBuffer     = 16
	seekUnmuteDelay = 100 * time.Millisecond
	resampleQuality = 4
	defaultTimeout  = 30 * time.Second
)

// The speaker is process-wide and initialized once, at the rate of the
// first loaded source. Later sources are resampled to that rate.
var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return speakerSampleRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, err
	}
	speakerInitialized = true
	speakerSampleRate = rate
	return rate, nil
}

// BeepEngine plays sources through the beep speaker.
type BeepEngine struct {
	client   *http.Client
	logger   *slog.Logger
	interval time.Duration

	events    chan Status
	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	// mu is always taken before speaker.Lock.
	mu       sync.Mutex
	state    State
	gen      uint64
	seekGen  uint64
	uri      string
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	isClosed bool
}

// NewBeepEngine creates an engine publishing position reports every interval.
// A nil client gets a default with a timeout; a nil logger discards.
func NewBeepEngine(interval time.Duration, client *http.Client, logger *slog.Logger) *BeepEngine {
	if interval <= 0 {
		interval = DefaultStatusInterval
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e := &BeepEngine{
		client:   client,
		logger:   logger,
		interval: interval,
		events:   make(chan Status, eventBuffer),
		closed:   make(chan struct{}),
	}
	e.wg.Add(1)
	go e.tick()
	return e
}

// Events returns the status channel. It is never closed.
func (e *BeepEngine) Events() <-chan Status {
	return e.events
}

// State returns the transport state.
func (e *BeepEngine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Load replaces the current source with uri and starts playing it.
func (e *BeepEngine) Load(ctx context.Context, uri string) error {
	if e.isClosing() {
		return ErrClosed
	}

	rc, err := openSource(ctx, e.client, uri)
	if err != nil {
		return err
	}
	streamer, format, err := decode(rc, uri)
	if err != nil {
		return err
	}

	rate, err := initSpeaker(format.SampleRate)
	if err != nil {
		streamer.Close()
		return err
	}

	e.mu.Lock()
	if e.isClosed {
		e.mu.Unlock()
		streamer.Close()
		return ErrClosed
	}
	e.unloadLocked()

	var out beep.Streamer = streamer
	if format.SampleRate != rate {
		out = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}
	e.uri = uri
	e.streamer = streamer
	e.format = format
	e.ctrl = &beep.Ctrl{Streamer: out}
	e.volume = &effects.Volume{Streamer: e.ctrl, Base: 2}
	e.playLocked()
	s := e.statusLocked()
	e.mu.Unlock()

	e.logger.Debug("source loaded", "uri", uri, "rate", int(format.SampleRate), "duration", s.Duration)
	e.publish(s)
	return nil
}

// playLocked queues the loaded chain on the speaker under a new generation.
func (e *BeepEngine) playLocked() {
	e.gen++
	gen := e.gen
	speaker.Lock()
	e.ctrl.Paused = false
	speaker.Unlock()
	// The callback runs under the speaker lock.
	speaker.Play(beep.Seq(e.volume, beep.Callback(func() {
		go e.onFinished(gen)
	})))
	e.state = Playing
}

func (e *BeepEngine) unloadLocked() {
	if e.streamer == nil {
		return
	}
	e.gen++
	speaker.Clear()
	if err := e.streamer.Close(); err != nil {
		e.logger.Debug("close source", "uri", e.uri, "error", err)
	}
	e.streamer = nil
	e.ctrl = nil
	e.volume = nil
	e.uri = ""
	e.state = Stopped
}

func (e *BeepEngine) onFinished(gen uint64) {
	e.mu.Lock()
	if gen != e.gen || e.streamer == nil {
		e.mu.Unlock()
		return
	}
	e.state = Stopped
	s := e.statusLocked()
	e.mu.Unlock()

	s.Finished = true
	select {
	case e.events <- s:
	case <-e.closed:
	}
}

// Pause pauses playback. Pausing a stopped or paused source is a no-op.
func (e *BeepEngine) Pause() error {
	e.mu.Lock()
	if err := e.checkLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	if !e.state.CanPause() {
		e.mu.Unlock()
		return nil
	}
	speaker.Lock()
	e.ctrl.Paused = true
	speaker.Unlock()
	e.state = Paused
	s := e.statusLocked()
	e.mu.Unlock()

	e.publish(s)
	return nil
}

// Resume resumes a paused source, or replays a finished one from its
// current position.
func (e *BeepEngine) Resume() error {
	e.mu.Lock()
	if err := e.checkLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	switch e.state {
	case Playing:
		e.mu.Unlock()
		return nil
	case Paused:
		speaker.Lock()
		e.ctrl.Paused = false
		speaker.Unlock()
		e.state = Playing
	case Stopped:
		e.playLocked()
	}
	s := e.statusLocked()
	e.mu.Unlock()

	e.publish(s)
	return nil
}

// Seek moves to an absolute position, clamped to the source length.
func (e *BeepEngine) Seek(pos time.Duration) error {
	e.mu.Lock()
	if err := e.checkLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	sample := e.format.SampleRate.N(max(pos, 0))

	speaker.Lock()
	e.volume.Silent = true
	err := e.streamer.Seek(min(sample, e.streamer.Len()))
	speaker.Unlock()

	e.seekGen++
	vol, seek := e.volume, e.seekGen
	time.AfterFunc(seekUnmuteDelay, func() { e.unmute(vol, seek) })
	s := e.statusLocked()
	e.mu.Unlock()

	if err != nil {
		return err
	}
	e.publish(s)
	return nil
}

// unmute clears the seek mute unless a later seek or load took over.
func (e *BeepEngine) unmute(vol *effects.Volume, seek uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.volume != vol || seek != e.seekGen {
		return
	}
	speaker.Lock()
	e.volume.Silent = false
	speaker.Unlock()
}

// Close stops playback and releases the loaded source.
func (e *BeepEngine) Close() error {
	e.closeOnce.Do(func() {
		close(e.closed)
		e.wg.Wait()

		e.mu.Lock()
		e.unloadLocked()
		e.isClosed = true
		e.mu.Unlock()
	})
	return nil
}

func (e *BeepEngine) tick() {
	defer e.wg.Done()
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.closed:
			return
		case <-ticker.C:
			e.mu.Lock()
			playing := e.state == Playing
			var s Status
			if playing {
				s = e.statusLocked()
			}
			e.mu.Unlock()
			if playing {
				e.publish(s)
			}
		}
	}
}

// publish sends a position report, dropping it if the consumer is behind.
func (e *BeepEngine) publish(s Status) {
	select {
	case e.events <- s:
	default:
	}
}

func (e *BeepEngine) checkLocked() error {
	if e.isClosed {
		return ErrClosed
	}
	if e.streamer == nil {
		return ErrNotLoaded
	}
	return nil
}

func (e *BeepEngine) statusLocked() Status {
	if e.streamer == nil {
		return Status{}
	}
	speaker.Lock()
	pos, length := e.streamer.Position(), e.streamer.Len()
	speaker.Unlock()
	return Status{
		Position: e.format.SampleRate.D(pos),
		Duration: e.format.SampleRate.D(length),
		Playing:  e.state == Playing,
		Loaded:   true,
	}
}

func (e *BeepEngine) isClosing() bool {
	select {
	case <-e.closed:
		return true
	default:
		return false
	}
}
