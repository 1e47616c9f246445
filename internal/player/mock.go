package player

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Mock is a test double for Engine.
type Mock struct {
	mu          sync.Mutex
	state       State
	loaded      bool
	loadErr     error
	loadCalls   []string
	seekCalls   []time.Duration
	pauseCalls  int
	resumeCalls int
	closed      bool
	gate        chan struct{}
	events      chan Status
}

// NewMock creates a mock engine with a buffered event channel.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		events: make(chan Status, 64),
	}
}

func (m *Mock) Load(_ context.Context, uri string) error {
	m.mu.Lock()
	gate := m.gate
	m.gate = nil
	m.mu.Unlock()
	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.loadCalls = append(m.loadCalls, uri)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.loaded = true
	m.state = Playing
	return nil
}

func (m *Mock) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	if !m.loaded {
		return ErrNotLoaded
	}
	if m.state.CanPause() {
		m.state = Paused
	}
	return nil
}

func (m *Mock) Resume() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resumeCalls++
	if !m.loaded {
		return ErrNotLoaded
	}
	m.state = Playing
	return nil
}

func (m *Mock) Seek(pos time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, pos)
	if !m.loaded {
		return ErrNotLoaded
	}
	return nil
}

func (m *Mock) Events() <-chan Status { return m.events }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

// Emit delivers a status report as if the engine produced it.
func (m *Mock) Emit(s Status) { m.events <- s }

// Finish emits a Finished report for a source of the given length.
func (m *Mock) Finish(d time.Duration) {
	m.mu.Lock()
	m.state = Stopped
	m.mu.Unlock()
	m.Emit(Status{Position: d, Duration: d, Finished: true, Loaded: true})
}

// BlockLoad makes the next Load wait until release is called.
func (m *Mock) BlockLoad() (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.gate = gate
	m.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.loadCalls)
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.seekCalls)
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) ResumeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resumeCalls
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
