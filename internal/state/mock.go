// internal/state/mock.go
package state

import (
	"context"
	"sync"
)

// Mock is an in-memory Store for testing.
type Mock struct {
	mu      sync.Mutex
	data    map[string]string
	writes  []string
	getErr  error
	setErr  error
	closed  bool
	blockCh chan struct{}
}

// NewMock creates a new mock store for testing.
func NewMock() *Mock {
	return &Mock{data: make(map[string]string)}
}

func (m *Mock) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Mock) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	block := m.blockCh
	m.mu.Unlock()
	if block != nil {
		<-block
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.writes = append(m.writes, value)
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

// Put seeds a value without recording a write.
func (m *Mock) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

// Value returns the stored value for key.
func (m *Mock) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

// Writes returns every value passed to a successful Set, in order.
func (m *Mock) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.writes))
	copy(out, m.writes)
	return out
}

// SetGetError makes Get fail with err.
func (m *Mock) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// SetSetError makes Set fail with err.
func (m *Mock) SetSetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}

// Block makes Set wait until the returned function is called.
func (m *Mock) Block() (release func()) {
	ch := make(chan struct{})
	m.mu.Lock()
	m.blockCh = ch
	m.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			m.blockCh = nil
			m.mu.Unlock()
			close(ch)
		})
	}
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
