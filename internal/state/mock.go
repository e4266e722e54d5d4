package state

import (
	"errors"
	"sync"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	typed

	mu         sync.Mutex
	values     map[string]string
	queueState *QueueState
	saves      int
	failWrites bool
	closed     bool
}

// NewMock creates a new mock state manager with the built-in defaults.
func NewMock() *Mock {
	return NewMockWithDefaults(DefaultDefaults())
}

// NewMockWithDefaults creates a mock returning defaults for unset keys.
func NewMockWithDefaults(defaults Defaults) *Mock {
	m := &Mock{values: make(map[string]string)}
	m.typed = typed{kv: m, defaults: defaults.normalized()}
	return m
}

var errMockWrite = errors.New("mock: write failed")

func (m *Mock) getValue(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Mock) setValue(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errMockWrite
	}
	m.values[key] = value
	return nil
}

func (m *Mock) SaveQueue(state QueueState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queueState = &state
	m.saves++
	return nil
}

// ScheduleQueueSave saves immediately.
func (m *Mock) ScheduleQueueSave(state QueueState) {
	_ = m.SaveQueue(state)
}

func (m *Mock) Flush() error { return nil }

func (m *Mock) GetQueue() (*QueueState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queueState, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetQueue(state *QueueState) { m.queueState = state }

func (m *Mock) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = fail
}

func (m *Mock) IsClosed() bool { return m.closed }
