// Package testutil provides testing utilities.
package testutil

import (
	"sync"

	"ltask/internal/task"
)

// MemStore is an in-memory implementation of store.Store for testing.
type MemStore struct {
	mu    sync.RWMutex
	tasks []task.Task

	// Error injection for testing
	LoadErr error
	SaveErr error

	// SaveCount tracks how many times Save succeeded. Tests use it to
	// assert that failed operations never persist anything.
	SaveCount int
}

// NewMemStore creates a MemStore seeded with the given tasks.
func NewMemStore(tasks ...task.Task) *MemStore {
	m := &MemStore{}
	m.tasks = append(m.tasks, tasks...)
	return m
}

// Load implements store.Store.
func (m *MemStore) Load() ([]task.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]task.Task, len(m.tasks))
	copy(result, m.tasks)
	return result, nil
}

// Save implements store.Store.
func (m *MemStore) Save(tasks []task.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = make([]task.Task, len(tasks))
	copy(m.tasks, tasks)
	m.SaveCount++
	return nil
}

// Tasks returns a copy of the stored collection.
func (m *MemStore) Tasks() []task.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]task.Task, len(m.tasks))
	copy(result, m.tasks)
	return result
}
