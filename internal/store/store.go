// Package store persists the task collection to a single flat file.
package store

import "ltask/internal/task"

// Store loads and saves the full task collection. Commands load the
// whole collection at the start of every invocation and write the whole
// collection back after a mutation; there is no partial update.
type Store interface {
	// Load reads the persisted collection. A missing file is not an
	// error and yields an empty collection, as does an unparseable
	// file. Any other read failure is returned.
	Load() ([]task.Task, error)

	// Save replaces the persisted collection with tasks.
	Save(tasks []task.Task) error
}
