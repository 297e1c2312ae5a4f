package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"ltask/internal/task"
)

// FileStore implements Store over one JSON file holding a pretty-printed
// array of task records. The whole file is rewritten on every Save; there
// is no temp-file-then-rename step, so a crash mid-write can leave the
// file unparseable, which the next Load treats as an empty collection.
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore creates a store backed by the file at path. The file is
// not touched until Load or Save. logger may be nil.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store. Unparseable content is downgraded to an empty
// collection; the event is only visible at debug level.
func (s *FileStore) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.logger.Debug("task file is not valid JSON, treating as empty", "path", s.path, "err", err)
		return nil, nil
	}
	return tasks, nil
}

// Save implements Store.
func (s *FileStore) Save(tasks []task.Task) error {
	if tasks == nil {
		// An empty collection is encoded as [] rather than null.
		tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
