package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"ticklist/internal/task"
)

// Store owns the ordered task list and its backing file. All mutation goes
// through Add and Remove, each of which rewrites the file in full. The
// in-memory list is authoritative: a failed save leaves memory ahead of
// disk until a later save succeeds.
type Store struct {
	path  string
	tasks []task.Task
}

// NewStore builds a store backed by the file at path. Call Load before use.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file into memory. A missing file is an empty list,
// not an error. An unreadable file also yields an empty list, with the
// error returned so the caller can warn the user and carry on.
func (s *Store) Load() error {
	s.tasks = nil
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("storage: read %s: %w", s.path, err)
	}
	s.tasks = Decode(bytes.NewReader(data))
	return nil
}

// Add appends a task to the end of storage order and saves.
func (s *Store) Add(t task.Task) error {
	s.tasks = append(s.tasks, t)
	return s.save()
}

// Remove deletes the task at the given storage index and saves, returning
// the removed task. The index must come from a sort order computed against
// the current list.
func (s *Store) Remove(index int) (task.Task, error) {
	if index < 0 || index >= len(s.tasks) {
		return task.Task{}, fmt.Errorf("storage: index %d out of range [0,%d)", index, len(s.tasks))
	}
	removed := s.tasks[index]
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	return removed, s.save()
}

// Tasks returns a copy of the list in storage order.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks held in memory.
func (s *Store) Len() int {
	return len(s.tasks)
}

// save rewrites the backing file from the in-memory list.
func (s *Store) save() error {
	var buf bytes.Buffer
	if err := Encode(&buf, s.tasks); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", s.path, err)
	}
	return nil
}
