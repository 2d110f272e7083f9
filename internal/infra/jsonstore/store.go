// Package jsonstore provides the JSON save-file implementation of domain.TaskGateway.
package jsonstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/tasktrack/internal/domain"
	"github.com/runoshun/tasktrack/internal/infra/codec"
)

// Store implements domain.TaskGateway using a single JSON file.
// Reads take a shared flock on path+".lock" and writes an exclusive one,
// so a CLI command and a running TUI do not interleave.
type Store struct {
	clock    domain.Clock
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string, clock domain.Clock) *Store {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Store{path: path, lockPath: path + ".lock", clock: clock}
}

// Path returns the save file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads all tasks from the save file.
// A missing file is not an error and yields no tasks.
func (s *Store) Load() ([]*domain.Task, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var content []byte
	err := s.withLock(syscall.LOCK_SH, func() error {
		var readErr error
		content, readErr = os.ReadFile(s.path)
		return readErr
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	tasks, err := codec.JSON{}.Decode(content, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", s.path, err)
	}
	return tasks, nil
}

// Save replaces the save file contents with tasks.
func (s *Store) Save(tasks []*domain.Task) error {
	content, err := codec.JSON{}.Encode(tasks)
	if err != nil {
		return err
	}
	return s.withLock(syscall.LOCK_EX, func() error {
		return WriteFile(s.path, content)
	})
}

func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(s.lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// WriteFile writes content to path through a temp file and rename,
// creating the parent directory if needed.
func WriteFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements TaskGateway.
var _ domain.TaskGateway = (*Store)(nil)
