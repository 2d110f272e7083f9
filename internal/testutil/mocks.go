// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/tasktrack/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockTaskGateway is an in-memory test double for domain.TaskGateway.
// Saved holds deep copies of the last saved list.
// Fields are ordered to minimize memory padding.
type MockTaskGateway struct {
	LoadErr   error
	SaveErr   error
	Tasks     []*domain.Task
	Saved     []*domain.Task
	FilePath  string
	SaveCalls int
	LoadCalls int
}

// NewMockTaskGateway creates a gateway whose Load returns copies of tasks.
func NewMockTaskGateway(tasks ...*domain.Task) *MockTaskGateway {
	return &MockTaskGateway{Tasks: tasks, FilePath: "tasks.json"}
}

// Load returns copies of Tasks, or LoadErr.
func (m *MockTaskGateway) Load() ([]*domain.Task, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneAll(m.Tasks), nil
}

// Save records a copy of tasks, or returns SaveErr.
func (m *MockTaskGateway) Save(tasks []*domain.Task) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = cloneAll(tasks)
	m.Tasks = cloneAll(tasks)
	return nil
}

// Path returns FilePath.
func (m *MockTaskGateway) Path() string {
	return m.FilePath
}

func cloneAll(tasks []*domain.Task) []*domain.Task {
	if tasks == nil {
		return nil
	}
	out := make([]*domain.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// LogEntry is one message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int
}

// String formats the entry like the file logger does.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%d] [%s] %s", e.Level, e.TaskID, e.Category, e.Msg)
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level string, taskID int, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an INFO entry.
func (m *MockLogger) Info(taskID int, category, msg string) { m.record("INFO", taskID, category, msg) }

// Debug records a DEBUG entry.
func (m *MockLogger) Debug(taskID int, category, msg string) { m.record("DEBUG", taskID, category, msg) }

// Warn records a WARN entry.
func (m *MockLogger) Warn(taskID int, category, msg string) { m.record("WARN", taskID, category, msg) }

// Error records an ERROR entry.
func (m *MockLogger) Error(taskID int, category, msg string) { m.record("ERROR", taskID, category, msg) }

// HasLevel reports whether any entry was recorded at level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns Config (or defaults when nil), or LoadErr.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

var (
	_ domain.Clock        = (*MockClock)(nil)
	_ domain.TaskGateway  = (*MockTaskGateway)(nil)
	_ domain.Logger       = (*MockLogger)(nil)
	_ domain.ConfigLoader = (*MockConfigLoader)(nil)
)
