package domain

import "time"

// TaskGateway persists the whole task collection to the save file.
type TaskGateway interface {
	// Load reads all tasks. A missing save file yields (nil, nil).
	Load() ([]*Task, error)

	// Save replaces the save file contents with tasks.
	Save(tasks []*Task) error

	// Path returns the save file location.
	Path() string
}

// TaskCodec encodes and decodes task arrays for import/export files.
type TaskCodec interface {
	// Decode parses a task array. Records missing createdAt get now.
	Decode(data []byte, now time.Time) ([]*Task, error)

	// Encode renders tasks as a pretty-printed document.
	Encode(tasks []*Task) ([]byte, error)
}

// TaskFiles reads and writes task arrays in import/export files.
// The format is chosen by the implementation, typically from the file extension.
type TaskFiles interface {
	// Read decodes the task array stored at path.
	Read(path string, now time.Time) ([]*Task, error)

	// Write encodes tasks and replaces the file at path.
	Write(path string, tasks []*Task) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + local).
	Load() (*Config, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates config files.
type ConfigManager interface {
	// GlobalConfigInfo returns the global config file.
	GlobalConfigInfo() ConfigInfo

	// LocalConfigInfo returns the config file in the working directory.
	LocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the commented template to the global config path.
	InitGlobalConfig(cfg *Config) error

	// InitLocalConfig writes the commented template to the local config path.
	InitLocalConfig(cfg *Config) error
}

// Logger writes diagnostic messages. taskID 0 means not task-specific.
type Logger interface {
	Info(taskID int, category, msg string)
	Debug(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Info(int, string, string)  {}
func (NopLogger) Debug(int, string, string) {}
func (NopLogger) Warn(int, string, string)  {}
func (NopLogger) Error(int, string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
