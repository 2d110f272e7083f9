package codec

import (
	"fmt"
	"os"
	"time"

	"github.com/runoshun/tasktrack/internal/domain"
)

// Files implements domain.TaskFiles, picking the codec from the file extension.
type Files struct{}

// Read decodes the task array stored at path.
func (Files) Read(path string, now time.Time) ([]*domain.Task, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tasks, err := ForPath(path).Decode(content, now)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return tasks, nil
}

// Write encodes tasks and replaces the file at path.
func (Files) Write(path string, tasks []*domain.Task) error {
	content, err := ForPath(path).Encode(tasks)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

var _ domain.TaskFiles = Files{}
