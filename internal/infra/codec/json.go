package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/runoshun/tasktrack/internal/domain"
)

// JSON reads and writes tasks as a pretty-printed JSON array.
type JSON struct{}

// Encode renders tasks with two-space indentation and a trailing newline.
func (JSON) Encode(tasks []*domain.Task) ([]byte, error) {
	content, err := json.MarshalIndent(toRecords(tasks), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return append(content, '\n'), nil
}

// Decode parses a JSON array of task records.
// A null document or a null element is rejected.
func (JSON) Decode(data []byte, now time.Time) ([]*domain.Task, error) {
	var records []*record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("parse tasks: %w", domain.ErrNotTaskArray)
	}
	return fromRecords(records, now)
}

var _ domain.TaskCodec = JSON{}
