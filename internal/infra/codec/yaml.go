package codec

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/tasktrack/internal/domain"
)

// YAML reads and writes tasks as a YAML sequence.
type YAML struct{}

// Encode renders tasks as a YAML sequence with two-space indentation.
func (YAML) Encode(tasks []*domain.Task) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toRecords(tasks)); err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a YAML sequence of task records. An empty document yields no
// tasks; a null element is rejected.
func (YAML) Decode(data []byte, now time.Time) ([]*domain.Task, error) {
	var records []*record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	return fromRecords(records, now)
}

var _ domain.TaskCodec = YAML{}
