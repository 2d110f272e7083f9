// Package codec encodes and decodes task arrays as JSON or YAML documents.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/runoshun/tasktrack/internal/domain"
)

// TimestampLayout is the wire layout for createdAt and completedAt (local time, no zone).
const TimestampLayout = "2006-01-02T15:04:05"

// record is the wire representation of a task shared by both formats.
// Fields are ordered to minimize memory padding.
type record struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Priority    string `json:"priority,omitempty" yaml:"priority,omitempty"`
	Status      string `json:"status,omitempty" yaml:"status,omitempty"`
	DueDate     string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	CompletedAt string `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	ID          int    `json:"id" yaml:"id"`
}

func toRecord(t *domain.Task) record {
	r := record{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
	}
	if t.DueDate != nil {
		r.DueDate = t.DueDate.String()
	}
	if !t.CreatedAt.IsZero() {
		r.CreatedAt = formatTimestamp(t.CreatedAt)
	}
	if t.CompletedAt != nil {
		r.CompletedAt = formatTimestamp(*t.CompletedAt)
	}
	return r
}

func toRecords(tasks []*domain.Task) []record {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		records = append(records, toRecord(t))
	}
	return records
}

// toTask converts a record, applying defaults for missing priority, status and createdAt.
func (r record) toTask(now time.Time) (*domain.Task, error) {
	t := &domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    domain.PriorityMedium,
		Status:      domain.StatusTodo,
		CreatedAt:   now,
	}

	if r.Priority != "" {
		var p domain.Priority
		if err := p.UnmarshalText([]byte(r.Priority)); err != nil {
			return nil, err
		}
		t.Priority = p
	}
	if r.Status != "" {
		var s domain.Status
		if err := s.UnmarshalText([]byte(r.Status)); err != nil {
			return nil, err
		}
		t.Status = s
	}
	if r.DueDate != "" {
		d, err := domain.ParseDate(r.DueDate)
		if err != nil {
			return nil, err
		}
		t.DueDate = &d
	}
	if r.CreatedAt != "" {
		created, err := parseTimestamp(r.CreatedAt)
		if err != nil {
			return nil, err
		}
		t.CreatedAt = created
	}
	if r.CompletedAt != "" {
		completed, err := parseTimestamp(r.CompletedAt)
		if err != nil {
			return nil, err
		}
		t.CompletedAt = &completed
	}
	return t, nil
}

func fromRecords(records []*record, now time.Time) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(records))
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("record %d: %w", i, domain.ErrNotTaskArray)
		}
		t, err := r.toTask(now)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func formatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(TimestampLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, s)
}

// ForPath picks a codec by file extension: .yaml and .yml use YAML, anything else JSON.
func ForPath(path string) domain.TaskCodec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML{}
	default:
		return JSON{}
	}
}
