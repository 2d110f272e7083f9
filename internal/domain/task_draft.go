package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits enforced by the editing collaborators (CLI flags, TUI form).
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// TaskDraft holds user input for creating or editing a task before it reaches the service.
// DueDate is raw text in DateLayout; empty means no due date.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	Title       string
	Description string
	DueDate     string
	Priority    Priority
	Status      Status
}

// DraftFromTask fills a draft from an existing task for editing.
func DraftFromTask(t *Task) TaskDraft {
	d := TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
	}
	if t.DueDate != nil {
		d.DueDate = t.DueDate.String()
	}
	return d
}

// Normalize trims text fields and fills default priority and status.
func (d *TaskDraft) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.DueDate = strings.TrimSpace(d.DueDate)
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if d.Status == "" {
		d.Status = StatusTodo
	}
}

// Validate checks the draft against the field rules.
// It normalizes the draft first.
func (d *TaskDraft) Validate() error {
	d.Normalize()

	if d.Title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(d.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(d.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if !d.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if !d.Status.IsValid() {
		return ErrInvalidStatus
	}
	if d.DueDate != "" {
		if _, err := ParseDate(d.DueDate); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies the draft onto task. Status goes through SetStatus so that
// CompletedAt is maintained. The draft must be valid.
func (d TaskDraft) Apply(task *Task, now time.Time) error {
	var due *Date
	if d.DueDate != "" {
		parsed, err := ParseDate(d.DueDate)
		if err != nil {
			return err
		}
		due = &parsed
	}

	task.Title = d.Title
	task.Description = d.Description
	task.Priority = d.Priority
	task.DueDate = due
	task.SetStatus(d.Status, now)
	return nil
}

// NewTaskFromDraft builds an unsaved task from a valid draft.
func NewTaskFromDraft(d TaskDraft, now time.Time) (*Task, error) {
	task := NewTask("", "", now)
	if err := d.Apply(task, now); err != nil {
		return nil, err
	}
	return task, nil
}
