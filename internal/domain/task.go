// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// Task represents one unit of trackable work.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time  // Set once at construction
	CompletedAt *time.Time // Set when status enters COMPLETED (nil otherwise)
	DueDate     *Date      // Optional due date (nil = none)
	Title       string     // Title (required, trimmed)
	Description string     // Description (optional, trimmed)
	Priority    Priority   // Priority (default MEDIUM)
	Status      Status     // Current status (default TODO)
	ID          int        // Assigned by the service (0 = unsaved)
}

// NewTask creates an unsaved task with default priority and status.
func NewTask(title, description string, now time.Time) *Task {
	return &Task{
		Title:       title,
		Description: description,
		Priority:    PriorityMedium,
		Status:      StatusTodo,
		CreatedAt:   now,
	}
}

// SetStatus changes the status and maintains CompletedAt.
// Entering COMPLETED stamps CompletedAt with now; staying in COMPLETED keeps the
// original stamp; any other status clears it.
func (t *Task) SetStatus(status Status, now time.Time) {
	old := t.Status
	t.Status = status

	if status == StatusCompleted {
		if old != StatusCompleted {
			completed := now
			t.CompletedAt = &completed
		}
		return
	}
	t.CompletedAt = nil
}

// IsCompleted returns true if the task is in the COMPLETED status.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// HasDueDate returns true if a due date is set.
func (t *Task) HasDueDate() bool {
	return t.DueDate != nil
}

// IsOverdue returns true if the due date is before today and the task is not completed.
func (t *Task) IsOverdue(today Date) bool {
	if t.DueDate == nil || t.IsCompleted() {
		return false
	}
	return t.DueDate.Before(today)
}

// IsDueToday returns true if the task is due today and not completed.
func (t *Task) IsDueToday(today Date) bool {
	if t.DueDate == nil || t.IsCompleted() {
		return false
	}
	return t.DueDate.Equal(today)
}

// IsDueWithin returns true if the due date falls in [today, today+days).
// Status is not considered.
func (t *Task) IsDueWithin(today Date, days int) bool {
	if t.DueDate == nil {
		return false
	}
	return !t.DueDate.Before(today) && t.DueDate.Before(today.AddDays(days))
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	if t.CompletedAt != nil {
		completed := *t.CompletedAt
		c.CompletedAt = &completed
	}
	return &c
}

// String returns a short description used in logs.
func (t *Task) String() string {
	due := "none"
	if t.DueDate != nil {
		due = t.DueDate.String()
	}
	return fmt.Sprintf("Task{id=%d, title=%q, priority=%s, status=%s, due=%s}",
		t.ID, t.Title, t.Priority, t.Status, due)
}
