package domain

import (
	"cmp"
	"strings"
)

// SortCriterion names an ordering of the task list.
type SortCriterion string

const (
	SortByTitle    SortCriterion = "title"    // Case-insensitive title, A first
	SortByPriority SortCriterion = "priority" // HIGH first
	SortByDueDate  SortCriterion = "duedate"  // Earliest first, undated last
	SortByStatus   SortCriterion = "status"   // TODO, IN_PROGRESS, COMPLETED
	SortByCreated  SortCriterion = "created"  // Oldest first
)

// AllSortCriteria returns the supported criteria in display order.
func AllSortCriteria() []SortCriterion {
	return []SortCriterion{
		SortByTitle,
		SortByPriority,
		SortByDueDate,
		SortByStatus,
		SortByCreated,
	}
}

// ParseSortCriterion maps a name to a criterion (case-insensitive).
// Unknown or empty names fall back to SortByTitle.
func ParseSortCriterion(s string) SortCriterion {
	c := SortCriterion(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case SortByTitle, SortByPriority, SortByDueDate, SortByStatus, SortByCreated:
		return c
	case "due", "due_date", "due-date":
		return SortByDueDate
	}
	return SortByTitle
}

// Display returns a human-readable label.
func (c SortCriterion) Display() string {
	switch c {
	case SortByPriority:
		return "Priority"
	case SortByDueDate:
		return "Due date"
	case SortByStatus:
		return "Status"
	case SortByCreated:
		return "Created"
	default:
		return "Title"
	}
}

// Next returns the criterion after c, wrapping around.
func (c SortCriterion) Next() SortCriterion {
	all := AllSortCriteria()
	for i, v := range all {
		if v == c {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Compare returns the comparison function for the criterion.
func (c SortCriterion) Compare() func(a, b *Task) int {
	switch c {
	case SortByPriority:
		return func(a, b *Task) int {
			return cmp.Compare(b.Priority.Rank(), a.Priority.Rank())
		}
	case SortByDueDate:
		return compareDueDate
	case SortByStatus:
		return func(a, b *Task) int {
			return cmp.Compare(a.Status.Rank(), b.Status.Rank())
		}
	case SortByCreated:
		return func(a, b *Task) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	default:
		return func(a, b *Task) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	}
}

func compareDueDate(a, b *Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	default:
		return a.DueDate.Compare(*b.DueDate)
	}
}
