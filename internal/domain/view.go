package domain

import "strings"

// View is a named filter over the task list.
type View string

const (
	ViewAll        View = "all"
	ViewTodo       View = "todo"
	ViewInProgress View = "in_progress"
	ViewCompleted  View = "completed"
	ViewOverdue    View = "overdue"
	ViewToday      View = "today"
	ViewWeek       View = "week"
)

// AllViews returns the views in cycling order.
func AllViews() []View {
	return []View{
		ViewAll,
		ViewTodo,
		ViewInProgress,
		ViewCompleted,
		ViewOverdue,
		ViewToday,
		ViewWeek,
	}
}

// ParseView maps a name to a view (case-insensitive). Unknown names give ViewAll.
func ParseView(s string) View {
	v := View(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range AllViews() {
		if v == known {
			return v
		}
	}
	return ViewAll
}

// Display returns a human-readable label.
func (v View) Display() string {
	switch v {
	case ViewTodo:
		return StatusTodo.Display()
	case ViewInProgress:
		return StatusInProgress.Display()
	case ViewCompleted:
		return StatusCompleted.Display()
	case ViewOverdue:
		return "Overdue"
	case ViewToday:
		return "Due today"
	case ViewWeek:
		return "This week"
	default:
		return "All tasks"
	}
}

// Next returns the view after v, wrapping around.
func (v View) Next() View {
	all := AllViews()
	for i, known := range all {
		if known == v {
			return all[(i+1)%len(all)]
		}
	}
	return ViewAll
}

// Matches reports whether task belongs to the view on the given day.
func (v View) Matches(task *Task, today Date) bool {
	switch v {
	case ViewTodo:
		return task.Status == StatusTodo
	case ViewInProgress:
		return task.Status == StatusInProgress
	case ViewCompleted:
		return task.Status == StatusCompleted
	case ViewOverdue:
		return task.IsOverdue(today)
	case ViewToday:
		return task.IsDueToday(today)
	case ViewWeek:
		return task.IsDueWithin(today, 7)
	default:
		return true
	}
}
