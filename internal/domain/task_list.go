package domain

import "slices"

// TaskList is the insertion-ordered in-memory task collection.
// It has no indexing beyond linear scans and no knowledge of persistence.
type TaskList struct {
	tasks []*Task
}

// NewTaskList creates a list holding tasks in the given order.
func NewTaskList(tasks ...*Task) *TaskList {
	l := &TaskList{}
	for _, t := range tasks {
		l.Append(t)
	}
	return l
}

// Append adds a task at the end. Nil tasks are ignored.
func (l *TaskList) Append(task *Task) {
	if task == nil {
		return
	}
	l.tasks = append(l.tasks, task)
}

// Remove removes the first entry with the same ID as task.
// Returns false if none matched.
func (l *TaskList) Remove(task *Task) bool {
	if task == nil {
		return false
	}
	return l.RemoveByID(task.ID)
}

// RemoveByID removes the first entry with the given ID.
func (l *TaskList) RemoveByID(id int) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return true
}

// Replace swaps the first entry whose ID matches task.ID with task, keeping its position.
func (l *TaskList) Replace(task *Task) bool {
	if task == nil {
		return false
	}
	i := l.indexOf(task.ID)
	if i < 0 {
		return false
	}
	l.tasks[i] = task
	return true
}

// Find returns the first entry with the given ID, or nil.
func (l *TaskList) Find(id int) *Task {
	i := l.indexOf(id)
	if i < 0 {
		return nil
	}
	return l.tasks[i]
}

// All returns a new slice of the stored pointers in order.
func (l *TaskList) All() []*Task {
	return slices.Clone(l.tasks)
}

// Each calls fn for every task in order.
func (l *TaskList) Each(fn func(*Task)) {
	for _, t := range l.tasks {
		fn(t)
	}
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Clear removes all tasks.
func (l *TaskList) Clear() {
	l.tasks = nil
}

// MaxID returns the highest task ID, or 0 when empty.
func (l *TaskList) MaxID() int {
	maxID := 0
	for _, t := range l.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID
}

// SortStable reorders the list in place, preserving the order of equal elements.
func (l *TaskList) SortStable(cmp func(a, b *Task) int) {
	slices.SortStableFunc(l.tasks, cmp)
}

func (l *TaskList) indexOf(id int) int {
	return slices.IndexFunc(l.tasks, func(t *Task) bool {
		return t.ID == id
	})
}
