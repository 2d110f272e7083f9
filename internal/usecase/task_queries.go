package usecase

import (
	"strings"

	"github.com/runoshun/tasktrack/internal/domain"
)

// daysInWeek is the width of the DueThisWeek window.
const daysInWeek = 7

// ByStatus returns copies of the tasks with status, in store order.
func (s *TaskService) ByStatus(status domain.Status) []*domain.Task {
	return s.filter(func(t *domain.Task) bool { return t.Status == status })
}

// ByPriority returns copies of the tasks with priority, in store order.
func (s *TaskService) ByPriority(priority domain.Priority) []*domain.Task {
	return s.filter(func(t *domain.Task) bool { return t.Priority == priority })
}

// Overdue returns unfinished tasks due before today.
func (s *TaskService) Overdue() []*domain.Task {
	today := s.Today()
	return s.filter(func(t *domain.Task) bool { return t.IsOverdue(today) })
}

// DueToday returns unfinished tasks due today.
func (s *TaskService) DueToday() []*domain.Task {
	today := s.Today()
	return s.filter(func(t *domain.Task) bool { return t.IsDueToday(today) })
}

// DueThisWeek returns tasks of any status due in [today, today+7).
func (s *TaskService) DueThisWeek() []*domain.Task {
	today := s.Today()
	return s.filter(func(t *domain.Task) bool { return t.IsDueWithin(today, daysInWeek) })
}

// InView returns copies of the tasks matching view, in store order.
func (s *TaskService) InView(view domain.View) []*domain.Task {
	today := s.Today()
	return s.filter(func(t *domain.Task) bool { return view.Matches(t, today) })
}

// Search returns tasks whose title or description contains query, ignoring case.
// A blank query matches every task.
func (s *TaskService) Search(query string) []*domain.Task {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.Tasks()
	}
	return s.filter(func(t *domain.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q)
	})
}

// CountByStatus returns the number of tasks with status.
func (s *TaskService) CountByStatus(status domain.Status) int {
	n := 0
	s.store.Each(func(t *domain.Task) {
		if t.Status == status {
			n++
		}
	})
	return n
}

// Sort reorders the store in place by criterion (case-insensitive).
// Unknown criteria sort by title. The order is not persisted until the next mutation.
func (s *TaskService) Sort(criterion string) domain.SortCriterion {
	c := domain.ParseSortCriterion(criterion)
	s.store.SortStable(c.Compare())

	s.logger.Debug(0, "task", "sorted by "+string(c))
	s.notify(Event{Kind: EventSorted, Count: s.store.Len()})
	return c
}
