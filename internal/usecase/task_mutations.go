package usecase

import (
	"fmt"

	"github.com/runoshun/tasktrack/internal/domain"
)

// Add assigns the next id to task, stores a copy of it and persists.
// The id is also written back to task. A nil task is ignored and yields 0.
func (s *TaskService) Add(task *domain.Task) int {
	if task == nil {
		return 0
	}

	task.ID = s.nextID
	s.nextID++
	s.store.Append(task.Clone())
	s.persist()

	s.logger.Info(task.ID, "task", fmt.Sprintf("created: %q", task.Title))
	s.notify(Event{Kind: EventAdded, TaskID: task.ID})
	return task.ID
}

// Update replaces the stored task having task's id with a copy of task.
// Nil tasks and unknown ids are ignored.
func (s *TaskService) Update(task *domain.Task) {
	if task == nil || !s.store.Replace(task.Clone()) {
		return
	}
	s.persist()

	s.logger.Info(task.ID, "task", fmt.Sprintf("updated: %q", task.Title))
	s.notify(Event{Kind: EventUpdated, TaskID: task.ID})
}

// Delete removes the stored task having task's id.
// Nil tasks and unknown ids are ignored.
func (s *TaskService) Delete(task *domain.Task) {
	if task == nil {
		return
	}
	s.DeleteByID(task.ID)
}

// DeleteByID removes the first stored task with id. Unknown ids are ignored.
func (s *TaskService) DeleteByID(id int) {
	if !s.store.RemoveByID(id) {
		return
	}
	s.persist()

	s.logger.Info(id, "task", "deleted")
	s.notify(Event{Kind: EventDeleted, TaskID: id})
}

// ClearAll removes every task and persists the empty list.
// The id counter is not reset.
func (s *TaskService) ClearAll() {
	count := s.store.Len()
	s.store.Clear()
	s.persist()

	s.logger.Info(0, "task", fmt.Sprintf("cleared %d tasks", count))
	s.notify(Event{Kind: EventCleared, Count: count})
}

// Create validates draft and adds a new task built from it.
func (s *TaskService) Create(draft domain.TaskDraft) (*domain.Task, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	task, err := domain.NewTaskFromDraft(draft, s.clock.Now())
	if err != nil {
		return nil, err
	}
	s.Add(task)
	return task.Clone(), nil
}

// Edit validates draft and applies it to the task with id.
func (s *TaskService) Edit(id int, draft domain.TaskDraft) (*domain.Task, error) {
	task, ok := s.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("task #%d: %w", id, domain.ErrTaskNotFound)
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := draft.Apply(task, s.clock.Now()); err != nil {
		return nil, err
	}
	s.Update(task)
	return task, nil
}

// SetStatus moves the task with id to status, maintaining its completion time.
func (s *TaskService) SetStatus(id int, status domain.Status) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	task, ok := s.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("task #%d: %w", id, domain.ErrTaskNotFound)
	}
	task.SetStatus(status, s.clock.Now())
	s.Update(task)
	return task, nil
}
