// Package usecase contains application use cases.
package usecase

import (
	"fmt"
	"time"

	"github.com/runoshun/tasktrack/internal/domain"
)

// TaskService is the façade over the in-memory task store.
// Every mutation is persisted through the gateway immediately and then
// announced to subscribers. Persist failures are logged, not returned;
// the in-memory list stays authoritative and PersistErr reports the failure.
//
// TaskService is not safe for concurrent use.
// Fields are ordered to minimize memory padding.
type TaskService struct {
	gateway     domain.TaskGateway
	files       domain.TaskFiles
	clock       domain.Clock
	logger      domain.Logger
	persistErr  error
	store       *domain.TaskList
	subscribers []subscriber
	nextID      int
	nextSubID   int
}

// NewTaskService creates the service and loads the save file.
// A load failure is logged and the service starts empty.
func NewTaskService(gateway domain.TaskGateway, files domain.TaskFiles, clock domain.Clock, logger domain.Logger) *TaskService {
	if clock == nil {
		clock = domain.RealClock{}
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	s := &TaskService{
		gateway: gateway,
		files:   files,
		clock:   clock,
		logger:  logger,
		store:   domain.NewTaskList(),
		nextID:  1,
	}

	if _, err := s.reload(); err != nil {
		s.logger.Warn(0, "store", fmt.Sprintf("load %s failed, starting empty: %v", gateway.Path(), err))
	}
	return s
}

// Path returns the save file location.
func (s *TaskService) Path() string {
	return s.gateway.Path()
}

// Now returns the service clock's current time.
func (s *TaskService) Now() time.Time {
	return s.clock.Now()
}

// Today returns the current local date.
func (s *TaskService) Today() domain.Date {
	return domain.Today(s.clock.Now())
}

// Tasks returns copies of all tasks in store order.
func (s *TaskService) Tasks() []*domain.Task {
	return s.filter(func(*domain.Task) bool { return true })
}

// Len returns the number of stored tasks.
func (s *TaskService) Len() int {
	return s.store.Len()
}

// FindByID returns a copy of the first task with the given id.
func (s *TaskService) FindByID(id int) (*domain.Task, bool) {
	t := s.store.Find(id)
	if t == nil {
		return nil, false
	}
	return t.Clone(), true
}

// NextID returns the id the next added task will receive.
func (s *TaskService) NextID() int {
	return s.nextID
}

// persist writes the whole store. Errors are logged and kept for PersistErr.
func (s *TaskService) persist() {
	if err := s.Save(); err != nil {
		s.logger.Error(0, "store", err.Error())
	}
}

// PersistErr returns the error of the most recent save, or nil if it succeeded.
// Mutations never return persist failures; one-shot callers check this before exiting.
func (s *TaskService) PersistErr() error {
	return s.persistErr
}

// reload replaces the store with the gateway's contents.
// On error the current store is left untouched.
func (s *TaskService) reload() (int, error) {
	tasks, err := s.gateway.Load()
	if err != nil {
		return 0, err
	}

	store := domain.NewTaskList(tasks...)
	s.store = store
	if next := store.MaxID() + 1; next > s.nextID {
		s.nextID = next
	}
	return store.Len(), nil
}

func (s *TaskService) filter(keep func(*domain.Task) bool) []*domain.Task {
	out := make([]*domain.Task, 0, s.store.Len())
	s.store.Each(func(t *domain.Task) {
		if keep(t) {
			out = append(out, t.Clone())
		}
	})
	return out
}
