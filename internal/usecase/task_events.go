package usecase

import "slices"

// EventKind identifies what changed in the task store.
type EventKind string

// Event kinds.
const (
	EventAdded    EventKind = "added"
	EventUpdated  EventKind = "updated"
	EventDeleted  EventKind = "deleted"
	EventCleared  EventKind = "cleared"
	EventImported EventKind = "imported"
	EventSorted   EventKind = "sorted"
	EventLoaded   EventKind = "loaded"
)

// Event describes a completed change to the task store.
// TaskID is set for added, updated and deleted; Count for cleared, imported and loaded.
type Event struct {
	Kind   EventKind
	TaskID int
	Count  int
}

type subscriber struct {
	fn func(Event)
	id int
}

// Subscribe registers fn to be called synchronously after each change.
// Handlers run in subscription order. The returned function removes fn.
func (s *TaskService) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

func (s *TaskService) notify(e Event) {
	for _, sub := range slices.Clone(s.subscribers) {
		sub.fn(e)
	}
}
