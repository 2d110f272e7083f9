package usecase

import "fmt"

// Import appends every task found in the file at path, assigning fresh ids.
// The store is left untouched if the file cannot be read or decoded.
func (s *TaskService) Import(path string) (int, error) {
	tasks, err := s.files.Read(path, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("import tasks: %w", err)
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	for _, t := range tasks {
		t.ID = s.nextID
		s.nextID++
		s.store.Append(t)
	}
	s.persist()

	s.logger.Info(0, "import", fmt.Sprintf("imported %d tasks from %s", len(tasks), path))
	s.notify(Event{Kind: EventImported, Count: len(tasks)})
	return len(tasks), nil
}

// Export writes the whole store to path.
func (s *TaskService) Export(path string) error {
	if err := s.files.Write(path, s.store.All()); err != nil {
		return fmt.Errorf("export tasks: %w", err)
	}
	s.logger.Info(0, "export", fmt.Sprintf("exported %d tasks to %s", s.store.Len(), path))
	return nil
}

// Save writes the store to the save file.
func (s *TaskService) Save() error {
	s.persistErr = nil
	if err := s.gateway.Save(s.store.All()); err != nil {
		s.persistErr = fmt.Errorf("save %s: %w", s.gateway.Path(), err)
	}
	return s.persistErr
}

// Load replaces the store with the save file contents.
// On error the current store is kept. The id counter never moves backwards.
func (s *TaskService) Load() error {
	n, err := s.reload()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	s.logger.Info(0, "store", fmt.Sprintf("loaded %d tasks from %s", n, s.gateway.Path()))
	s.notify(Event{Kind: EventLoaded, Count: n})
	return nil
}
