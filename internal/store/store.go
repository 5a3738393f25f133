package store

import (
	"context"
	"errors"
	"sync"

	"taskapi/internal/task"
)

var ErrNotFound = errors.New("task not found")

// Store holds every task for the lifetime of the process. One mutex guards
// both the slice and the id counter so concurrent creates cannot hand out
// the same id.
type Store struct {
	mu     sync.Mutex
	tasks  []task.Task
	nextID int64
}

func New() *Store {
	return &Store{nextID: 1}
}

// List returns the tasks in insertion order. The slice is a copy; callers
// cannot mutate store state through it.
func (s *Store) List(ctx context.Context) []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Get(ctx context.Context, id int64) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, ErrNotFound
}

// Create validates and trims the title, assigns the next id and appends the
// task. Ids are never reused, even after a delete.
func (s *Store) Create(ctx context.Context, title, description string, completed bool) (task.Task, error) {
	trimmed, err := task.NormalizeTitle(title)
	if err != nil {
		return task.Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := task.Task{
		ID:          s.nextID,
		Title:       trimmed,
		Description: description,
		Completed:   completed,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Update merges the patch into the task with the given id and returns the
// result. A patched title is stored verbatim; creation-time title validation
// does not apply here.
func (s *Store) Update(ctx context.Context, id int64, p task.Patch) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			p.Apply(&s.tasks[i])
			return s.tasks[i], nil
		}
	}
	return task.Task{}, ErrNotFound
}

// Delete removes the task with the given id, keeping the order of the rest.
// Deleting an absent id fails, so a second delete reports ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
