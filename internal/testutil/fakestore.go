// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"taskboard/internal/service"
)

// ErrNotFound is returned when a row is not found.
var ErrNotFound = errors.New("not found")

// FakeStore is an in-memory implementation of service.Store for testing.
type FakeStore struct {
	mu     sync.RWMutex
	tasks  []service.Task
	people []service.Person

	// Error injection for testing
	ListTasksErr        error
	ListPeopleErr       error
	UpdateTaskStatusErr error
	InsertTaskErr       error

	// Call counters
	ListTasksCalls        int
	ListPeopleCalls       int
	UpdateTaskStatusCalls int
	InsertTaskCalls       int
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// AddTask seeds a task row.
func (f *FakeStore) AddTask(t service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, t)
}

// AddPerson seeds a person row.
func (f *FakeStore) AddPerson(id int, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.people = append(f.people, service.Person{ID: id, Name: name})
}

// Tasks returns a copy of the stored task rows.
func (f *FakeStore) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// ListTasks implements service.Store.
func (f *FakeStore) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	f.ListTasksCalls++
	f.mu.Unlock()
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Tasks(), nil
}

// ListPeople implements service.Store.
func (f *FakeStore) ListPeople(ctx context.Context) ([]service.Person, error) {
	f.mu.Lock()
	f.ListPeopleCalls++
	f.mu.Unlock()
	if f.ListPeopleErr != nil {
		return nil, f.ListPeopleErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Person, len(f.people))
	copy(out, f.people)
	return out, nil
}

// UpdateTaskStatus implements service.Store.
func (f *FakeStore) UpdateTaskStatus(ctx context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateTaskStatusCalls++
	if f.UpdateTaskStatusErr != nil {
		return f.UpdateTaskStatusErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// InsertTask implements service.Store.
func (f *FakeStore) InsertTask(ctx context.Context, task service.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InsertTaskCalls++
	if f.InsertTaskErr != nil {
		return f.InsertTaskErr
	}
	f.tasks = append(f.tasks, task)
	return nil
}
