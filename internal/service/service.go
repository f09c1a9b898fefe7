// Package service defines the backend-agnostic interface for the remote
// task store.
package service

import "context"

// Store defines the interface for remote data store operations.
// All remote calls go through this interface; commands and the board
// never import a backend package directly.
type Store interface {
	// ListTasks returns all tasks ordered by creation time ascending.
	ListTasks(ctx context.Context) ([]Task, error)

	// ListPeople returns all people ordered by name ascending.
	ListPeople(ctx context.Context) ([]Person, error)

	// UpdateTaskStatus sets the status (and updated_at) of the task
	// matching id. Task ids are unique, so at most one row changes.
	UpdateTaskStatus(ctx context.Context, id, status string) error

	// InsertTask appends a new task row to the store.
	InsertTask(ctx context.Context, task Task) error
}
