// Package postgres implements the service.Store interface over a direct
// Postgres connection, for deployments that bypass the REST surface.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/service"
)

const (
	tasksTable  = "tasks"
	peopleTable = "people"

	// QueryTimeout is the timeout for store queries.
	QueryTimeout = 5 * time.Second
)

// Store implements service.Store backed by Postgres.
type Store struct {
	pool *pgxpool.Pool
}

var _ service.Store = (*Store)(nil)

// New connects a pool for the given connection string.
func New(ctx context.Context, connString string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &Store{pool: pool}, nil
}

// NewWithPool wraps an existing pool (for testing).
func NewWithPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the tasks and people tables if they don't exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + tasksTable + ` (
    id              TEXT PRIMARY KEY,
    title           TEXT NOT NULL,
    priority        INTEGER NOT NULL DEFAULT 1,
    details         TEXT,
    executor        TEXT[] NOT NULL DEFAULT '{}',
    target          TEXT[] NOT NULL DEFAULT '{}',
    expected_result TEXT,
    due_date        TEXT,
    category        TEXT,
    risks           TEXT,
    status          TEXT NOT NULL DEFAULT 'pending',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE TABLE IF NOT EXISTS ` + peopleTable + ` (
    id   SERIAL PRIMARY KEY,
    name TEXT NOT NULL
)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// ListTasks returns all tasks ordered by creation time ascending.
func (s *Store) ListTasks(ctx context.Context) ([]service.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
SELECT id, title, priority, details, executor, target, expected_result,
       due_date, category, risks, status
FROM `+tasksTable+`
ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []service.Task
	for rows.Next() {
		var t service.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Priority, &t.Details,
			&t.Executor, &t.Target, &t.ExpectedResult,
			&t.DueDate, &t.Category, &t.Risks, &t.Status); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// ListPeople returns all people ordered by name ascending.
func (s *Store) ListPeople(ctx context.Context) ([]service.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, `SELECT id, name FROM `+peopleTable+` ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()

	var people []service.Person
	for rows.Next() {
		var p service.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return people, nil
}

// UpdateTaskStatus sets status and updated_at on the row matching id.
func (s *Store) UpdateTaskStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	tag, err := s.pool.Exec(ctx,
		`UPDATE `+tasksTable+` SET status = $1, updated_at = now() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}

// InsertTask appends a new task row.
func (s *Store) InsertTask(ctx context.Context, task service.Task) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	executor := task.Executor
	if executor == nil {
		executor = []string{}
	}
	target := task.Target
	if target == nil {
		target = []string{}
	}

	_, err := s.pool.Exec(ctx, `
INSERT INTO `+tasksTable+`
    (id, title, priority, details, executor, target, expected_result,
     due_date, category, risks, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		task.ID, task.Title, task.Priority, task.Details, executor, target,
		task.ExpectedResult, task.DueDate, task.Category, task.Risks, task.Status)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}
