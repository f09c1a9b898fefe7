// Package board holds the session state for one board: in-memory mirrors
// of the remote tasks and people tables, the mutations that patch them,
// and the derived views the renderers consume.
//
// Mutations are two-phase: the remote store is written first, and the
// local mirror is patched only after the remote call succeeds. A failed
// remote call leaves the mirror untouched and returns the error to the
// caller.
package board

import (
	"context"

	"taskboard/internal/config"
	"taskboard/internal/service"
)

// Board mirrors the remote tasks and people tables for one session.
// The mirrors are read-through caches: replaced wholesale on Load and
// patched incrementally on successful mutation. Not safe for concurrent
// use; one logical user drives one session.
type Board struct {
	store   service.Store
	project config.Project

	tasks  []service.Task
	people []service.Person
}

// New creates a Board over the given remote store.
func New(store service.Store, project config.Project) *Board {
	return &Board{store: store, project: project}
}

// Project returns the configured project schedule.
func (b *Board) Project() config.Project {
	return b.project
}

// Tasks returns the task mirror in store order (creation time ascending).
func (b *Board) Tasks() []service.Task {
	return b.tasks
}

// People returns the people mirror in name order.
func (b *Board) People() []service.Person {
	return b.people
}

// Task finds a task by id. Ids are unique, so this is first-match.
func (b *Board) Task(id string) (service.Task, bool) {
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// Load replaces the task mirror with all remote tasks ordered by creation
// time ascending. On failure the mirror keeps its previous value.
func (b *Board) Load(ctx context.Context) error {
	tasks, err := b.store.ListTasks(ctx)
	if err != nil {
		return err
	}
	b.tasks = tasks
	return nil
}

// LoadPeople replaces the people mirror with all remote people ordered by
// name ascending. On failure the mirror keeps its previous value.
func (b *Board) LoadPeople(ctx context.Context) error {
	people, err := b.store.ListPeople(ctx)
	if err != nil {
		return err
	}
	b.people = people
	return nil
}

// UpdateStatus writes the new status to the remote store, then patches
// the matching mirror entry's status field. All other fields are left
// unchanged. On failure the mirror is untouched.
func (b *Board) UpdateStatus(ctx context.Context, id, status string) error {
	if err := b.store.UpdateTaskStatus(ctx, id, status); err != nil {
		return err
	}
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks[i].Status = status
			break
		}
	}
	return nil
}

// Create normalizes the draft into a task row, inserts it remotely and
// appends it to the mirror on success. A draft with a blank title is a
// no-op: no remote call, no mirror change, nil task returned.
func (b *Board) Create(ctx context.Context, d Draft) (*service.Task, error) {
	if d.Blank() {
		return nil, nil
	}
	task := d.Build(nowMillis())
	if err := b.store.InsertTask(ctx, task); err != nil {
		return nil, err
	}
	b.tasks = append(b.tasks, task)
	return &task, nil
}

// TasksOnDate returns the tasks whose due date equals date, preserving
// mirror order.
func (b *Board) TasksOnDate(date string) []service.Task {
	var out []service.Task
	for _, t := range b.tasks {
		if t.DueDate != nil && *t.DueDate == date {
			out = append(out, t)
		}
	}
	return out
}

// TasksForPerson returns the tasks that reference name as an executor or
// a target, preserving mirror order. The membership test is inclusive OR.
func (b *Board) TasksForPerson(name string) []service.Task {
	var out []service.Task
	for _, t := range b.tasks {
		if containsName(t.Executor, name) || containsName(t.Target, name) {
			out = append(out, t)
		}
	}
	return out
}

// RiskyTasks returns the tasks carrying a non-empty risks field, in
// mirror order.
func (b *Board) RiskyTasks() []service.Task {
	var out []service.Task
	for _, t := range b.tasks {
		if t.Risks != nil && *t.Risks != "" {
			out = append(out, t)
		}
	}
	return out
}

// CountByStatus returns the number of tasks with the given status.
func (b *Board) CountByStatus(status string) int {
	n := 0
	for _, t := range b.tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}

// CountHighPriority returns the number of priority-1 tasks.
func (b *Board) CountHighPriority() int {
	n := 0
	for _, t := range b.tasks {
		if t.Priority == 1 {
			n++
		}
	}
	return n
}

// Recommendation returns the canned guidance string for a task, using
// the project's first configured date as the urgency gate.
func (b *Board) Recommendation(t service.Task) string {
	first := ""
	if len(b.project.Dates) > 0 {
		first = b.project.Dates[0]
	}
	return Recommend(t, first)
}

// containsName matches by exact, case-sensitive string equality.
func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
