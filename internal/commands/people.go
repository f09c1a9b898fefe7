package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/output"
)

func init() {
	Register(&PeopleCmd{})
}

// PeopleCmd implements the people command: tasks grouped by person.
// With no argument it lists each person with their related task count;
// with a name argument it expands that person's tasks, annotated with
// the person's role on each task.
type PeopleCmd struct{}

func (c *PeopleCmd) Name() string      { return "people" }
func (c *PeopleCmd) Aliases() []string { return nil }
func (c *PeopleCmd) Synopsis() string  { return "Show tasks by person" }
func (c *PeopleCmd) Usage() string     { return "taskboard people [<name>]" }
func (c *PeopleCmd) NeedsStore() bool  { return true }

func (c *PeopleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PeopleCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	if err := b.Load(ctx); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	if err := b.LoadPeople(ctx); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if len(args) == 0 {
		people := b.People()
		for _, p := range people {
			fmt.Fprintf(out, "%s  (%d tasks)\n", p.Name, len(b.TasksForPerson(p.Name)))
		}
		if len(people) == 0 && !cfg.Quiet {
			fmt.Fprintln(out, "no people")
		}
		return exitcode.Success
	}

	name := strings.Join(args, " ")
	if !knownPerson(b, name) {
		fmt.Fprintf(errOut, "error: unknown person: %s\n", name)
		return exitcode.UserError
	}

	output.FormatSectionHeader(out, name)
	tasks := b.TasksForPerson(name)
	for i, task := range tasks {
		output.FormatTask(out, i+1, task)
		role := "Target"
		if containsName(task.Executor, name) {
			role = "Executor"
		}
		fmt.Fprintf(out, "      role: %s | due: %s\n", role, output.Text(task.DueDate))
	}
	if len(tasks) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks")
	}
	return exitcode.Success
}

func knownPerson(b *board.Board, name string) bool {
	for _, p := range b.People() {
		if p.Name == name {
			return true
		}
	}
	return false
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
