package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/output"
)

func init() {
	Register(&TasksCmd{})
}

// TasksCmd implements the tasks command: the full task list.
// With a task id argument it expands that task's detail block,
// including the recommendation.
type TasksCmd struct{}

func (c *TasksCmd) Name() string      { return "tasks" }
func (c *TasksCmd) Aliases() []string { return nil }
func (c *TasksCmd) Synopsis() string  { return "List tasks" }
func (c *TasksCmd) Usage() string     { return "taskboard tasks [<task-id>]" }
func (c *TasksCmd) NeedsStore() bool  { return true }

func (c *TasksCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TasksCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintln(errOut, "error: at most one task id expected")
		return exitcode.UserError
	}

	if err := b.Load(ctx); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if len(args) == 1 {
		task, ok := b.Task(args[0])
		if !ok {
			fmt.Fprintf(errOut, "error: task not found: %s\n", args[0])
			return exitcode.UserError
		}
		output.FormatTask(out, 1, task)
		output.FormatTaskDetail(out, task, b.Recommendation(task))
		return exitcode.Success
	}

	tasks := b.Tasks()
	for i, task := range tasks {
		output.FormatTask(out, i+1, task)
	}
	if len(tasks) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}
