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
	Register(&DatesCmd{})
}

// DatesCmd implements the dates command: tasks grouped by project date.
// With no argument it lists each configured date with its task count;
// with a date argument it expands that date's tasks.
type DatesCmd struct{}

func (c *DatesCmd) Name() string      { return "dates" }
func (c *DatesCmd) Aliases() []string { return nil }
func (c *DatesCmd) Synopsis() string  { return "Show tasks by date" }
func (c *DatesCmd) Usage() string     { return "taskboard dates [<date>]" }
func (c *DatesCmd) NeedsStore() bool  { return true }

func (c *DatesCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DatesCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	if err := b.Load(ctx); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if len(args) == 0 {
		for _, date := range b.Project().Dates {
			fmt.Fprintf(out, "%s  (%d tasks)\n", date, len(b.TasksOnDate(date)))
		}
		return exitcode.Success
	}

	date := strings.Join(args, " ")
	if !knownDate(b, date) {
		fmt.Fprintf(errOut, "error: unknown date: %s\n", date)
		return exitcode.UserError
	}

	output.FormatSectionHeader(out, date)
	tasks := b.TasksOnDate(date)
	for i, task := range tasks {
		output.FormatTask(out, i+1, task)
		output.FormatTaskDetail(out, task, b.Recommendation(task))
	}
	if len(tasks) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks")
	}
	return exitcode.Success
}

func knownDate(b *board.Board, date string) bool {
	for _, d := range b.Project().Dates {
		if d == date {
			return true
		}
	}
	return false
}
