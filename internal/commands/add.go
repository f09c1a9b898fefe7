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
	"taskboard/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command: create a task from draft fields.
type AddCmd struct {
	priority int
	executor string
	target   string
	dueDate  string
	category string
	details  string
	result   string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskboard add [--priority <1|2|3>] [--executor <names>] [--target <names>] [--due <date>] [--category <cat>] [--details <text>] [--result <text>] <title...>"
}
func (c *AddCmd) NeedsStore() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.priority, "priority", 1, "")
	fs.IntVar(&c.priority, "p", 1, "")
	fs.StringVar(&c.executor, "executor", "", "")
	fs.StringVar(&c.target, "target", "", "")
	fs.StringVar(&c.dueDate, "due", "", "")
	fs.StringVar(&c.category, "category", "witness", "")
	fs.StringVar(&c.details, "details", "", "")
	fs.StringVar(&c.result, "result", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}
	if c.priority < 1 || c.priority > 3 {
		fmt.Fprintf(errOut, "error: invalid priority: %d\n", c.priority)
		return exitcode.UserError
	}
	if c.category != "" && !service.ValidCategory(c.category) {
		fmt.Fprintf(errOut, "error: invalid category: %s\n", c.category)
		return exitcode.UserError
	}

	draft := board.Draft{
		Title:          title,
		Priority:       c.priority,
		Details:        c.details,
		Executor:       c.executor,
		Target:         c.target,
		ExpectedResult: c.result,
		DueDate:        c.dueDate,
		Category:       c.category,
	}

	task, err := b.Create(ctx, draft)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "created %s\n", task.ID)
	}
	return exitcode.Success
}
