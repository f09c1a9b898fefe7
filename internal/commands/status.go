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
	Register(&StatusCmd{})
}

// StatusCmd implements the status command: update one task's status.
type StatusCmd struct{}

func (c *StatusCmd) Name() string      { return "status" }
func (c *StatusCmd) Aliases() []string { return nil }
func (c *StatusCmd) Synopsis() string  { return "Update a task's status" }
func (c *StatusCmd) Usage() string {
	return "taskboard status <task-id> <pending|in-progress|completed|blocked>"
}
func (c *StatusCmd) NeedsStore() bool { return true }

func (c *StatusCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: task id and status required")
		return exitcode.UserError
	}

	id, status := args[0], args[1]
	if !service.ValidStatus(status) {
		fmt.Fprintf(errOut, "error: invalid status: %s\n", status)
		return exitcode.UserError
	}

	if err := b.UpdateStatus(ctx, id, status); err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Fprintf(errOut, "error: task not found: %s\n", id)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
