package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
)

func init() {
	Register(&DisconnectCmd{})
}

// DisconnectCmd implements the disconnect command.
type DisconnectCmd struct{}

func (c *DisconnectCmd) Name() string      { return "disconnect" }
func (c *DisconnectCmd) Aliases() []string { return nil }
func (c *DisconnectCmd) Synopsis() string  { return "Remove stored credentials" }
func (c *DisconnectCmd) Usage() string     { return "taskboard disconnect [common flags]" }
func (c *DisconnectCmd) NeedsStore() bool  { return false }

func (c *DisconnectCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DisconnectCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	if !cfg.HasCredentials() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "not connected")
		}
		return exitcode.Success
	}

	if err := cfg.RemoveCredentials(); err != nil {
		fmt.Fprintf(errOut, "error: failed to remove credentials: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
