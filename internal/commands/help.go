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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskboard help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskboard                                          Show the project summary
  taskboard dashboard [common flags]                 Show the project summary
  taskboard dates [common flags] [<date>]            Show tasks by date
  taskboard people [common flags] [<name>]           Show tasks by person
  taskboard tasks [common flags] [<task-id>]         List tasks / expand one
  taskboard add [common flags] [add flags] <title...>
  taskboard status [common flags] <task-id> <status>
  taskboard ui [common flags]                        Open the interactive board
  taskboard connect --url <url> --key <api-key>
  taskboard connect --backend postgres --conn <conn-string>
  taskboard disconnect
  taskboard help
  taskboard version

Add flags:
  --priority <1|2|3>   Task priority (1 is highest)
  --executor <names>   Comma-separated executor names
  --target <names>     Comma-separated target names
  --due <date>         Due date, e.g. "August 5"
  --category <cat>     witness, legal, relationship, petition, highlevel,
                       negotiation, pressure or investigation
  --details <text>     Task details
  --result <text>      Expected result

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
