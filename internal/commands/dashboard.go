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
	"taskboard/internal/service"
)

func init() {
	Register(&DashboardCmd{})
}

// DashboardCmd implements the dashboard command: the project summary.
// Runs when taskboard is invoked with no arguments.
type DashboardCmd struct{}

func (c *DashboardCmd) Name() string      { return "dashboard" }
func (c *DashboardCmd) Aliases() []string { return []string{"dash"} }
func (c *DashboardCmd) Synopsis() string  { return "Show the project summary" }
func (c *DashboardCmd) Usage() string     { return "taskboard dashboard" }
func (c *DashboardCmd) NeedsStore() bool  { return true }

func (c *DashboardCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DashboardCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	if err := b.Load(ctx); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	// People only feed the member count here; a failure degrades the
	// summary instead of aborting it.
	if err := b.LoadPeople(ctx); err != nil && cfg.Debug {
		fmt.Fprintf(errOut, "debug: people load failed: %v\n", err)
	}

	project := b.Project()
	output.FormatSectionHeader(out, project.Name)
	output.FormatCount(out, "Total tasks", len(b.Tasks()))
	output.FormatCount(out, "Team members", len(b.People()))
	output.FormatCount(out, "Pending", b.CountByStatus(service.StatusPending))
	output.FormatCount(out, "High priority", b.CountHighPriority())

	if len(project.Dates) > 0 {
		first := project.Dates[0]
		fmt.Fprintln(out)
		output.FormatSectionHeader(out, "Priority tasks for "+first)
		today := b.TasksOnDate(first)
		for i, task := range today {
			output.FormatTask(out, i+1, task)
			fmt.Fprintf(out, "      executor: %s\n", output.Names(task.Executor))
		}
		if len(today) == 0 && !cfg.Quiet {
			fmt.Fprintln(out, "no tasks")
		}
	}

	risky := b.RiskyTasks()
	if len(risky) > 0 {
		fmt.Fprintln(out)
		output.FormatSectionHeader(out, "High risk tasks")
		for i, task := range risky {
			output.FormatTask(out, i+1, task)
			fmt.Fprintf(out, "      risk: %s\n", output.Text(task.Risks))
		}
	}

	return exitcode.Success
}
