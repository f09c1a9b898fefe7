package tui

import (
	"fmt"
	"strings"

	"taskboard/internal/output"
	"taskboard/internal/service"
	"taskboard/internal/ui"
)

func (m model) View() string {
	if m.loading {
		return "\n  Loading project data...\n"
	}

	var sb strings.Builder
	sb.WriteString(ui.Title.Render(m.b.Project().Name) + "\n")
	sb.WriteString(m.tabBar() + "\n\n")

	if m.alert != "" {
		sb.WriteString(ui.AlertBanner.Render(m.alert) + "\n")
		sb.WriteString(ui.Muted.Render("press any key to dismiss") + "\n\n")
	}

	switch m.view {
	case viewSummary:
		sb.WriteString(m.summaryView())
	case viewDates:
		sb.WriteString(m.datesView())
	case viewPeople:
		sb.WriteString(m.peopleView())
	case viewTasks:
		sb.WriteString(m.tasksView())
	case viewAdd:
		sb.WriteString(m.form.view())
	}

	sb.WriteString("\n" + ui.Muted.Render(m.footer()) + "\n")
	return sb.String()
}

func (m model) tabBar() string {
	var tabs []string
	for i, label := range viewLabels {
		label = fmt.Sprintf("%d %s", i+1, label)
		if view(i) == m.view {
			tabs = append(tabs, ui.TabActive.Render(label))
		} else {
			tabs = append(tabs, ui.TabInactive.Render(label))
		}
	}
	return strings.Join(tabs, "   ")
}

func (m model) footer() string {
	parts := []string{"1-5/tab views", "j/k move", "enter expand", "s status", "r refresh", "q quit"}
	line := strings.Join(parts, " · ")
	if m.lastLog != "" {
		line += "  |  " + m.lastLog
	}
	return line
}

func (m model) summaryView() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %d    %s %d    %s %d    %s %d\n\n",
		ui.H2.Render("Total Tasks:"), len(m.b.Tasks()),
		ui.H2.Render("Team Members:"), len(m.b.People()),
		ui.Warn.Render("Pending:"), m.b.CountByStatus(service.StatusPending),
		ui.Bad.Render("High Priority:"), m.b.CountHighPriority()))

	dates := m.b.Project().Dates
	if len(dates) > 0 {
		sb.WriteString(ui.H2.Render("Priority tasks for "+dates[0]) + "\n")
		for _, t := range m.b.TasksOnDate(dates[0]) {
			sb.WriteString(fmt.Sprintf("  %s %s  %s\n",
				ui.PriorityText(t.Priority), t.Title, ui.Muted.Render(output.Names(t.Executor))))
		}
		sb.WriteString("\n")
	}

	risky := m.b.RiskyTasks()
	if len(risky) > 0 {
		sb.WriteString(ui.Bad.Render("High risk tasks") + "\n")
		for _, t := range risky {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", t.Title, ui.Muted.Render(output.Text(t.Risks))))
		}
	}

	return sb.String()
}

func (m model) datesView() string {
	var sb strings.Builder
	sb.WriteString(ui.H2.Render("View Tasks by Date") + "\n")

	for i, date := range m.b.Project().Dates {
		tasks := m.b.TasksOnDate(date)
		line := fmt.Sprintf("%s  (%d tasks)", date, len(tasks))
		sb.WriteString(m.cursorLine(i == m.dateCursor, line) + "\n")

		if date == m.selectedDate {
			for _, t := range tasks {
				sb.WriteString(m.taskCard(t))
			}
		}
	}
	return sb.String()
}

func (m model) peopleView() string {
	var sb strings.Builder
	sb.WriteString(ui.H2.Render("View Tasks by Person") + "\n")

	people := m.b.People()
	if len(people) == 0 {
		sb.WriteString(ui.Muted.Render("no people") + "\n")
		return sb.String()
	}

	for i, p := range people {
		tasks := m.b.TasksForPerson(p.Name)
		line := fmt.Sprintf("%s  (%d related tasks)", p.Name, len(tasks))
		sb.WriteString(m.cursorLine(i == m.personCursor, line) + "\n")

		if p.Name == m.selectedPerson {
			for _, t := range tasks {
				role := "Target"
				for _, n := range t.Executor {
					if n == p.Name {
						role = "Executor"
						break
					}
				}
				sb.WriteString(m.taskCard(t))
				sb.WriteString(ui.Muted.Render("        role: "+role) + "\n")
			}
		}
	}
	return sb.String()
}

func (m model) tasksView() string {
	var sb strings.Builder
	sb.WriteString(ui.H2.Render("Task Management") + "\n")

	tasks := m.b.Tasks()
	if len(tasks) == 0 {
		sb.WriteString(ui.Muted.Render("no tasks found") + "\n")
		return sb.String()
	}

	for i, t := range tasks {
		line := fmt.Sprintf("%s  %s %s  %s",
			t.Title, ui.PriorityText(t.Priority), ui.StatusText(t.Status),
			ui.Muted.Render(t.ID))
		sb.WriteString(m.cursorLine(i == m.taskCursor, line) + "\n")

		if t.ID == m.selectedTaskID {
			sb.WriteString(m.taskDetail(t))
		}
	}
	return sb.String()
}

// taskCard renders the compact expanded row used by the date and person
// drill-downs.
func (m model) taskCard(t service.Task) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("      %s %s %s\n", ui.PriorityText(t.Priority), t.Title, ui.StatusText(t.Status)))
	if t.Details != nil {
		sb.WriteString(ui.Muted.Render("        "+*t.Details) + "\n")
	}
	sb.WriteString(ui.Muted.Render(fmt.Sprintf("        executor: %s | target: %s | due: %s",
		output.Names(t.Executor), output.Names(t.Target), output.Text(t.DueDate))) + "\n")
	return sb.String()
}

// taskDetail renders the full drill-down block for the task view,
// including the recommendation.
func (m model) taskDetail(t service.Task) string {
	var sb strings.Builder
	sb.WriteString(ui.Muted.Render(fmt.Sprintf("        id: %s | category: %s", t.ID, output.Text(t.Category))) + "\n")
	if t.Details != nil {
		sb.WriteString("        " + *t.Details + "\n")
	}
	sb.WriteString(fmt.Sprintf("        executor: %s | target: %s | due: %s\n",
		output.Names(t.Executor), output.Names(t.Target), output.Text(t.DueDate)))
	if t.ExpectedResult != nil {
		sb.WriteString("        expected: " + *t.ExpectedResult + "\n")
	}
	if t.Risks != nil && *t.Risks != "" {
		sb.WriteString(ui.Bad.Render("        risk: "+*t.Risks) + "\n")
	}
	sb.WriteString("        " + ui.H2.Render("Recommendation:") + " " + m.b.Recommendation(t) + "\n")
	return sb.String()
}

func (m model) cursorLine(selected bool, line string) string {
	if selected {
		return ui.SelectedRow.Render("> " + line)
	}
	return "  " + line
}
