// Package output provides plain-text formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskboard/internal/service"
)

const (
	// SectionSeparator is the separator line for view sections.
	SectionSeparator = "------------"
)

// StatusLabel returns the display label for a task status.
func StatusLabel(status string) string {
	switch status {
	case service.StatusPending:
		return "Pending"
	case service.StatusInProgress:
		return "In Progress"
	case service.StatusCompleted:
		return "Completed"
	case service.StatusBlocked:
		return "Blocked"
	default:
		return status
	}
}

// PriorityLabel returns the short display label for a priority.
func PriorityLabel(priority int) string {
	return fmt.Sprintf("P%d", priority)
}

// FormatSectionHeader formats a view section header.
func FormatSectionHeader(w io.Writer, title string) {
	fmt.Fprintln(w, SectionSeparator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, SectionSeparator)
}

// FormatTask formats a numbered task line.
// Format: "{N:>4}  {TITLE}  [P{PRIORITY}] [{STATUS}]\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s  [%s] [%s]\n",
		num, normalizeTitle(task.Title), PriorityLabel(task.Priority), StatusLabel(task.Status))
}

// FormatCount formats a labelled count line for the dashboard summary.
func FormatCount(w io.Writer, label string, n int) {
	fmt.Fprintf(w, "%-14s %d\n", label+":", n)
}

// FormatTaskDetail formats the expanded detail block for one task.
func FormatTaskDetail(w io.Writer, task service.Task, recommendation string) {
	fmt.Fprintf(w, "      id: %s | category: %s\n", task.ID, Text(task.Category))
	fmt.Fprintf(w, "      executor: %s\n", Names(task.Executor))
	fmt.Fprintf(w, "      target: %s\n", Names(task.Target))
	fmt.Fprintf(w, "      due: %s\n", Text(task.DueDate))
	if task.Details != nil {
		fmt.Fprintf(w, "      details: %s\n", *task.Details)
	}
	if task.ExpectedResult != nil {
		fmt.Fprintf(w, "      expected: %s\n", *task.ExpectedResult)
	}
	if task.Risks != nil && *task.Risks != "" {
		fmt.Fprintf(w, "      risk: %s\n", *task.Risks)
	}
	fmt.Fprintf(w, "      recommendation: %s\n", recommendation)
}

// Names joins a name list for display; empty lists show as a dash.
func Names(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// Text renders an optional field; null shows as a dash.
func Text(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
