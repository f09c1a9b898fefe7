// Package ui holds the taskboard theme: reusable lipgloss styles and
// status/priority colouring shared by the terminal UI.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/service"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	TabActive   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary).Underline(true)
	TabInactive = lipgloss.NewStyle().Foreground(cMuted)
	AlertBanner = lipgloss.NewStyle().Bold(true).Foreground(cBad).BorderStyle(lipgloss.NormalBorder()).BorderForeground(cBad).Padding(0, 1)
)

// StatusText renders a coloured status label.
func StatusText(status string) string {
	switch status {
	case service.StatusCompleted:
		return Good.Render("Completed")
	case service.StatusInProgress:
		return H2.Render("In Progress")
	case service.StatusPending:
		return Warn.Render("Pending")
	case service.StatusBlocked:
		return Bad.Render("Blocked")
	default:
		return Muted.Render(status)
	}
}

// PriorityText renders a coloured priority badge.
func PriorityText(priority int) string {
	label := fmt.Sprintf("P%d", priority)
	switch priority {
	case 1:
		return Bad.Render(label)
	case 2:
		return Warn.Render(label)
	case 3:
		return H2.Render(label)
	default:
		return Muted.Render(label)
	}
}
