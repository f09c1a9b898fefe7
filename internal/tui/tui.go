// Package tui renders the interactive board: one screen with five views
// over the session mirrors, drill-down expansion, status cycling and the
// task creation form.
package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/board"
)

// Run starts the interactive board and blocks until the user quits.
func Run(ctx context.Context, b *board.Board, out io.Writer) error {
	m := newModel(ctx, b)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
