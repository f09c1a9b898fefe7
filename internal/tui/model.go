package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/board"
	"taskboard/internal/service"
)

// view selects which of the five render paths is active.
type view int

const (
	viewSummary view = iota
	viewDates
	viewPeople
	viewTasks
	viewAdd
)

var viewLabels = []string{"Dashboard", "By Date", "By Person", "Task Management", "Add Task"}

// The trigger messages below only schedule work; every board call runs
// inside Update, so all session state stays on the event loop. A slow
// remote call blocks the UI, which is the intended behaviour: nothing
// is cancellable or retried.
type loadTasksMsg struct{}

type loadPeopleMsg struct{}

type model struct {
	ctx context.Context
	b   *board.Board

	width  int
	height int

	view view

	// Drill-down selection per list view; empty means collapsed.
	selectedDate   string
	selectedPerson string
	selectedTaskID string

	dateCursor   int
	personCursor int
	taskCursor   int

	// loading is gated on the first task load only; the people load
	// races in the background and fills in whenever it resolves.
	loading bool

	// alert is the blocking notice raised by failed mutations.
	// Load failures never set it; they go to lastLog only.
	alert   string
	lastLog string

	form addForm
}

func newModel(ctx context.Context, b *board.Board) model {
	return model{
		ctx:     ctx,
		b:       b,
		loading: true,
		form:    newAddForm(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return loadTasksMsg{} },
		func() tea.Msg { return loadPeopleMsg{} },
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadTasksMsg:
		if err := m.b.Load(m.ctx); err != nil {
			m.lastLog = "task load failed: " + err.Error()
		}
		m.loading = false
		return m, nil

	case loadPeopleMsg:
		if err := m.b.LoadPeople(m.ctx); err != nil {
			m.lastLog = "people load failed: " + err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.view == viewAdd {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A mutation alert blocks everything until dismissed.
	if m.alert != "" {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.alert = ""
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.view == viewAdd && m.form.focused() {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.lastLog = "refreshing"
		return m, tea.Batch(
			func() tea.Msg { return loadTasksMsg{} },
			func() tea.Msg { return loadPeopleMsg{} },
		)
	case "1", "2", "3", "4", "5":
		m.view = view(int(msg.String()[0] - '1'))
		return m, nil
	case "tab", "right", "l":
		m.view = (m.view + 1) % 5
		return m, nil
	case "shift+tab", "left", "h":
		m.view = (m.view + 4) % 5
		return m, nil
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "enter", " ":
		if m.view == viewAdd {
			m.form.focus = 0
			return m, m.form.focusCurrent()
		}
		m.toggleSelection()
		return m, nil
	case "s":
		return m.cycleStatus()
	case "i":
		if m.view == viewAdd {
			m.form.focus = 0
			return m, m.form.focusCurrent()
		}
	}
	return m, nil
}

// moveCursor moves within the active list view, clamped to the list.
func (m *model) moveCursor(delta int) {
	switch m.view {
	case viewDates:
		m.dateCursor = clamp(m.dateCursor+delta, len(m.b.Project().Dates))
	case viewPeople:
		m.personCursor = clamp(m.personCursor+delta, len(m.b.People()))
	case viewTasks:
		m.taskCursor = clamp(m.taskCursor+delta, len(m.b.Tasks()))
	}
}

// toggleSelection expands the item under the cursor, or collapses it if
// it is already the expanded one.
func (m *model) toggleSelection() {
	switch m.view {
	case viewDates:
		dates := m.b.Project().Dates
		if m.dateCursor >= len(dates) {
			return
		}
		date := dates[m.dateCursor]
		if m.selectedDate == date {
			m.selectedDate = ""
		} else {
			m.selectedDate = date
		}
	case viewPeople:
		people := m.b.People()
		if m.personCursor >= len(people) {
			return
		}
		name := people[m.personCursor].Name
		if m.selectedPerson == name {
			m.selectedPerson = ""
		} else {
			m.selectedPerson = name
		}
	case viewTasks:
		tasks := m.b.Tasks()
		if m.taskCursor >= len(tasks) {
			return
		}
		id := tasks[m.taskCursor].ID
		if m.selectedTaskID == id {
			m.selectedTaskID = ""
		} else {
			m.selectedTaskID = id
		}
	}
}

// cycleStatus advances the status of the task under the cursor in the
// task view. The remote store is written first; the mirror only changes
// when that succeeds, and a failure raises the blocking alert.
func (m model) cycleStatus() (tea.Model, tea.Cmd) {
	if m.view != viewTasks {
		return m, nil
	}
	tasks := m.b.Tasks()
	if m.taskCursor >= len(tasks) {
		return m, nil
	}
	t := tasks[m.taskCursor]
	next := nextStatus(t.Status)
	if err := m.b.UpdateStatus(m.ctx, t.ID, next); err != nil {
		m.alert = "Failed to update task status: " + err.Error()
		return m, nil
	}
	m.lastLog = t.ID + " -> " + next
	return m, nil
}

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.blur()
		return m, nil
	case "tab", "down":
		m.form.next()
		return m, m.form.focusCurrent()
	case "shift+tab", "up":
		m.form.prev()
		return m, m.form.focusCurrent()
	case "enter":
		if m.form.onSubmit() {
			return m.submitDraft()
		}
	case "ctrl+s":
		return m.submitDraft()
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submitDraft creates a task from the form. A blank title never reaches
// the store: the submit control is disabled while the title is empty.
func (m model) submitDraft() (tea.Model, tea.Cmd) {
	draft := m.form.draft()
	if draft.Blank() {
		return m, nil
	}
	task, err := m.b.Create(m.ctx, draft)
	if err != nil {
		m.alert = "Failed to create task: " + err.Error()
		return m, nil
	}
	m.form = newAddForm()
	m.lastLog = "created " + task.ID
	return m, nil
}

func nextStatus(s string) string {
	for i, v := range service.Statuses {
		if v == s {
			return service.Statuses[(i+1)%len(service.Statuses)]
		}
	}
	return service.StatusPending
}

func clamp(v, n int) int {
	if n == 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
