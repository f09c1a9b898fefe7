package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/board"
	"taskboard/internal/service"
	"taskboard/internal/ui"
)

// Form field indexes, in focus order.
const (
	fieldTitle = iota
	fieldPriority
	fieldExecutor
	fieldTarget
	fieldDue
	fieldCategory
	fieldDetails
	fieldResult
	fieldSubmit
	fieldCount
)

// addForm holds the draft state for a new task. Executor and target stay
// raw comma-separated text until submission; priority and category are
// cycled selectors rather than free text.
type addForm struct {
	title    textinput.Model
	executor textinput.Model
	target   textinput.Model
	due      textinput.Model
	details  textarea.Model
	result   textarea.Model

	priority    int
	categoryIdx int

	// focus is the focused field index, or -1 when the form is idle.
	focus int
}

func newAddForm() addForm {
	title := textinput.New()
	title.Placeholder = "Enter task title"
	title.CharLimit = 200
	title.Width = 40

	executor := textinput.New()
	executor.Placeholder = "John, Jane"
	executor.Width = 40

	target := textinput.New()
	target.Placeholder = "Client, Partner"
	target.Width = 40

	due := textinput.New()
	due.Placeholder = "August 5"
	due.Width = 40

	details := textarea.New()
	details.Placeholder = "Detailed description of task requirements"
	details.SetWidth(60)
	details.SetHeight(3)
	details.ShowLineNumbers = false

	result := textarea.New()
	result.Placeholder = "Describe expected outcome"
	result.SetWidth(60)
	result.SetHeight(3)
	result.ShowLineNumbers = false

	return addForm{
		title:    title,
		executor: executor,
		target:   target,
		due:      due,
		details:  details,
		result:   result,
		priority: 1,
		focus:    -1,
	}
}

func (f addForm) focused() bool { return f.focus >= 0 }

func (f addForm) onSubmit() bool { return f.focus == fieldSubmit }

// submittable mirrors the disabled state of the submit control.
func (f addForm) submittable() bool {
	return strings.TrimSpace(f.title.Value()) != ""
}

func (f *addForm) next() {
	f.focus = (f.focus + 1) % fieldCount
}

func (f *addForm) prev() {
	f.focus = (f.focus + fieldCount - 1) % fieldCount
}

func (f *addForm) blur() {
	f.focus = -1
	f.title.Blur()
	f.executor.Blur()
	f.target.Blur()
	f.due.Blur()
	f.details.Blur()
	f.result.Blur()
}

// focusCurrent moves input focus to the field at f.focus.
func (f *addForm) focusCurrent() tea.Cmd {
	f.title.Blur()
	f.executor.Blur()
	f.target.Blur()
	f.due.Blur()
	f.details.Blur()
	f.result.Blur()

	switch f.focus {
	case fieldTitle:
		return f.title.Focus()
	case fieldExecutor:
		return f.executor.Focus()
	case fieldTarget:
		return f.target.Focus()
	case fieldDue:
		return f.due.Focus()
	case fieldDetails:
		return f.details.Focus()
	case fieldResult:
		return f.result.Focus()
	}
	return nil
}

func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	// Selector fields consume left/right instead of text edits.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch f.focus {
		case fieldPriority:
			switch key.String() {
			case "left":
				if f.priority > 1 {
					f.priority--
				}
			case "right":
				if f.priority < 3 {
					f.priority++
				}
			}
			return f, nil
		case fieldCategory:
			switch key.String() {
			case "left":
				f.categoryIdx = (f.categoryIdx + len(service.Categories) - 1) % len(service.Categories)
			case "right":
				f.categoryIdx = (f.categoryIdx + 1) % len(service.Categories)
			}
			return f, nil
		case fieldSubmit:
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldExecutor:
		f.executor, cmd = f.executor.Update(msg)
	case fieldTarget:
		f.target, cmd = f.target.Update(msg)
	case fieldDue:
		f.due, cmd = f.due.Update(msg)
	case fieldDetails:
		f.details, cmd = f.details.Update(msg)
	case fieldResult:
		f.result, cmd = f.result.Update(msg)
	}
	return f, cmd
}

// draft converts the form into the board's draft shape.
func (f addForm) draft() board.Draft {
	return board.Draft{
		Title:          f.title.Value(),
		Priority:       f.priority,
		Details:        f.details.Value(),
		Executor:       f.executor.Value(),
		Target:         f.target.Value(),
		ExpectedResult: f.result.Value(),
		DueDate:        f.due.Value(),
		Category:       service.Categories[f.categoryIdx],
	}
}

func (f addForm) view() string {
	var sb strings.Builder

	sb.WriteString(ui.H2.Render("Add New Task") + "\n\n")
	sb.WriteString(f.label(fieldTitle, "Task Title") + "\n" + f.title.View() + "\n\n")
	sb.WriteString(f.label(fieldPriority, "Priority") + "  " + f.priorityView() + "\n\n")
	sb.WriteString(f.label(fieldExecutor, "Executor (comma separated)") + "\n" + f.executor.View() + "\n\n")
	sb.WriteString(f.label(fieldTarget, "Target (comma separated)") + "\n" + f.target.View() + "\n\n")
	sb.WriteString(f.label(fieldDue, "Due Date") + "\n" + f.due.View() + "\n\n")
	sb.WriteString(f.label(fieldCategory, "Category") + "  " + f.categoryView() + "\n\n")
	sb.WriteString(f.label(fieldDetails, "Task Details") + "\n" + f.details.View() + "\n\n")
	sb.WriteString(f.label(fieldResult, "Expected Result") + "\n" + f.result.View() + "\n\n")

	submit := "[ Create Task ]"
	switch {
	case !f.submittable():
		submit = ui.Muted.Render(submit)
	case f.focus == fieldSubmit:
		submit = ui.SelectedRow.Render(submit)
	}
	sb.WriteString(submit + "\n")

	return sb.String()
}

func (f addForm) label(field int, text string) string {
	if f.focus == field {
		return ui.SelectedRow.Render(text)
	}
	return text
}

func (f addForm) priorityView() string {
	labels := map[int]string{1: "High Priority (1)", 2: "Medium Priority (2)", 3: "Low Priority (3)"}
	return "< " + labels[f.priority] + " >"
}

func (f addForm) categoryView() string {
	return "< " + service.Categories[f.categoryIdx] + " >"
}
