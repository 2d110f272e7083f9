package tui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/tasktrack/internal/domain"
)

// formField identifies the focused field in the task form.
type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldPriority
	fieldStatus
	fieldDueDate
	fieldCount
)

// Next returns the following field, wrapping around.
func (f formField) Next() formField {
	return (f + 1) % fieldCount
}

// Prev returns the preceding field, wrapping around.
func (f formField) Prev() formField {
	return (f + fieldCount - 1) % fieldCount
}

func (f formField) label() string {
	switch f {
	case fieldTitle:
		return "Title"
	case fieldDescription:
		return "Description"
	case fieldPriority:
		return "Priority"
	case fieldStatus:
		return "Status"
	case fieldDueDate:
		return "Due date"
	default:
		return ""
	}
}

// taskForm edits the fields of a new or existing task.
// Fields are ordered to minimize memory padding.
type taskForm struct {
	err         error
	priority    domain.Priority
	status      domain.Status
	title       textinput.Model
	due         textinput.Model
	description textarea.Model
	focus       formField
	taskID      int // 0 when creating
}

func newTaskForm() taskForm {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = domain.MaxTitleLength
	title.Prompt = ""

	desc := textarea.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = domain.MaxDescriptionLength
	desc.ShowLineNumbers = false
	desc.SetHeight(3)

	due := textinput.New()
	due.Placeholder = domain.DateLayout
	due.CharLimit = len(domain.DateLayout)
	due.Prompt = ""

	f := taskForm{
		title:       title,
		description: desc,
		due:         due,
	}
	f.reset()
	return f
}

// reset clears the form for a new task.
func (f *taskForm) reset() {
	f.err = nil
	f.taskID = 0
	f.title.Reset()
	f.description.Reset()
	f.due.Reset()
	f.priority = domain.PriorityMedium
	f.status = domain.StatusTodo
	f.focus = fieldTitle
	f.focusField()
}

// load fills the form from an existing task.
func (f *taskForm) load(task *domain.Task) {
	f.reset()
	draft := domain.DraftFromTask(task)
	f.taskID = task.ID
	f.title.SetValue(draft.Title)
	f.description.SetValue(draft.Description)
	f.due.SetValue(draft.DueDate)
	f.priority = draft.Priority
	f.status = draft.Status
}

// isEdit returns true when the form edits an existing task.
func (f *taskForm) isEdit() bool {
	return f.taskID != 0
}

// draft returns the current field values.
func (f *taskForm) draft() domain.TaskDraft {
	return domain.TaskDraft{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		DueDate:     f.due.Value(),
		Priority:    f.priority,
		Status:      f.status,
	}
}

// setWidth resizes the text fields.
func (f *taskForm) setWidth(width int) {
	if width < 20 {
		width = 20
	}
	f.title.Width = width
	f.due.Width = width
	f.description.SetWidth(width)
}

func (f *taskForm) focusField() {
	f.title.Blur()
	f.description.Blur()
	f.due.Blur()

	switch f.focus {
	case fieldTitle:
		f.title.Focus()
	case fieldDescription:
		f.description.Focus()
	case fieldDueDate:
		f.due.Focus()
	case fieldPriority, fieldStatus, fieldCount:
	}
}

func (f *taskForm) nextField() {
	f.focus = f.focus.Next()
	f.focusField()
}

func (f *taskForm) prevField() {
	f.focus = f.focus.Prev()
	f.focusField()
}

// update handles a key for the focused field.
func (f *taskForm) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case fieldDueDate:
		f.due, cmd = f.due.Update(msg)
	case fieldPriority:
		f.priority = cycle(domain.AllPriorities(), f.priority, cycleStep(msg))
	case fieldStatus:
		f.status = cycle(domain.AllStatuses(), f.status, cycleStep(msg))
	case fieldCount:
	}
	return cmd
}

// cycleStep maps left/right and space to a step through an enum.
func cycleStep(msg tea.KeyMsg) int {
	switch msg.String() {
	case "left", "h":
		return -1
	case "right", "l", " ", "space":
		return 1
	}
	return 0
}

// cycle returns the value step positions away from current, wrapping around.
func cycle[T comparable](values []T, current T, step int) T {
	if step == 0 || len(values) == 0 {
		return current
	}
	i := slices.Index(values, current)
	if i < 0 {
		return values[0]
	}
	n := len(values)
	return values[((i+step)%n+n)%n]
}

// view renders the form body.
func (f *taskForm) view(styles Styles) string {
	heading := "◆ New Task"
	if f.isEdit() {
		heading = "◆ Edit Task #" + strconv.Itoa(f.taskID)
	}

	label := func(field formField) string {
		if f.focus == field {
			return styles.InputFocused.Render(field.label())
		}
		return styles.InputLabel.Render(field.label())
	}

	enumValue := func(field formField, text string, style lipgloss.Style) string {
		if f.focus == field {
			return styles.FooterKey.Render("‹ ") + style.Render(text) + styles.FooterKey.Render(" ›")
		}
		return "  " + style.Render(text)
	}

	rows := []string{
		styles.DialogTitle.Render(heading),
		"",
		label(fieldTitle) + f.title.View(),
		label(fieldDescription),
		f.description.View(),
		label(fieldPriority) + enumValue(fieldPriority, f.priority.Display(), styles.PriorityStyle(f.priority)),
		label(fieldStatus) + enumValue(fieldStatus, f.status.Display(), styles.StatusStyle(f.status)),
		label(fieldDueDate) + f.due.View(),
	}

	if f.err != nil {
		rows = append(rows, "", styles.ErrorMsg.Render("Error: "+f.err.Error()))
	}

	hint := strings.Join([]string{
		styles.FooterKey.Render("tab") + styles.Footer.Render(" next"),
		styles.FooterKey.Render("←/→") + styles.Footer.Render(" change"),
		styles.FooterKey.Render("ctrl+s") + styles.Footer.Render(" save"),
		styles.FooterKey.Render("esc") + styles.Footer.Render(" cancel"),
	}, "  ")
	rows = append(rows, "", hint)

	return styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
