package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/tasktrack/internal/domain"
)

// Width of the row prefix: indicator, id, status icon, priority badge and due date.
const rowPrefixWidth = 28

type taskItem struct {
	task  *domain.Task
	today domain.Date
}

func (t taskItem) FilterValue() string {
	return t.task.Title
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// truncate shortens s to fit width display cells.
func truncate(s string, width int) string {
	if width < 10 {
		width = 10
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "...")
	}
	return s
}

// padRight pads line with spaces up to width display cells.
func padRight(line string, width int) string {
	if w := runewidth.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()
	listWidth := m.Width()

	indicator := " "
	if selected {
		indicator = ">"
	}

	due := "          "
	if task.DueDate != nil {
		due = task.DueDate.String()
	}

	title := truncate(task.Title, listWidth-rowPrefixWidth-2)

	titleStyle := d.styles.TaskTitle
	switch {
	case selected:
		titleStyle = d.styles.TaskTitleSelected
	case task.IsCompleted():
		titleStyle = d.styles.TaskTitleCompleted
	}

	line := "  " + d.styles.SelectionIndicator.Render(indicator) + " " +
		d.styles.TaskID.Render(fmt.Sprintf("%3d", task.ID)) + "  " +
		d.styles.StatusStyle(task.Status).Render(StatusIcon(task.Status)) + " " +
		d.styles.PriorityStyle(task.Priority).Render(PriorityBadge(task.Priority)) + "  " +
		d.styles.DueStyle(task, ti.today).Render(due) + "  " +
		titleStyle.Render(title)
	_, _ = fmt.Fprintln(w, line)

	descLine := strings.Repeat(" ", rowPrefixWidth)
	if task.Description != "" {
		descLine += truncate(escapeNewlines(task.Description), listWidth-rowPrefixWidth-2)
	}
	descLine = padRight(descLine, listWidth)

	descStyle := d.styles.TaskDesc
	if selected {
		descStyle = d.styles.TaskDescSelected
	}
	_, _ = fmt.Fprint(w, descStyle.Render(descLine))
}
