package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/tasktrack/internal/app"
	"github.com/runoshun/tasktrack/internal/domain"
	"github.com/runoshun/tasktrack/internal/usecase"
)

// How long errors and notices stay in the status line.
const (
	errorDisplayDuration  = 5 * time.Second
	noticeDisplayDuration = 3 * time.Second
)

// Model is the main bubbletea model for the TUI.
// The task service is only called from Update, so all store access stays on
// the bubbletea goroutine.
type Model struct {
	// Dependencies (pointers first for alignment)
	service     *usecase.TaskService
	logger      domain.Logger
	err         error
	unsubscribe func()

	// State (slices - contain pointers)
	tasks []*domain.Task // Visible tasks in display order

	// Components (structs with pointers)
	keys           KeyMap
	styles         Styles
	help           help.Model
	taskList       list.Model
	detailViewport viewport.Model
	form           taskForm

	// Input state (large structs)
	searchInput textinput.Model
	pathInput   textinput.Model

	// Strings
	notice string
	view   domain.View
	sort   domain.SortCriterion

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	pathAction    PathAction
	width         int
	height        int
	confirmTaskID int
	noticeSeq     int
}

// New creates a new TUI Model with the given container.
// The model subscribes to task service events; call Close to unsubscribe.
func New(c *app.Container) *Model {
	si := textinput.New()
	si.Placeholder = "Search title and description..."
	si.CharLimit = 100

	pi := textinput.New()
	pi.Placeholder = "tasks.json"
	pi.CharLimit = 500

	styles := DefaultStyles()
	taskList := list.New([]list.Item{}, newTaskDelegate(styles), 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	cfg := c.AppConfig
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	m := &Model{
		service:     c.TaskService(),
		logger:      c.Logger,
		keys:        DefaultKeyMap(),
		styles:      styles,
		help:        help.New(),
		taskList:    taskList,
		form:        newTaskForm(),
		searchInput: si,
		pathInput:   pi,
		view:        domain.ParseView(cfg.UI.DefaultView),
		mode:        ModeNormal,
	}
	if m.logger == nil {
		m.logger = domain.NopLogger{}
	}

	m.unsubscribe = m.service.Subscribe(m.handleEvent)
	// Only an explicitly configured sort reorders the store at launch,
	// since the next mutation saves the order.
	m.sort = domain.ParseSortCriterion(cfg.UI.DefaultSort)
	if cfg.UI.DefaultSort != "" && cfg.UI.DefaultSort != domain.DefaultSort {
		m.sort = m.service.Sort(cfg.UI.DefaultSort)
	}
	m.refresh()
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Close unsubscribes the model from the task service.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// handleEvent refreshes the list after every change to the store.
// It runs synchronously inside the service call made from Update.
func (m *Model) handleEvent(e usecase.Event) {
	m.setNotice(describeEvent(e, m.sort))
	if err := m.service.PersistErr(); err != nil && e.Kind != usecase.EventSorted {
		m.err = err
	}
	m.refresh()
}

// describeEvent returns a one-line summary of a store change.
func describeEvent(e usecase.Event, sort domain.SortCriterion) string {
	switch e.Kind {
	case usecase.EventAdded:
		return fmt.Sprintf("Added task #%d", e.TaskID)
	case usecase.EventUpdated:
		return fmt.Sprintf("Updated task #%d", e.TaskID)
	case usecase.EventDeleted:
		return fmt.Sprintf("Deleted task #%d", e.TaskID)
	case usecase.EventCleared:
		return fmt.Sprintf("Deleted %d tasks", e.Count)
	case usecase.EventImported:
		return fmt.Sprintf("Imported %d tasks", e.Count)
	case usecase.EventSorted:
		return "Sorted by " + sort.Display()
	case usecase.EventLoaded:
		return fmt.Sprintf("Loaded %d tasks", e.Count)
	}
	return ""
}

func (m *Model) setNotice(notice string) {
	m.notice = notice
	m.noticeSeq++
}

// clearNoticeAfter returns a command that clears the current notice.
func (m *Model) clearNoticeAfter() tea.Cmd {
	seq := m.noticeSeq
	return tea.Tick(noticeDisplayDuration, func(time.Time) tea.Msg {
		return MsgClearNotice{Seq: seq}
	})
}

// clearErrorAfter returns a command that clears the current error.
func clearErrorAfter() tea.Cmd {
	return tea.Tick(errorDisplayDuration, func(time.Time) tea.Msg {
		return MsgClearError{}
	})
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.taskList.SelectedItem() == nil {
		return nil
	}
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		return ti.task
	}
	return nil
}

// VisibleTasks returns the tasks shown in the list.
func (m *Model) VisibleTasks() []*domain.Task {
	return m.tasks
}

// refresh rebuilds the visible list from the service, keeping the selection
// on the same task when it is still visible.
func (m *Model) refresh() {
	selectedID := 0
	if task := m.SelectedTask(); task != nil {
		selectedID = task.ID
	}

	tasks := m.service.InView(m.view)
	if query := strings.TrimSpace(m.searchInput.Value()); query != "" {
		matches := make(map[int]struct{})
		for _, t := range m.service.Search(query) {
			matches[t.ID] = struct{}{}
		}
		filtered := tasks[:0]
		for _, t := range tasks {
			if _, ok := matches[t.ID]; ok {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}
	m.tasks = tasks

	today := m.service.Today()
	items := make([]list.Item, 0, len(tasks))
	selected := -1
	for i, task := range tasks {
		items = append(items, taskItem{task: task, today: today})
		if task.ID == selectedID {
			selected = i
		}
	}
	m.taskList.SetItems(items)
	if selected >= 0 {
		m.taskList.Select(selected)
	}

	if m.mode == ModeDetail {
		if m.SelectedTask() == nil {
			m.mode = ModeNormal
			return
		}
		m.detailViewport.SetContent(m.detailContent(m.detailViewport.Width))
	}
}

// updateLayoutSizes resizes the components after a window change.
func (m *Model) updateLayoutSizes() {
	listWidth := m.width - 4
	if listWidth < 40 {
		listWidth = 40
	}
	// Header (2) + status line (1) + app padding (2) + search/error lines (2)
	listHeight := m.height - 7
	if listHeight < 3 {
		listHeight = 3
	}
	m.taskList.SetSize(listWidth, listHeight)
	m.help.Width = listWidth
	m.form.setWidth(listWidth - 24)

	if m.mode == ModeDetail {
		m.initDetailViewport()
	}
}

func (m *Model) initDetailViewport() {
	width := m.width - 12
	height := m.height - 10
	if width < 40 {
		width = 40
	}
	if height < 10 {
		height = 10
	}
	m.detailViewport = viewport.New(width, height)
	m.detailViewport.SetContent(m.detailContent(width))
}

func (m *Model) detailContent(width int) string {
	task := m.SelectedTask()
	if task == nil {
		return "No task selected"
	}
	today := m.service.Today()

	row := func(label, value string) string {
		return m.styles.DetailLabel.Render(label) + value
	}

	due := m.styles.DueNormal.Render("none")
	if task.DueDate != nil {
		due = m.styles.DueStyle(task, today).Render(task.DueDate.String())
		switch {
		case task.IsOverdue(today):
			due += m.styles.DueOverdue.Render(" (overdue)")
		case task.IsDueToday(today):
			due += m.styles.DueToday.Render(" (today)")
		}
	}

	lines := []string{
		m.styles.DetailTitle.Render(fmt.Sprintf("Task #%d", task.ID)),
		m.styles.TaskTitleSelected.Render(task.Title),
		"",
		row("Status", m.styles.StatusStyle(task.Status).Render(StatusIcon(task.Status)+" "+task.Status.Display())),
		row("Priority", m.styles.PriorityStyle(task.Priority).Render(task.Priority.Display())),
		row("Due", due),
		row("Created", m.styles.DetailValue.Render(task.CreatedAt.Format("2006-01-02 15:04"))),
	}
	if task.CompletedAt != nil {
		lines = append(lines, row("Completed", m.styles.DetailValue.Render(task.CompletedAt.Format("2006-01-02 15:04"))))
	}

	if task.Description != "" {
		lines = append(lines, "", m.styles.DetailLabel.Render("Description"), m.renderMarkdown(task.Description, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderMarkdown renders a task description as markdown.
// Falls back to the raw text if rendering fails.
func (m *Model) renderMarkdown(text string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.logger.Debug(0, "tui", fmt.Sprintf("markdown renderer: %v", err))
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		m.logger.Debug(0, "tui", fmt.Sprintf("render description: %v", err))
		return text
	}
	return strings.Trim(out, "\n")
}

// statusCounts returns the per-status summary shown in the status line.
func (m *Model) statusCounts() string {
	parts := make([]string, 0, len(domain.AllStatuses())+1)
	for _, s := range domain.AllStatuses() {
		parts = append(parts, fmt.Sprintf("%d %s", m.service.CountByStatus(s), strings.ToLower(s.Display())))
	}
	if n := len(m.service.Overdue()); n > 0 {
		parts = append(parts, m.styles.DueOverdue.Render(fmt.Sprintf("%d overdue", n)))
	}
	return strings.Join(parts, " · ")
}
