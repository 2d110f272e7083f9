package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/tasktrack/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		seq := m.noticeSeq
		model, cmd := m.handleKeyMsg(msg)
		if m.noticeSeq != seq {
			cmd = tea.Batch(cmd, m.clearNoticeAfter())
		}
		return model, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, clearErrorAfter()

	case MsgClearError:
		m.err = nil
		return m, nil

	case MsgClearNotice:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// fail records err for display and schedules it to be cleared.
func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	return m, clearErrorAfter()
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeSearch:
		return m.handleSearchMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeForm:
		return m.handleFormMode(msg)
	case ModePathInput:
		return m.handlePathInputMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeDetail:
		return m.handleDetailMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.taskList.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.taskList.CursorDown()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.taskList.Paginator.PrevPage()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.taskList.Paginator.NextPage()
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		if m.SelectedTask() == nil {
			return m, nil
		}
		m.mode = ModeDetail
		m.initDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m.openForm(nil)

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		return m.openForm(task)

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.ClearAll):
		if m.service.Len() == 0 {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmClearAll
		return m, nil

	case key.Matches(msg, m.keys.MarkTodo):
		return m.setSelectedStatus(domain.StatusTodo)

	case key.Matches(msg, m.keys.MarkInProgress):
		return m.setSelectedStatus(domain.StatusInProgress)

	case key.Matches(msg, m.keys.MarkCompleted):
		return m.setSelectedStatus(domain.StatusCompleted)

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		next := m.sort.Next()
		m.sort = next
		m.service.Sort(string(next))
		return m, nil

	case key.Matches(msg, m.keys.View):
		m.view = m.view.Next()
		m.refresh()
		m.taskList.Select(0)
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if err := m.service.Load(); err != nil {
			return m.fail(err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Import):
		return m.openPathInput(PathImport)

	case key.Matches(msg, m.keys.Export):
		return m.openPathInput(PathExport)

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		// Esc in normal mode drops an applied search
		if m.searchInput.Value() != "" {
			m.searchInput.Reset()
			m.refresh()
		}
		return m, nil
	}

	return m, nil
}

// setSelectedStatus moves the selected task to status.
func (m *Model) setSelectedStatus(status domain.Status) (tea.Model, tea.Cmd) {
	task := m.SelectedTask()
	if task == nil || task.Status == status {
		return m, nil
	}
	if _, err := m.service.SetStatus(task.ID, status); err != nil {
		return m.fail(err)
	}
	return m, nil
}

// openForm shows the task form, filled from task when editing.
func (m *Model) openForm(task *domain.Task) (tea.Model, tea.Cmd) {
	if task == nil {
		m.form.reset()
	} else {
		m.form.load(task)
	}
	m.mode = ModeForm
	return m, nil
}

// openPathInput asks for an import or export file path.
func (m *Model) openPathInput(action PathAction) (tea.Model, tea.Cmd) {
	m.pathAction = action
	m.pathInput.Reset()
	if action == PathExport {
		m.pathInput.SetValue("tasks-export.json")
	}
	m.pathInput.Focus()
	m.mode = ModePathInput
	return m, nil
}

// handleSearchMode handles keys in search mode.
// The list is filtered as the query is typed.
func (m *Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.searchInput.Reset()
		m.searchInput.Blur()
		m.refresh()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refresh()
	return m, cmd
}

// handleConfirmMode handles keys in confirm mode.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		action := m.confirmAction
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		switch action {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDelete:
			m.service.DeleteByID(m.confirmTaskID)
		case ConfirmClearAll:
			m.service.ClearAll()
		}
		m.confirmTaskID = 0
		return m, nil
	}

	return m, nil
}

// handleFormMode handles keys in the task form.
func (m *Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.form.reset()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()

	case msg.Type == tea.KeyTab:
		m.form.nextField()
		return m, nil

	case msg.Type == tea.KeyShiftTab:
		m.form.prevField()
		return m, nil

	case msg.Type == tea.KeyEnter && m.form.focus != fieldDescription:
		if m.form.focus == fieldDueDate {
			return m.submitForm()
		}
		m.form.nextField()
		return m, nil
	}

	return m, m.form.update(msg)
}

// submitForm validates the form and creates or edits the task.
// Validation errors keep the form open.
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	draft := m.form.draft()
	if err := draft.Validate(); err != nil {
		m.form.err = err
		return m, nil
	}

	var err error
	if m.form.isEdit() {
		_, err = m.service.Edit(m.form.taskID, draft)
	} else {
		var task *domain.Task
		task, err = m.service.Create(draft)
		if err == nil {
			m.selectTask(task.ID)
		}
	}
	if err != nil {
		m.form.err = err
		return m, nil
	}

	m.mode = ModeNormal
	m.form.reset()
	return m, nil
}

// selectTask moves the cursor to the task with id if it is visible.
func (m *Model) selectTask(id int) {
	for i, t := range m.tasks {
		if t.ID == id {
			m.taskList.Select(i)
			return
		}
	}
}

// handlePathInputMode handles keys while asking for an import/export path.
func (m *Model) handlePathInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.pathAction = PathNone
		m.pathInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m, nil
		}
		action := m.pathAction
		m.mode = ModeNormal
		m.pathAction = PathNone
		m.pathInput.Blur()
		return m.transfer(action, path)
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// transfer runs an import or export.
func (m *Model) transfer(action PathAction, path string) (tea.Model, tea.Cmd) {
	switch action {
	case PathImport:
		n, err := m.service.Import(path)
		if err != nil {
			return m.fail(err)
		}
		if n == 0 {
			m.setNotice("No tasks in " + path)
		}
	case PathExport:
		if err := m.service.Export(path); err != nil {
			return m.fail(err)
		}
		m.setNotice(fmt.Sprintf("Exported %d tasks to %s", m.service.Len(), path))
	case PathNone:
		return m.fail(errors.New("no file action selected"))
	}
	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// handleDetailMode handles keys in the task detail view.
func (m *Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Detail), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if task := m.SelectedTask(); task != nil {
			return m.openForm(task)
		}
		return m, nil

	case key.Matches(msg, m.keys.MarkTodo):
		return m.setSelectedStatus(domain.StatusTodo)

	case key.Matches(msg, m.keys.MarkInProgress):
		return m.setSelectedStatus(domain.StatusInProgress)

	case key.Matches(msg, m.keys.MarkCompleted):
		return m.setSelectedStatus(domain.StatusCompleted)

	// j/k: 1 line scroll
	case msg.String() == "j":
		m.detailViewport.ScrollDown(1)
		return m, nil

	case msg.String() == "k":
		m.detailViewport.ScrollUp(1)
		return m, nil

	// g/G: jump to top/bottom
	case msg.String() == "g":
		m.detailViewport.GotoTop()
		return m, nil

	case msg.String() == "G":
		m.detailViewport.GotoBottom()
		return m, nil
	}

	// Forward other keys to viewport for page up/down, arrows, etc.
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}
