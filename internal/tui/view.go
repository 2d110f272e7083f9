package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeDetail:
		content = m.viewDetail()
	case ModeForm:
		content = m.form.view(m.styles)
	case ModeNormal, ModeSearch, ModeConfirm, ModePathInput:
		content = m.viewMain()
	}

	statusLine := NewStatusLine(m.width-4, &m.styles)
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		content,
		statusLine.Render(m.GetStatusInfo()),
	))
}

// viewMain renders the main task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	// Search input (if in search mode)
	if m.mode == ModeSearch {
		b.WriteString(m.styles.InputPrompt.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	} else if m.searchInput.Value() != "" {
		b.WriteString(m.styles.Footer.Render("Search: "+m.searchInput.Value()+"  (esc to clear)") + "\n\n")
	}

	if len(m.tasks) == 0 {
		b.WriteString(m.viewEmptyState())
	} else {
		b.WriteString(m.taskList.View())
	}

	// Dialogs/overlays
	switch m.mode {
	case ModeNormal, ModeSearch, ModeForm, ModeHelp, ModeDetail:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModePathInput:
		b.WriteString("\n")
		b.WriteString(m.viewPathInput())
	}

	return b.String()
}

// viewHeader renders the header with the view, sort and task count.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks · " + m.view.Display())

	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(
		fmt.Sprintf("sort: %s · showing %d of %d", m.sort.Display(), len(m.tasks), m.service.Len()),
	)

	headerWidth := m.width - 6 // padding
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewEmptyState renders a friendly empty state message.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.service.Len() > 0 {
		b.WriteString(m.styles.Footer.Render("  No tasks match this view\n\n"))
		b.WriteString(m.styles.Footer.Render("  Press "))
		b.WriteString(m.styles.FooterKey.Render("tab"))
		b.WriteString(m.styles.Footer.Render(" to switch views"))
	} else {
		b.WriteString(m.styles.Footer.Render("  No tasks yet\n\n"))
		b.WriteString(m.styles.Footer.Render("  Press "))
		b.WriteString(m.styles.FooterKey.Render("n"))
		b.WriteString(m.styles.Footer.Render(" to create your first task"))
	}
	b.WriteString("\n")
	return b.String()
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	var title string
	switch m.confirmAction {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		title = fmt.Sprintf("Delete task #%d?", m.confirmTaskID)
		if task, ok := m.service.FindByID(m.confirmTaskID); ok {
			title = fmt.Sprintf("Delete task #%d %q?", task.ID, task.Title)
		}
	case ConfirmClearAll:
		title = fmt.Sprintf("Delete all %d tasks?", m.service.Len())
	}

	titleStyle := m.styles.DialogTitle.Foreground(Colors.Error)
	prompt := m.styles.DialogPrompt.Render("This action cannot be undone.")

	yesBtn := m.styles.FooterKey.Render("[ y ] Confirm")
	noBtn := m.styles.Footer.Render("[ n ] Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		prompt,
		"",
		buttons,
	)

	return m.styles.Dialog.BorderForeground(Colors.Error).Render(content)
}

// viewPathInput renders the import/export path dialog.
func (m *Model) viewPathInput() string {
	title := "◆ Import Tasks"
	note := "Tasks are appended with new ids. Use .yaml or .yml for YAML."
	if m.pathAction == PathExport {
		title = "◆ Export Tasks"
		note = "The file is replaced. Use .yaml or .yml for YAML."
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render(title),
		m.styles.Footer.Render(note),
		"",
		m.styles.InputPrompt.Render("File"),
		m.pathInput.View(),
	)
	return m.styles.Dialog.Render(content)
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	content := m.help.FullHelpView(m.keys.FullHelp())
	hint := m.styles.Footer.Render("[esc] close")

	return m.styles.Dialog.
		BorderForeground(Colors.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content, "", hint))
}

// viewDetail renders the task detail view.
func (m *Model) viewDetail() string {
	if m.SelectedTask() == nil {
		return "No task selected"
	}

	footer := m.styles.Footer.Render(fmt.Sprintf("[esc] back  %3.f%%", m.detailViewport.ScrollPercent()*100))

	return m.styles.Dialog.
		Width(m.width - 4).
		BorderForeground(Colors.Muted).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.detailViewport.View(), "", footer))
}
