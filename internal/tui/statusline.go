package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusLineInfo contains information for rendering the status line.
// Fields are ordered to minimize memory padding.
type StatusLineInfo struct {
	Notice   string // Last change or error, shown before the hints
	Summary  string // Task counts, right-aligned
	KeyHints []KeyHint
}

// KeyHint represents a key and its description.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusLine renders a unified status line at the bottom of the screen.
// Fields are ordered to minimize memory padding.
type StatusLine struct {
	styles *Styles
	width  int
}

// NewStatusLine creates a new StatusLine with the given width and styles.
func NewStatusLine(width int, styles *Styles) *StatusLine {
	return &StatusLine{
		width:  width,
		styles: styles,
	}
}

// SetWidth updates the status line width.
func (s *StatusLine) SetWidth(width int) {
	s.width = width
}

// Render renders the status line with the given info.
func (s *StatusLine) Render(info StatusLineInfo) string {
	keyStyle := s.styles.FooterKey

	// Build key hints
	hints := make([]string, 0, len(info.KeyHints))
	for _, h := range info.KeyHints {
		hints = append(hints, keyStyle.Render(h.Key)+" "+h.Desc)
	}
	content := strings.Join(hints, "  ")
	if info.Notice != "" {
		content = info.Notice + "  " + content
	}

	// Calculate spacing
	contentWidth := s.width - 2 // Account for padding

	rightContent := info.Summary
	rightLen := lipgloss.Width(rightContent)
	contentLen := lipgloss.Width(content)

	// Truncate content if needed
	maxContentWidth := contentWidth - rightLen - 2
	if contentLen > maxContentWidth {
		if maxContentWidth <= 3 {
			content = "..."
		} else {
			truncateStyle := lipgloss.NewStyle().MaxWidth(maxContentWidth - 3)
			content = truncateStyle.Render(content) + "..."
		}
		contentLen = lipgloss.Width(content)
	}

	spacing := contentWidth - contentLen - rightLen
	if spacing < 1 {
		spacing = 1
	}

	fullContent := content + strings.Repeat(" ", spacing) + rightContent
	return s.styles.Footer.Width(s.width).Render(fullContent)
}

// GetStatusInfo returns status line info for the TUI model.
func (m *Model) GetStatusInfo() StatusLineInfo {
	info := StatusLineInfo{
		Summary: m.statusCounts(),
	}

	switch {
	case m.err != nil:
		info.Notice = m.styles.ErrorMsg.Render("Error: " + m.err.Error())
	case m.notice != "":
		info.Notice = m.styles.Notice.Render(m.notice)
	}

	switch m.mode { //nolint:exhaustive // Dialog modes handled by default
	case ModeNormal:
		info.KeyHints = []KeyHint{
			{Key: "j/k", Desc: "nav"},
			{Key: "enter", Desc: "details"},
			{Key: "n", Desc: "new"},
			{Key: "tab", Desc: "view"},
			{Key: "s", Desc: "sort"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	case ModeSearch:
		info.KeyHints = []KeyHint{
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "cancel"},
		}
	case ModeDetail:
		info.KeyHints = []KeyHint{
			{Key: "j/k", Desc: "scroll"},
			{Key: "e", Desc: "edit"},
			{Key: "esc", Desc: "back"},
		}
	case ModePathInput:
		info.KeyHints = []KeyHint{
			{Key: "enter", Desc: m.pathAction.String()},
			{Key: "esc", Desc: "cancel"},
		}
	default:
		// Dialog modes - no hints in status line
		info.KeyHints = nil
	}

	return info
}
