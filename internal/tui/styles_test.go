package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/runoshun/tasktrack/internal/domain"
)

func forceTrueColorProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.DefaultRenderer().ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})
}

func TestPriorityStyle_UsesPriorityColor(t *testing.T) {
	forceTrueColorProfile(t)
	styles := DefaultStyles()

	high := styles.PriorityStyle(domain.PriorityHigh).Render("x")
	wantHigh := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(domain.PriorityHigh.Color())).Render("x")
	assert.Equal(t, wantHigh, high)
	assert.Contains(t, high, "38;2;")

	low := styles.PriorityStyle(domain.PriorityLow).Render("x")
	wantLow := lipgloss.NewStyle().Foreground(lipgloss.Color(domain.PriorityLow.Color())).Render("x")
	assert.Equal(t, wantLow, low)
	assert.NotEqual(t, high, low)
}

func TestDueStyle(t *testing.T) {
	forceTrueColorProfile(t)
	styles := DefaultStyles()
	today := domain.NewDate(2024, 1, 10)

	overdue := &domain.Task{Status: domain.StatusTodo, DueDate: datePtr(2024, 1, 9)}
	dueToday := &domain.Task{Status: domain.StatusTodo, DueDate: datePtr(2024, 1, 10)}
	done := &domain.Task{Status: domain.StatusCompleted, DueDate: datePtr(2024, 1, 9)}

	assert.Equal(t, styles.DueOverdue.Render("d"), styles.DueStyle(overdue, today).Render("d"))
	assert.Equal(t, styles.DueToday.Render("d"), styles.DueStyle(dueToday, today).Render("d"))
	assert.Equal(t, styles.DueNormal.Render("d"), styles.DueStyle(done, today).Render("d"))
}

func TestStatusIconAndPriorityBadge(t *testing.T) {
	assert.Equal(t, "○", StatusIcon(domain.StatusTodo))
	assert.Equal(t, "●", StatusIcon(domain.StatusInProgress))
	assert.Equal(t, "✓", StatusIcon(domain.StatusCompleted))
	assert.Equal(t, "?", StatusIcon(domain.Status("BOGUS")))

	for _, p := range domain.AllPriorities() {
		assert.Len(t, PriorityBadge(p), 3, p)
	}
	assert.Equal(t, "!!!", PriorityBadge(domain.PriorityHigh))
	assert.Equal(t, "   ", PriorityBadge(domain.Priority("")))
}

func TestStatusLine_RenderFitsWidth(t *testing.T) {
	styles := DefaultStyles()
	line := NewStatusLine(40, &styles)

	out := line.Render(StatusLineInfo{
		Notice:  "Added task #12",
		Summary: "1 to do",
		KeyHints: []KeyHint{
			{Key: "j/k", Desc: "nav"},
			{Key: "enter", Desc: "details"},
			{Key: "n", Desc: "new"},
			{Key: "?", Desc: "help"},
		},
	})

	assert.Equal(t, 40, lipgloss.Width(out))
	assert.Contains(t, out, "...")
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, " "), "1 to do"))

	line.SetWidth(120)
	wide := line.Render(StatusLineInfo{Summary: "1 to do", KeyHints: []KeyHint{{Key: "q", Desc: "quit"}}})
	assert.Equal(t, 120, lipgloss.Width(wide))
	assert.NotContains(t, wide, "...")
}
