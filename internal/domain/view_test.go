package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseView(t *testing.T) {
	assert.Equal(t, ViewInProgress, ParseView("In-Progress"))
	assert.Equal(t, ViewWeek, ParseView("WEEK"))
	assert.Equal(t, ViewAll, ParseView("someday"))
}

func TestView_NextCycles(t *testing.T) {
	v := ViewAll
	for range AllViews() {
		v = v.Next()
	}
	assert.Equal(t, ViewAll, v)
}

func TestView_Matches(t *testing.T) {
	today := Today(testNow)
	yesterday := today.AddDays(-1)
	late := &Task{Status: StatusTodo, DueDate: &yesterday}
	doneToday := &Task{Status: StatusCompleted, DueDate: &today}

	assert.True(t, ViewAll.Matches(late, today))
	assert.True(t, ViewTodo.Matches(late, today))
	assert.True(t, ViewOverdue.Matches(late, today))
	assert.False(t, ViewWeek.Matches(late, today))

	assert.True(t, ViewCompleted.Matches(doneToday, today))
	assert.False(t, ViewToday.Matches(doneToday, today))
	assert.True(t, ViewWeek.Matches(doneToday, today))
	assert.False(t, ViewInProgress.Matches(doneToday, today))
}
