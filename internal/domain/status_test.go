package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"TODO", StatusTodo},
		{"todo", StatusTodo},
		{"in_progress", StatusInProgress},
		{"in-progress", StatusInProgress},
		{"Completed", StatusCompleted},
		{"done", StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStatus("blocked")
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestStatus_RankFollowsDeclarationOrder(t *testing.T) {
	all := AllStatuses()
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Rank(), all[i].Rank())
	}
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "To Do", StatusTodo.Display())
	assert.Equal(t, "In Progress", StatusInProgress.Display())
	assert.Equal(t, "Completed", StatusCompleted.Display())
	assert.Equal(t, "weird", Status("weird").Display())
}

func TestStatus_TextRoundTrip(t *testing.T) {
	var s Status
	require.NoError(t, s.UnmarshalText([]byte("IN_PROGRESS")))
	assert.Equal(t, StatusInProgress, s)

	assert.Error(t, s.UnmarshalText([]byte("in_progress")))
	_, err := Status("nope").MarshalText()
	assert.Error(t, err)
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("high")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("urgent")
	assert.True(t, errors.Is(err, ErrInvalidPriority))
}

func TestPriority_OrderingAndLabels(t *testing.T) {
	assert.Less(t, PriorityLow.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityHigh.Rank())
	assert.Equal(t, "Medium", PriorityMedium.Display())
	assert.Equal(t, "#F44336", PriorityHigh.Color())
	assert.False(t, Priority("").IsValid())
}
