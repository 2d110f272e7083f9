package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasktrack/internal/app"
	"github.com/runoshun/tasktrack/internal/domain"
	"github.com/runoshun/tasktrack/internal/infra/jsonstore"
	"github.com/runoshun/tasktrack/internal/testutil"
)

var testNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.Local)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(t *testing.T, tasks ...*domain.Task) (*app.Container, *testutil.MockTaskGateway) {
	t.Helper()
	gw := testutil.NewMockTaskGateway(tasks...)
	container := app.NewWithDeps(
		app.Config{WorkDir: t.TempDir()},
		gw,
		&testutil.MockClock{NowTime: testNow},
		nil,
	)
	return container, gw
}

// newFileContainer creates an app.Container backed by a real save file in dir.
func newFileContainer(t *testing.T, dir string) *app.Container {
	t.Helper()
	clock := &testutil.MockClock{NowTime: testNow}
	storePath := filepath.Join(dir, domain.DefaultStoreFileName)
	return app.NewWithDeps(
		app.Config{WorkDir: dir, StorePath: storePath},
		jsonstore.New(storePath, clock),
		clock,
		nil,
	)
}

// seedTask builds a stored task with the given id.
func seedTask(id int, title string, status domain.Status, priority domain.Priority, due *domain.Date) *domain.Task {
	task := domain.NewTask(title, "", testNow.Add(-time.Duration(id)*time.Hour))
	task.ID = id
	task.Priority = priority
	task.SetStatus(status, testNow)
	task.DueDate = due
	return task
}

func datePtr(y int, m time.Month, d int) *domain.Date {
	date := domain.NewDate(y, m, d)
	return &date
}

// =============================================================================
// Add Command Tests
// =============================================================================

func TestNewAddCommand_CreateTask(t *testing.T) {
	container, gw := newTestContainer(t)

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--title", "  Buy milk  "})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Created task #1")
	require.Len(t, gw.Saved, 1)
	assert.Equal(t, "Buy milk", gw.Saved[0].Title)
	assert.Equal(t, domain.StatusTodo, gw.Saved[0].Status)
	assert.Equal(t, domain.PriorityMedium, gw.Saved[0].Priority)
	assert.Nil(t, gw.Saved[0].DueDate)
}

func TestNewAddCommand_AllFields(t *testing.T) {
	container, gw := newTestContainer(t)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"-t", "File taxes",
		"-d", "Use last year's folder",
		"-p", "high",
		"--status", "in_progress",
		"--due", "2024-04-15",
	})

	require.NoError(t, cmd.Execute())
	require.Len(t, gw.Saved, 1)
	task := gw.Saved[0]
	assert.Equal(t, "Use last year's folder", task.Description)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, domain.StatusInProgress, task.Status)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2024-04-15", task.DueDate.String())
}

func TestNewAddCommand_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		args    []string
	}{
		{name: "blank title", args: []string{"--title", "   "}, wantErr: domain.ErrEmptyTitle},
		{name: "title too long", args: []string{"--title", strings.Repeat("a", 101)}, wantErr: domain.ErrTitleTooLong},
		{name: "bad priority", args: []string{"--title", "x", "--priority", "urgent"}, wantErr: domain.ErrInvalidPriority},
		{name: "bad status", args: []string{"--title", "x", "--status", "later"}, wantErr: domain.ErrInvalidStatus},
		{name: "bad due date", args: []string{"--title", "x", "--due", "15/04/2024"}, wantErr: domain.ErrInvalidDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, gw := newTestContainer(t)

			cmd := newAddCommand(container)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, gw.SaveCalls)
		})
	}
}

func TestNewAddCommand_TitleRequired(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}

// =============================================================================
// List Command Tests
// =============================================================================

func listFixture() []*domain.Task {
	return []*domain.Task{
		seedTask(1, "Pay rent", domain.StatusTodo, domain.PriorityHigh, datePtr(2024, 1, 5)),
		seedTask(2, "Buy milk", domain.StatusInProgress, domain.PriorityLow, datePtr(2024, 1, 10)),
		seedTask(3, "Read book", domain.StatusCompleted, domain.PriorityMedium, nil),
		seedTask(4, "Call plumber", domain.StatusTodo, domain.PriorityMedium, datePtr(2024, 1, 14)),
	}
}

func TestNewListCommand_ShowsAllInStoredOrder(t *testing.T) {
	container, _ := newTestContainer(t, listFixture()...)

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "2024-01-05!")
	assert.NotContains(t, out, "2024-01-10!")
	assert.Less(t, strings.Index(out, "Pay rent"), strings.Index(out, "Buy milk"))
	assert.Less(t, strings.Index(out, "Read book"), strings.Index(out, "Call plumber"))
}

func TestNewListCommand_Empty(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "No tasks.\n", buf.String())
}

func TestNewListCommand_Filters(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "status",
			args:    []string{"--status", "todo"},
			want:    []string{"Pay rent", "Call plumber"},
			notWant: []string{"Buy milk", "Read book"},
		},
		{
			name:    "priority",
			args:    []string{"--priority", "medium"},
			want:    []string{"Read book", "Call plumber"},
			notWant: []string{"Pay rent", "Buy milk"},
		},
		{
			name:    "overdue",
			args:    []string{"--overdue"},
			want:    []string{"Pay rent"},
			notWant: []string{"Buy milk", "Read book", "Call plumber"},
		},
		{
			name:    "today",
			args:    []string{"--today"},
			want:    []string{"Buy milk"},
			notWant: []string{"Pay rent", "Read book", "Call plumber"},
		},
		{
			name:    "week",
			args:    []string{"--week"},
			want:    []string{"Buy milk", "Call plumber"},
			notWant: []string{"Pay rent", "Read book"},
		},
		{
			name:    "search",
			args:    []string{"-q", "MILK"},
			want:    []string{"Buy milk"},
			notWant: []string{"Pay rent", "Read book", "Call plumber"},
		},
		{
			name:    "combined",
			args:    []string{"--view", "todo", "--priority", "high"},
			want:    []string{"Pay rent"},
			notWant: []string{"Buy milk", "Read book", "Call plumber"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, _ := newTestContainer(t, listFixture()...)

			cmd := newListCommand(container)
			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestNewListCommand_SortDoesNotSave(t *testing.T) {
	container, gw := newTestContainer(t, listFixture()...)

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--sort", "title"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Less(t, strings.Index(out, "Buy milk"), strings.Index(out, "Call plumber"))
	assert.Less(t, strings.Index(out, "Call plumber"), strings.Index(out, "Pay rent"))
	assert.Less(t, strings.Index(out, "Pay rent"), strings.Index(out, "Read book"))
	assert.Zero(t, gw.SaveCalls)
}

func TestNewListCommand_HelpSaysSortIsOutputOnly(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newListCommand(container)

	assert.Contains(t, cmd.Long, "--sort orders this output only")
	assert.NotContains(t, cmd.Long, "reorders the stored list")
}

func TestNewListCommand_JSON(t *testing.T) {
	container, _ := newTestContainer(t, listFixture()[2])

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"title": "Read book"`)
	assert.Contains(t, buf.String(), `"status": "COMPLETED"`)
	assert.Contains(t, buf.String(), `"id": 3`)
}

func TestNewListCommand_InvalidStatus(t *testing.T) {
	container, _ := newTestContainer(t, listFixture()...)

	cmd := newListCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--status", "someday"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrInvalidStatus)
}

func TestPrintTaskList_TruncatesLongTitles(t *testing.T) {
	task := seedTask(1, strings.Repeat("x", 80), domain.StatusTodo, domain.PriorityLow, nil)

	var buf bytes.Buffer
	printTaskList(&buf, []*domain.Task{task}, domain.Today(testNow))

	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", 61))
}

// =============================================================================
// Show Command Tests
// =============================================================================

func TestNewShowCommand_ShowsDetails(t *testing.T) {
	task := seedTask(1, "Pay rent", domain.StatusCompleted, domain.PriorityHigh, datePtr(2024, 1, 5))
	task.Description = "Transfer to landlord"
	container, _ := newTestContainer(t, task)

	cmd := newShowCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"#1"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "# Task 1: Pay rent")
	assert.Contains(t, out, "Transfer to landlord")
	assert.Contains(t, out, "Status: Completed")
	assert.Contains(t, out, "Priority: High")
	assert.Contains(t, out, "Due: 2024-01-05\n")
	assert.Contains(t, out, "Completed: 2024-01-10 09:30:00")
}

func TestNewShowCommand_OverdueAndToday(t *testing.T) {
	container, _ := newTestContainer(t, listFixture()...)

	cmd := newShowCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Due: 2024-01-05 (overdue)")

	cmd = newShowCommand(container)
	buf.Reset()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"2"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Due: 2024-01-10 (today)")
}

func TestNewShowCommand_NotFound(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newShowCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"42"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrTaskNotFound)
}

func TestNewShowCommand_InvalidID(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newShowCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"abc"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task ID")
}

// =============================================================================
// Edit Command Tests
// =============================================================================

func TestNewEditCommand_ChangesOnlyGivenFields(t *testing.T) {
	task := seedTask(1, "Pay rent", domain.StatusTodo, domain.PriorityHigh, datePtr(2024, 1, 5))
	task.Description = "Transfer"
	container, gw := newTestContainer(t, task)

	cmd := newEditCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1", "--title", "Pay February rent"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Updated task #1")
	require.Len(t, gw.Saved, 1)
	assert.Equal(t, "Pay February rent", gw.Saved[0].Title)
	assert.Equal(t, "Transfer", gw.Saved[0].Description)
	assert.Equal(t, domain.PriorityHigh, gw.Saved[0].Priority)
	require.NotNil(t, gw.Saved[0].DueDate)
	assert.Equal(t, "2024-01-05", gw.Saved[0].DueDate.String())
}

func TestNewEditCommand_ClearDue(t *testing.T) {
	container, gw := newTestContainer(t, listFixture()[0])

	cmd := newEditCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1", "--clear-due"})

	require.NoError(t, cmd.Execute())
	require.Len(t, gw.Saved, 1)
	assert.Nil(t, gw.Saved[0].DueDate)
}

func TestNewEditCommand_NoFields(t *testing.T) {
	container, gw := newTestContainer(t, listFixture()[0])

	cmd := newEditCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrNoFieldsToUpdate)
	assert.Zero(t, gw.SaveCalls)
}

func TestNewEditCommand_InvalidTitle(t *testing.T) {
	container, gw := newTestContainer(t, listFixture()[0])

	cmd := newEditCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1", "--title", ""})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrEmptyTitle)
	assert.Zero(t, gw.SaveCalls)
}

// =============================================================================
// Status Command Tests
// =============================================================================

func TestNewStatusCommand_CompleteAndReopen(t *testing.T) {
	container, gw := newTestContainer(t, listFixture()[0])

	cmd := newStatusCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1", "done"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Task #1 is now Completed")
	require.Len(t, gw.Saved, 1)
	assert.Equal(t, domain.StatusCompleted, gw.Saved[0].Status)
	assert.NotNil(t, gw.Saved[0].CompletedAt)

	cmd = newStatusCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1", "todo"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, domain.StatusTodo, gw.Saved[0].Status)
	assert.Nil(t, gw.Saved[0].CompletedAt)
}

func TestNewStatusCommand_Errors(t *testing.T) {
	container, _ := newTestContainer(t, listFixture()[0])

	cmd := newStatusCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1", "someday"})
	assert.ErrorIs(t, cmd.Execute(), domain.ErrInvalidStatus)

	cmd = newStatusCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"9", "todo"})
	assert.ErrorIs(t, cmd.Execute(), domain.ErrTaskNotFound)
}

// =============================================================================
// Rm Command Tests
// =============================================================================

func TestNewRmCommand_WithYes(t *testing.T) {
	container, gw := newTestContainer(t, listFixture()...)

	cmd := newRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"2", "--yes"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Deleted task #2")
	assert.Len(t, gw.Saved, 3)
	_, ok := container.TaskService().FindByID(2)
	assert.False(t, ok)
}

func TestNewRmCommand_Confirmation(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantCount int
	}{
		{name: "accepted", input: "y\n", wantCount: 3},
		{name: "accepted long form", input: "YES\n", wantCount: 3},
		{name: "declined", input: "n\n", wantErr: domain.ErrConfirmationDeclined, wantCount: 4},
		{name: "no input", input: "", wantErr: domain.ErrConfirmationDeclined, wantCount: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, _ := newTestContainer(t, listFixture()...)

			cmd := newRmCommand(container)
			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetIn(strings.NewReader(tt.input))
			cmd.SetArgs([]string{"1"})

			err := cmd.Execute()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, buf.String(), `Delete task #1 "Pay rent"? [y/N]: `)
			assert.Equal(t, tt.wantCount, container.TaskService().Len())
		})
	}
}

// =============================================================================
// Helper Tests
// =============================================================================

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "1", want: 1},
		{input: "#12", want: 12},
		{input: "0", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseTaskID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntersect_KeepsBaseOrder(t *testing.T) {
	tasks := listFixture()
	got := intersect(tasks, []*domain.Task{tasks[3], tasks[0]})

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
}
