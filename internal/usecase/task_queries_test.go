package usecase

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/runoshun/tasktrack/internal/domain"
)

func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func titlesOf(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestSort_Priority(t *testing.T) {
	svc, _, _ := newTestService(t,
		&domain.Task{ID: 1, Title: "low", Priority: domain.PriorityLow},
		&domain.Task{ID: 2, Title: "high", Priority: domain.PriorityHigh},
		&domain.Task{ID: 3, Title: "medium", Priority: domain.PriorityMedium},
	)

	assert.Equal(t, domain.SortByPriority, svc.Sort("PRIORITY"))
	assert.Equal(t, []string{"high", "medium", "low"}, titlesOf(svc.Tasks()))
}

func TestSort_DueDateUndatedLast(t *testing.T) {
	svc, gw, _ := newTestService(t,
		&domain.Task{ID: 1, Title: "none"},
		&domain.Task{ID: 2, Title: "jan5", DueDate: dateRef(domain.NewDate(2024, time.January, 5))},
		&domain.Task{ID: 3, Title: "jan1", DueDate: dateRef(domain.NewDate(2024, time.January, 1))},
	)

	svc.Sort("duedate")
	assert.Equal(t, []string{"jan1", "jan5", "none"}, titlesOf(svc.Tasks()))
	assert.Equal(t, 0, gw.SaveCalls)
}

func TestSort_UnknownCriterionFallsBackToTitle(t *testing.T) {
	svc, _, _ := newTestService(t,
		&domain.Task{ID: 1, Title: "banana"},
		&domain.Task{ID: 2, Title: "Apple"},
		&domain.Task{ID: 3, Title: "cherry"},
	)

	assert.Equal(t, domain.SortByTitle, svc.Sort("color"))
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, titlesOf(svc.Tasks()))
}

func TestSort_StatusAndCreated(t *testing.T) {
	svc, _, _ := newTestService(t,
		&domain.Task{ID: 1, Title: "done", Status: domain.StatusCompleted, CreatedAt: testNow},
		&domain.Task{ID: 2, Title: "todo", Status: domain.StatusTodo, CreatedAt: testNow.Add(time.Hour)},
		&domain.Task{ID: 3, Title: "doing", Status: domain.StatusInProgress, CreatedAt: testNow.Add(-time.Hour)},
	)

	svc.Sort("status")
	assert.Equal(t, []string{"todo", "doing", "done"}, titlesOf(svc.Tasks()))

	svc.Sort("created")
	assert.Equal(t, []string{"doing", "done", "todo"}, titlesOf(svc.Tasks()))
}

func TestDueDateQueries(t *testing.T) {
	today := domain.Today(testNow)
	svc, _, _ := newTestService(t,
		&domain.Task{ID: 1, Title: "late", Status: domain.StatusTodo, DueDate: dateRef(today.AddDays(-1))},
		&domain.Task{ID: 2, Title: "late but done", Status: domain.StatusCompleted, DueDate: dateRef(today.AddDays(-1))},
		&domain.Task{ID: 3, Title: "today", Status: domain.StatusInProgress, DueDate: dateRef(today)},
		&domain.Task{ID: 4, Title: "today done", Status: domain.StatusCompleted, DueDate: dateRef(today)},
		&domain.Task{ID: 5, Title: "in six days", Status: domain.StatusTodo, DueDate: dateRef(today.AddDays(6))},
		&domain.Task{ID: 6, Title: "in seven days", Status: domain.StatusTodo, DueDate: dateRef(today.AddDays(7))},
		&domain.Task{ID: 7, Title: "undated", Status: domain.StatusTodo},
	)

	assert.Equal(t, []string{"late"}, titlesOf(svc.Overdue()))
	assert.Equal(t, []string{"today"}, titlesOf(svc.DueToday()))
	assert.Equal(t, []string{"today", "today done", "in six days"}, titlesOf(svc.DueThisWeek()))
}

func TestByStatusAndPriority(t *testing.T) {
	svc, _, _ := newTestService(t,
		&domain.Task{ID: 1, Title: "a", Status: domain.StatusTodo, Priority: domain.PriorityHigh},
		&domain.Task{ID: 2, Title: "b", Status: domain.StatusCompleted, Priority: domain.PriorityHigh},
		&domain.Task{ID: 3, Title: "c", Status: domain.StatusTodo, Priority: domain.PriorityLow},
	)

	assert.Equal(t, []string{"a", "c"}, titlesOf(svc.ByStatus(domain.StatusTodo)))
	assert.Equal(t, []string{"a", "b"}, titlesOf(svc.ByPriority(domain.PriorityHigh)))
	assert.Empty(t, svc.ByStatus(domain.StatusInProgress))

	got := svc.ByStatus(domain.StatusTodo)
	got[0].Title = "changed"
	again, _ := svc.FindByID(1)
	assert.Equal(t, "a", again.Title)
}

func TestSearch(t *testing.T) {
	svc, _, _ := newTestService(t,
		&domain.Task{ID: 1, Title: "Buy Milk"},
		&domain.Task{ID: 2, Title: "Call mom", Description: "about the MILKSHAKE recipe"},
		&domain.Task{ID: 3, Title: "Write report"},
	)

	assert.Equal(t, []string{"Buy Milk", "Call mom"}, titlesOf(svc.Search("milk")))
	assert.Equal(t, []string{"Buy Milk", "Call mom", "Write report"}, titlesOf(svc.Search("")))
	assert.Equal(t, []string{"Buy Milk", "Call mom", "Write report"}, titlesOf(svc.Search("   ")))
	assert.Empty(t, svc.Search("zebra"))
}

func TestCountByStatus_SumsToTotal(t *testing.T) {
	svc, _, _ := newTestService(t)
	statuses := []domain.Status{domain.StatusTodo, domain.StatusCompleted, domain.StatusInProgress, domain.StatusTodo}

	check := func() {
		sum := 0
		for _, s := range domain.AllStatuses() {
			sum += svc.CountByStatus(s)
		}
		assert.Equal(t, svc.Len(), sum)
	}

	check()
	for _, s := range statuses {
		task := domain.NewTask("t", "", testNow)
		task.SetStatus(s, testNow)
		svc.Add(task)
		check()
	}
	assert.Equal(t, 2, svc.CountByStatus(domain.StatusTodo))

	svc.DeleteByID(1)
	check()
	svc.ClearAll()
	check()
}

func TestInView(t *testing.T) {
	today := domain.Today(testNow)
	svc, _, _ := newTestService(t,
		&domain.Task{ID: 1, Title: "late", Status: domain.StatusTodo, DueDate: dateRef(today.AddDays(-2))},
		&domain.Task{ID: 2, Title: "doing", Status: domain.StatusInProgress},
	)

	assert.Equal(t, []string{"late", "doing"}, titlesOf(svc.InView(domain.ViewAll)))
	assert.Equal(t, []string{"late"}, titlesOf(svc.InView(domain.ViewOverdue)))
	assert.Equal(t, []string{"doing"}, titlesOf(svc.InView(domain.ViewInProgress)))
	assert.Empty(t, svc.InView(domain.ViewToday))
}
