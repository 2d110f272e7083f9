package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/runoshun/tasktrack/internal/app"
	"github.com/runoshun/tasktrack/internal/domain"
	"github.com/runoshun/tasktrack/internal/infra/codec"
)

// Output widths for human-readable listings.
const (
	listTitleWidth = 60
	showWrapWidth  = 78
)

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Status      string
		Due         string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task.

The title is required and limited to 100 characters; the description
is limited to 500 characters. Both are trimmed.

Examples:
  # Create a task
  tasktrack add --title "Buy milk"

  # Create a high-priority task due on a date
  tasktrack add --title "File taxes" --priority high --due 2024-04-15

  # Create a task with a description
  tasktrack add --title "Write report" --description "Q1 numbers"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft := domain.TaskDraft{
				Title:       opts.Title,
				Description: opts.Description,
				DueDate:     opts.Due,
			}
			if err := applyEnumFlags(&draft, opts.Priority, opts.Status); err != nil {
				return err
			}

			task, err := c.TaskService().Create(draft)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title (required)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: low, medium, high (default medium)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Status: todo, in_progress, completed (default todo)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// applyEnumFlags parses priority and status flag values into draft.
// Empty values leave the draft unchanged.
func applyEnumFlags(draft *domain.TaskDraft, priority, status string) error {
	if priority != "" {
		p, err := domain.ParsePriority(priority)
		if err != nil {
			return err
		}
		draft.Priority = p
	}
	if status != "" {
		s, err := domain.ParseStatus(status)
		if err != nil {
			return err
		}
		draft.Status = s
	}
	return nil
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status   string
		Priority string
		Search   string
		Sort     string
		View     string
		Overdue  bool
		Today    bool
		Week     bool
		JSON     bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display a list of tasks.

Output format is tab-separated with columns:
  ID, STATUS, PRIORITY, DUE, TITLE

Overdue tasks are marked with '!' after the due date.
Filters combine with AND. --sort orders this output only; the save
file keeps its order.

Examples:
  # List all tasks in stored order
  tasktrack list

  # List tasks still to do, highest priority first
  tasktrack list --status todo --sort priority

  # List overdue tasks
  tasktrack list --overdue

  # Search titles and descriptions
  tasktrack list --search milk

  # Machine-readable output
  tasktrack list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := c.TaskService()

			if opts.Sort != "" {
				svc.Sort(opts.Sort)
			}

			view := domain.ViewAll
			switch {
			case opts.Overdue:
				view = domain.ViewOverdue
			case opts.Today:
				view = domain.ViewToday
			case opts.Week:
				view = domain.ViewWeek
			case opts.View != "":
				view = domain.ParseView(opts.View)
			}

			tasks := svc.InView(view)
			if opts.Search != "" {
				tasks = intersect(tasks, svc.Search(opts.Search))
			}
			if opts.Status != "" {
				status, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				tasks = intersect(tasks, svc.ByStatus(status))
			}
			if opts.Priority != "" {
				priority, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return err
				}
				tasks = intersect(tasks, svc.ByPriority(priority))
			}

			if opts.JSON {
				data, err := codec.JSON{}.Encode(tasks)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			printTaskList(cmd.OutOrStdout(), tasks, svc.Today())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Filter by priority")
	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "Filter by text in title or description")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "", "Sort by title, priority, duedate, status or created")
	cmd.Flags().StringVar(&opts.View, "view", "", "Named view: all, todo, in_progress, completed, overdue, today, week")
	cmd.Flags().BoolVar(&opts.Overdue, "overdue", false, "Only unfinished tasks past their due date")
	cmd.Flags().BoolVar(&opts.Today, "today", false, "Only unfinished tasks due today")
	cmd.Flags().BoolVar(&opts.Week, "week", false, "Only tasks due in the next 7 days")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	cmd.MarkFlagsMutuallyExclusive("overdue", "today", "week", "view")

	return cmd
}

// intersect keeps the tasks of base whose id also appears in other, preserving base order.
func intersect(base, other []*domain.Task) []*domain.Task {
	ids := make(map[int]struct{}, len(other))
	for _, t := range other {
		ids[t.ID] = struct{}{}
	}
	out := base[:0:0]
	for _, t := range base {
		if _, ok := ids[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []*domain.Task, today domain.Date) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDUE\tTITLE")
	for _, task := range tasks {
		due := "-"
		if task.DueDate != nil {
			due = task.DueDate.String()
			if task.IsOverdue(today) {
				due += "!"
			}
		}

		title := task.Title
		if runewidth.StringWidth(title) > listTitleWidth {
			title = runewidth.Truncate(title, listTitleWidth, "...")
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Status,
			task.Priority,
			due,
			title,
		)
	}
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long: `Show all fields of a task.

Examples:
  tasktrack show 3
  tasktrack show "#3" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := findTask(c, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				data, err := codec.JSON{}.Encode([]*domain.Task{task})
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			printTaskDetails(cmd.OutOrStdout(), task, c.TaskService().Today())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

// printTaskDetails prints a task in a readable layout.
func printTaskDetails(w io.Writer, task *domain.Task, today domain.Date) {
	_, _ = fmt.Fprintf(w, "# Task %d: %s\n\n", task.ID, task.Title)

	if task.Description != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", wordwrap.String(task.Description, showWrapWidth))
	}

	_, _ = fmt.Fprintf(w, "Status: %s\n", task.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority: %s\n", task.Priority.Display())

	switch {
	case task.DueDate == nil:
		_, _ = fmt.Fprintln(w, "Due: none")
	case task.IsOverdue(today):
		_, _ = fmt.Fprintf(w, "Due: %s (overdue)\n", task.DueDate)
	case task.IsDueToday(today):
		_, _ = fmt.Fprintf(w, "Due: %s (today)\n", task.DueDate)
	default:
		_, _ = fmt.Fprintf(w, "Due: %s\n", task.DueDate)
	}

	_, _ = fmt.Fprintf(w, "Created: %s\n", task.CreatedAt.Format(time.DateTime))
	if task.CompletedAt != nil {
		_, _ = fmt.Fprintf(w, "Completed: %s\n", task.CompletedAt.Format(time.DateTime))
	}
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Status      string
		Due         string
		ClearDue    bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task fields",
		Long: `Edit an existing task. Only the given flags are changed.

Examples:
  # Rename a task
  tasktrack edit 1 --title "Buy oat milk"

  # Move the due date
  tasktrack edit 1 --due 2024-05-01

  # Remove the due date
  tasktrack edit 1 --clear-due`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := findTask(c, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("description") &&
				!flags.Changed("priority") && !flags.Changed("status") &&
				!flags.Changed("due") && !opts.ClearDue {
				return domain.ErrNoFieldsToUpdate
			}

			draft := domain.DraftFromTask(task)
			if flags.Changed("title") {
				draft.Title = opts.Title
			}
			if flags.Changed("description") {
				draft.Description = opts.Description
			}
			if flags.Changed("due") {
				draft.DueDate = opts.Due
			}
			if opts.ClearDue {
				draft.DueDate = ""
			}
			if err := applyEnumFlags(&draft, opts.Priority, opts.Status); err != nil {
				return err
			}

			if _, err := c.TaskService().Edit(task.ID, draft); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.ClearDue, "clear-due", false, "Remove the due date")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")

	return cmd
}

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change task status",
		Long: `Move a task to todo, in_progress or completed.

Completing a task records the completion time; moving it back clears it.

Examples:
  tasktrack status 4 in_progress
  tasktrack status 4 done`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}

			task, err := c.TaskService().SetStatus(id, status)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is now %s\n", task.ID, task.Status.Display())
			return nil
		},
	}
	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task. Asks for confirmation unless --yes is given.

Examples:
  tasktrack rm 1
  tasktrack rm "#1" --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := findTask(c, args[0])
			if err != nil {
				return err
			}

			if !yes {
				prompt := fmt.Sprintf("Delete task #%d %q?", task.ID, task.Title)
				if err := confirm(cmd, prompt); err != nil {
					return err
				}
			}

			c.TaskService().DeleteByID(task.ID)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", task.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

// findTask parses the id argument and looks the task up.
func findTask(c *app.Container, arg string) (*domain.Task, error) {
	id, err := parseTaskID(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid task ID: %w", err)
	}
	task, ok := c.TaskService().FindByID(id)
	if !ok {
		return nil, fmt.Errorf("task #%d: %w", id, domain.ErrTaskNotFound)
	}
	return task, nil
}

// parseTaskID parses a task ID string to int.
func parseTaskID(s string) (int, error) {
	// Remove leading # if present
	s = strings.TrimPrefix(s, "#")
	var id int
	_, err := fmt.Sscanf(s, "%d", &id)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("task ID must be positive")
	}
	return id, nil
}
