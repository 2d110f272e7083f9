package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasktrack/internal/app"
	"github.com/runoshun/tasktrack/internal/domain"
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts",
		Long:  `Show the number of tasks per status, overdue and due today.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := c.TaskService()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, s := range domain.AllStatuses() {
				_, _ = fmt.Fprintf(tw, "%s:\t%d\n", s.Display(), svc.CountByStatus(s))
			}
			_, _ = fmt.Fprintf(tw, "Overdue:\t%d\n", len(svc.Overdue()))
			_, _ = fmt.Fprintf(tw, "Due today:\t%d\n", len(svc.DueToday()))
			_, _ = fmt.Fprintf(tw, "Total:\t%d\n", svc.Len())
			return tw.Flush()
		},
	}
	return cmd
}
