package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasktrack/internal/app"
	"github.com/runoshun/tasktrack/internal/domain"
)

// newClearCommand creates the clear command.
func newClearCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks",
		Long: `Delete every task and save the empty list.

Asks for confirmation unless --yes is given. Task ids are not reused
for the rest of the session.

Examples:
  tasktrack clear
  tasktrack clear --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := c.TaskService()
			count := svc.Len()

			if !yes {
				prompt := fmt.Sprintf("Delete all %d tasks? This cannot be undone.", count)
				if err := confirm(cmd, prompt); err != nil {
					return err
				}
			}

			svc.ClearAll()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d tasks\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

// confirm asks a yes/no question on the command's input.
// Anything but y/yes returns domain.ErrConfirmationDeclined.
func confirm(cmd *cobra.Command, prompt string) error {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)

	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return domain.ErrConfirmationDeclined
	}
}
