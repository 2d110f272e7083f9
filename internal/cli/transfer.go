package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasktrack/internal/app"
)

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append tasks from a file",
		Long: `Append every task found in a JSON or YAML file.

The format follows the extension: .yaml and .yml are read as YAML,
anything else as JSON. Every imported task gets a new id; ids in the
file are ignored. Nothing is imported if the file is invalid.

Examples:
  tasktrack import backup.json
  tasktrack import tasks.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.TaskService().Import(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks from %s\n", n, args[0])
			return nil
		},
	}
	return cmd
}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write all tasks to a file",
		Long: `Write the whole task list to a JSON or YAML file.

The format follows the extension: .yaml and .yml are written as YAML,
anything else as pretty-printed JSON. An existing file is replaced.

Examples:
  tasktrack export backup.json
  tasktrack export tasks.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.TaskService()
			if err := svc.Export(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", svc.Len(), args[0])
			return nil
		},
	}
	return cmd
}
