// Package cli provides the command-line interface for tasktrack.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasktrack/internal/app"
	"github.com/runoshun/tasktrack/internal/domain"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupTask     = "task"
	groupTransfer = "transfer"
)

// NewRootCommand creates the root command for tasktrack.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var storeFile string

	root := &cobra.Command{
		Use:   "tasktrack",
		Short: "Personal task tracker",
		Long: `tasktrack keeps a personal task list in a JSON file.

Tasks have a title, description, priority, status and an optional
due date. Every change is saved immediately. Run without a command
to open the interactive terminal UI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if storeFile != "" {
				c.SetStorePath(storeFile)
			}

			if c.AppConfig != nil {
				for _, w := range c.AppConfig.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
				}
			}
			return nil
		},
		// Mutations only log save failures; a one-shot command must not exit 0 after one.
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if c == nil {
				return nil
			}
			if err := c.PersistErr(); err != nil {
				return fmt.Errorf("%w: %w", domain.ErrNotSaved, err)
			}
			return nil
		},
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVarP(&storeFile, "file", "f", "", "Save file to use (default from config, tasks.json)")

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupTransfer, Title: "Import and Export:"},
	)

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	statusCmd := newStatusCommand(c)
	statusCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	clearCmd := newClearCommand(c)
	clearCmd.GroupID = groupTask

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// Import and export commands
	importCmd := newImportCommand(c)
	importCmd.GroupID = groupTransfer

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupTransfer

	root.AddCommand(
		configCmd,
		addCmd,
		listCmd,
		showCmd,
		editCmd,
		statusCmd,
		rmCmd,
		clearCmd,
		statsCmd,
		tuiCmd,
		importCmd,
		exportCmd,
	)

	return root
}
