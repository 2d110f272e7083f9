package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/runoshun/tasktrack/internal/app"
	"github.com/runoshun/tasktrack/internal/domain"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage tasktrack configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were found and the final merged configuration.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if c.ConfigManager != nil {
				_, _ = fmt.Fprintln(w, "[Loaded from]")
				for _, info := range []domain.ConfigInfo{
					c.ConfigManager.GlobalConfigInfo(),
					c.ConfigManager.LocalConfigInfo(),
				} {
					if info.Path == "" {
						continue
					}
					if info.Exists {
						_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
					} else {
						_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
					}
				}
				_, _ = fmt.Fprintln(w)
			}

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, cfg)
		},
	}
	return cmd
}

// formatEffectiveConfig writes cfg as TOML.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(cfg)
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the default config template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), domain.RenderConfigTemplate(domain.NewDefaultConfig()))
			return err
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file from the template",
		Long: `Create a commented config file with default values.

Without --global the file is .tasktrack.toml in the working directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.ConfigManager == nil {
				return errors.New("config manager not available")
			}

			cfg := domain.NewDefaultConfig()
			var info domain.ConfigInfo
			var err error
			if global {
				err = c.ConfigManager.InitGlobalConfig(cfg)
				info = c.ConfigManager.GlobalConfigInfo()
			} else {
				err = c.ConfigManager.InitLocalConfig(cfg)
				info = c.ConfigManager.LocalConfigInfo()
			}
			if err != nil {
				if errors.Is(err, domain.ErrConfigExists) {
					return fmt.Errorf("%w: %s", err, info.Path)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", info.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&global, "global", "g", false, "Create the global config file")
	return cmd
}
