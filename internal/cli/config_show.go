package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/taskdeck/internal/config"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// newConfigCmd creates the 'config' parent command.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage taskdeck configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

// AddConfigCommand adds the config command to the root command.
func AddConfigCommand(root *cobra.Command) {
	root.AddCommand(newConfigCmd())
}

// ConfigShowFlags holds flags specific to the config show command.
type ConfigShowFlags struct {
	// Format specifies the output format (yaml or json).
	Format string
}

// newConfigShowCmd creates the 'config show' subcommand.
func newConfigShowCmd() *cobra.Command {
	flags := &ConfigShowFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective taskdeck configuration after merging defaults, the
global config (~/.taskdeck/config.yaml), the project config
(.taskdeck/config.yaml), and TASKDECK_* environment variables.

Examples:
  taskdeck config show
  taskdeck config show --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flags.Format, "format", "yaml", "output format (yaml or json)")

	return cmd
}

// runConfigShow executes the config show command.
func runConfigShow(ctx context.Context, w io.Writer, flags *ConfigShowFlags) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if flags.Format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	styles := tui.NewOutputStyles()
	_, _ = fmt.Fprintln(w, styles.Info.Render("Effective taskdeck configuration"))
	_, _ = fmt.Fprint(w, string(data))
	_, _ = fmt.Fprintln(w)

	// Show where each config file would be read from
	if globalPath, perr := config.GlobalConfigPath(); perr == nil {
		printConfigLocation(w, styles, "Global", globalPath)
	}
	projectPath := config.ProjectConfigPath()
	if abs, aerr := filepath.Abs(projectPath); aerr == nil {
		projectPath = abs
	}
	printConfigLocation(w, styles, "Project", projectPath)

	return nil
}

// printConfigLocation prints a config file path, noting missing files.
func printConfigLocation(w io.Writer, styles *tui.OutputStyles, label, path string) {
	if _, err := os.Stat(path); err == nil {
		_, _ = fmt.Fprintln(w, styles.Dim.Render(label+": ")+path)
	} else {
		_, _ = fmt.Fprintln(w, styles.Dim.Render(label+": "+path+" (not found)"))
	}
}
