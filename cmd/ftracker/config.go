// ABOUTME: CLI commands for viewing and editing ftracker preferences.
// ABOUTME: Supports show and set subcommands over the JSON config file.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/ftracker/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage preferences",
	Long: `View and edit ftracker preferences.

KEYS:

  format      default output format (text, json, yaml, markdown)
  log_level   zerolog level (debug, info, warn, error)
  packages    YAML packages file used when --input is not given

EXAMPLES:

  ftracker config show
  ftracker config set format markdown
  ftracker config set packages ~/workouts.yaml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		color.New(color.Faint).Fprintf(out, "# %s\n", config.GetConfigPath())
		fmt.Fprintln(out, string(data))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a preference",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"format", "log_level", "packages"},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		updated := *cfg
		switch key {
		case "format":
			updated.Format = value
			if _, err := updated.GetFormat(); err != nil {
				return err
			}
		case "log_level":
			updated.LogLevel = value
			if _, err := updated.GetLogLevel(); err != nil {
				return err
			}
		case "packages":
			updated.Packages = value
		default:
			return fmt.Errorf("unknown key: %s (use format, log_level, or packages)", key)
		}

		if err := updated.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		*cfg = updated

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
