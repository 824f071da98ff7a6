// ABOUTME: CLI command for summarising workout packages.
// ABOUTME: Reads built-in or file packages and renders them in the chosen format.
package main

import (
	"fmt"
	"os"

	"github.com/harperreed/ftracker/internal/report"
	"github.com/harperreed/ftracker/internal/tracker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	showInput  string
	showFormat string
)

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"s"},
	Short:   "Summarise workout packages",
	Long: `Summarise workout packages, one line per workout.

Without --input the built-in sample packages are used:

  SWM  720 1 80 25 40
  RUN  15000 1 75
  WLK  9000 1 75 180

INPUT FILE:

  A YAML list of packages:

    - code: RUN
      data: [15000, 1, 75]
    - code: WLK
      data: [9000, 1, 75, 180]

FORMATS:

  text       One summary line per workout (default)
  json       Structured JSON report
  yaml       Structured YAML report
  markdown   Markdown table

A package with an unknown code or the wrong number of values is reported on
stderr and skipped; the remaining packages are still printed.

EXAMPLES:

  ftracker show
  ftracker show -i packages.yaml
  ftracker show -f json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd)
	},
}

func runShow(cmd *cobra.Command) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}

	pkgs, err := loadPackages()
	if err != nil {
		return err
	}

	if err := tracker.Run(cmd.OutOrStdout(), pkgs, format); err != nil {
		return fmt.Errorf("some packages were rejected: %w", err)
	}
	return nil
}

// resolveFormat applies the --format flag over the configured default.
func resolveFormat() (report.Format, error) {
	if showFormat != "" {
		return report.ParseFormat(showFormat)
	}
	return cfg.GetFormat()
}

// loadPackages reads --input, then the configured packages file, then the samples.
func loadPackages() ([]tracker.Package, error) {
	path := showInput
	if path == "" {
		path = cfg.GetPackagesPath()
	}
	if path == "" {
		return tracker.DefaultPackages(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open packages: %w", err)
	}
	defer func() { _ = f.Close() }()

	pkgs, err := tracker.LoadPackages(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	log.Debug().Str("file", path).Int("packages", len(pkgs)).Msg("packages loaded")
	return pkgs, nil
}

func init() {
	showCmd.Flags().StringVarP(&showInput, "input", "i", "", "YAML file of packages (default: built-in samples)")
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "", "output format: text, json, yaml, markdown")
	rootCmd.Flags().AddFlagSet(showCmd.Flags())
	rootCmd.AddCommand(showCmd)
}
