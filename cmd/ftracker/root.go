// ABOUTME: Root Cobra command for ftracker CLI.
// ABOUTME: Loads config and sets up zerolog in PersistentPreRunE.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/ftracker/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ftracker",
	Short: "Workout statistics from fitness tracker packages",
	Long: `ftracker turns raw fitness tracker packages into workout summaries.

Each package is a workout code followed by sensor values. ftracker computes
distance (km), mean speed (km/h), and calories burned (kcal) and prints one
line per workout.

WORKOUT CODES:

  RUN   Running         action, duration, weight
  WLK   SportsWalking   action, duration, weight, height
  SWM   Swimming        action, duration, weight, length_pool, count_pool

  action is steps (RUN, WLK) or strokes (SWM), duration in hours,
  weight in kg, height in cm, length_pool in metres, count_pool in laps.

QUICK START:

  $ ftracker                         # Summarise the built-in sample packages
  $ ftracker show -i packages.yaml   # Summarise packages from a file
  $ ftracker show -f markdown        # Render as a Markdown table
  $ ftracker types                   # List codes and fields

MCP INTEGRATION:

  Run 'ftracker mcp' to start the Model Context Protocol server on stdio.

CONFIGURATION:

  Preferences live in ~/.config/ftracker/config.json (see 'ftracker config').`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level, err := cfg.GetLogLevel()
		if err != nil {
			return err
		}
		if verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(
			zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				NoColor:    color.NoColor,
				TimeFormat: time.RFC3339,
			},
		)
		log.Debug().Str("config", config.GetConfigPath()).Msg("config loaded")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
