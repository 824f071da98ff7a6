// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server exposing the training calculator.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/ftracker/internal/mcp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to stderr.

CONFIGURATION:

  {
    "mcpServers": {
      "ftracker": {
        "command": "ftracker",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  training_info         Summarise one package (code + values)
  list_training_types   List workout codes and their fields

AVAILABLE RESOURCES:

  ftracker://types      Workout codes and package fields
  ftracker://sample     Report for the built-in sample packages`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		log.Info().Str("version", mcp.Version).Msg("mcp server starting")
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
