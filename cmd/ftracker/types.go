// ABOUTME: CLI command for listing supported workout codes.
// ABOUTME: Shows each code with its training type and package fields.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/ftracker/internal/tracker"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:     "types",
	Aliases: []string{"t"},
	Short:   "List workout codes",
	Long: `List the workout codes ftracker understands.

Each package must carry exactly the listed fields, in order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)

		faint.Fprintf(out, "%s %s %s\n", padRight("CODE", 6), padRight("TYPE", 15), "FIELDS")
		for _, t := range tracker.TrainingTypes() {
			fmt.Fprintf(out, "%s %s %s\n",
				padRight(t.Code, 6),
				padRight(t.Name, 15),
				strings.Join(fieldNames(t), ", "))
		}
		return nil
	},
}

func fieldNames(t tracker.TrainingType) []string {
	names := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		if f.Unit != "" {
			names = append(names, fmt.Sprintf("%s (%s)", f.Name, f.Unit))
			continue
		}
		names = append(names, f.Name)
	}
	return names
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
