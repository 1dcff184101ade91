// Package cli implements the knapsack command-line interface.
//
// This package provides commands for inspecting nested-container pack
// manifests, querying and removing items from them, exporting diagrams, and
// serving packs over HTTP. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - tree: Render a pack manifest as a styled text tree
//   - query: Existence, parent, and ancestry queries against a pack
//   - remove: Detach matching items and write the surviving pack
//   - export: Generate DOT, SVG, or JSON snapshots
//   - serve: Expose packs over an HTTP API
//   - browse: Interactively explore a pack in the terminal
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/knapsack/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/knapsack/pkg/buildinfo"
)

// Execute runs the knapsack CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "knapsack",
		Short:        "Knapsack inspects and edits nested-container inventories",
		Long:         `Knapsack is a CLI tool for working with nested-container inventories ("packs"): render them as trees, search them, remove items from any depth, export diagrams, or serve them over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newTreeCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newBrowseCmd())

	return root.ExecuteContext(ctx)
}
