package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	kserr "github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/item"
	"github.com/matzehuels/knapsack/pkg/render"
)

const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"
)

// newExportCmd creates the export command, which converts a pack into a
// shareable format.
func newExportCmd() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "export <pack>",
		Short: "Export a pack as DOT, SVG, or a JSON snapshot",
		Long: `Export a pack manifest or snapshot in another format.

Formats:
  dot   Graphviz source, one node per item
  svg   rendered Graphviz diagram
  json  snapshot that round-trips through knapsack

Examples:
  knapsack export pack.toml --format svg -o pack.svg
  knapsack export pack.toml --format dot
  knapsack export pack.toml --format json -o snapshot.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			root, err := loadPack(args[0])
			if err != nil {
				return err
			}

			data, err := exportPack(root, format, detailed)
			if err != nil {
				return err
			}
			logger.Debugf("Generated %s: %d bytes", format, len(data))

			path := output
			if path == "" && format == formatSVG {
				// SVG is binary-ish and large, never dump it to the terminal.
				path = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
			}
			if path == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			printSuccess("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg, or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout, or <pack>.svg for svg)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include counts and tags in node labels")

	return cmd
}

// exportPack converts root into the requested format.
func exportPack(root *item.Item, format string, detailed bool) ([]byte, error) {
	switch format {
	case formatDOT:
		return []byte(render.ToDOT(root, render.DotOptions{Detailed: detailed})), nil
	case formatSVG:
		dot := render.ToDOT(root, render.DotOptions{Detailed: detailed})
		sp := newSpinner("Rendering SVG")
		data, err := render.RenderSVG(dot)
		sp.stop()
		return data, err
	case formatJSON:
		return item.MarshalSnapshot(root)
	default:
		return nil, kserr.New(kserr.ErrCodeInvalidFormat, "unknown format %q (want dot, svg, or json)", format)
	}
}
