package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/knapsack/pkg/item"
	"github.com/matzehuels/knapsack/pkg/render"
)

// newTreeCmd creates the tree command, which renders a pack as a styled
// text tree.
func newTreeCmd() *cobra.Command {
	var opts render.TreeOptions

	cmd := &cobra.Command{
		Use:   "tree <pack>",
		Short: "Render a pack as a text tree",
		Long: `Render a pack manifest or snapshot as an indented text tree.

Examples:
  knapsack tree pack.toml
  knapsack tree pack.toml --depth 2
  knapsack tree snapshot.json --ids --plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			root, err := loadPack(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("Loaded %q with %d items", root.Name, item.Total(root))

			fmt.Print(render.Tree(root, opts))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.MaxDepth, "depth", 0, "maximum container depth to render (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.ShowIDs, "ids", false, "show item UUIDs")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "disable styling")

	return cmd
}
