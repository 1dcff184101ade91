package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/knapsack/pkg/item"
	"github.com/matzehuels/knapsack/pkg/visit"
)

// newRemoveCmd creates the remove command, which extracts matching items
// from a pack and writes the remaining pack back out.
func newRemoveCmd() *cobra.Command {
	var (
		match  matchFlags
		limit  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "remove <pack>",
		Short: "Remove matching items from a pack",
		Long: `Remove matching items from a pack and write the remaining pack as a
JSON snapshot. Matching containers are removed whole, contents included.

Examples:
  knapsack remove pack.toml --name coin -o packed.json
  knapsack remove pack.toml --tag perishable --limit 2
  knapsack remove snapshot.json --id 5d41402a-... -o packed.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			pred, desc, err := match.predicate()
			if err != nil {
				return err
			}
			root, err := loadPack(args[0])
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			removed, err := removeMatching(root, match.id, pred, limit)
			if err != nil {
				return err
			}

			for _, it := range removed {
				printDetail("removed %s", describeItem(it))
			}
			if len(removed) == 0 {
				printInfo("no item with %s in %q", desc, root.Name)
			} else {
				prog.done(pluralf("Removed %d item", len(removed)))
				printSuccess("%q now holds %d items", root.Name, item.Total(root))
			}

			return writePack(output, root)
		},
	}

	match.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", -1, "stop after removing this many items (-1 = unlimited)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the remaining pack to this file (default stdout)")

	return cmd
}

// removeMatching dispatches between identity removal (--id) and predicate
// removal. Both forms treat an absent item as a miss, not an error: the
// command reports "no item" and writes the pack unchanged.
func removeMatching(root *item.Item, id string, pred func(*item.Item) bool, limit int) ([]*item.Item, error) {
	if id != "" {
		target, ok := item.First(root, pred)
		if !ok {
			return nil, nil
		}
		detached, err := visit.Remove(root, target)
		if err != nil {
			return nil, err
		}
		return []*item.Item{detached}, nil
	}
	return visit.RemoveFuncN(root, pred, limit), nil
}

// pluralf formats a count message, appending "s" when n != 1.
func pluralf(format string, n int) string {
	s := fmt.Sprintf(format, n)
	if n != 1 {
		s += "s"
	}
	return s
}
