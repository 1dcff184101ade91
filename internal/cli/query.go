package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	kserr "github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/item"
	"github.com/matzehuels/knapsack/pkg/visit"
)

// matchFlags holds the item selector flags shared by query and remove
// commands. Exactly one selector must be set.
type matchFlags struct {
	name string
	tag  string
	id   string
}

// register adds the selector flags to a command.
func (f *matchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "match items by name")
	cmd.Flags().StringVar(&f.tag, "tag", "", "match items by tag")
	cmd.Flags().StringVar(&f.id, "id", "", "match the item with this UUID")
}

// predicate builds the item predicate from whichever selector was set,
// together with a human-readable description for log output.
func (f *matchFlags) predicate() (func(*item.Item) bool, string, error) {
	set := 0
	for _, s := range []string{f.name, f.tag, f.id} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, "", kserr.New(kserr.ErrCodeInvalidQuery, "exactly one of --name, --tag, or --id is required")
	}

	switch {
	case f.name != "":
		return item.ByName(f.name), fmt.Sprintf("name %q", f.name), nil
	case f.tag != "":
		return item.ByTag(f.tag), fmt.Sprintf("tag %q", f.tag), nil
	default:
		return item.ByID(f.id), fmt.Sprintf("id %s", f.id), nil
	}
}

// newQueryCmd creates the query command with its has/find/parents
// subcommands.
func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Search a pack without modifying it",
		Long: `Search a pack without modifying it.

Examples:
  knapsack query has pack.toml --name coin
  knapsack query find pack.toml --tag tool
  knapsack query parents pack.toml --id 5d41402a-...`,
	}

	cmd.AddCommand(newQueryHasCmd())
	cmd.AddCommand(newQueryFindCmd())
	cmd.AddCommand(newQueryParentsCmd())

	return cmd
}

// newQueryHasCmd reports whether any item in the pack matches the selector.
func newQueryHasCmd() *cobra.Command {
	var match matchFlags

	cmd := &cobra.Command{
		Use:   "has <pack>",
		Short: "Check whether the pack contains a matching item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, desc, err := match.predicate()
			if err != nil {
				return err
			}
			root, err := loadPack(args[0])
			if err != nil {
				return err
			}

			if visit.ContainsFunc(root, pred) {
				printSuccess("%q contains an item with %s", root.Name, desc)
			} else {
				printInfo("%q contains no item with %s", root.Name, desc)
			}
			return nil
		},
	}

	match.register(cmd)
	return cmd
}

// newQueryFindCmd locates the first matching item and shows where it sits.
func newQueryFindCmd() *cobra.Command {
	var match matchFlags

	cmd := &cobra.Command{
		Use:   "find <pack>",
		Short: "Locate the first matching item and its container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, desc, err := match.predicate()
			if err != nil {
				return err
			}
			root, err := loadPack(args[0])
			if err != nil {
				return err
			}

			found, ok := item.First(root, pred)
			if !ok {
				printInfo("no item with %s in %q", desc, root.Name)
				return nil
			}

			printSuccess("%s", describeItem(found))
			if parent, ok := visit.FindParent(root, found); ok {
				printDetail("in %s", parent.Name)
			} else {
				printDetail("at the top of %s", root.Name)
			}
			printDetail("id %s", found.ID)
			return nil
		},
	}

	match.register(cmd)
	return cmd
}

// newQueryParentsCmd prints the chain of containers enclosing an item,
// innermost first.
func newQueryParentsCmd() *cobra.Command {
	var match matchFlags

	cmd := &cobra.Command{
		Use:   "parents <pack>",
		Short: "Show the container chain enclosing a matching item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, desc, err := match.predicate()
			if err != nil {
				return err
			}
			root, err := loadPack(args[0])
			if err != nil {
				return err
			}

			target, ok := item.First(root, pred)
			if !ok {
				printInfo("no item with %s in %q", desc, root.Name)
				return nil
			}

			chain := visit.Parents(root, target)
			if len(chain) == 0 {
				printInfo("%s sits at the top of %q", target.Name, root.Name)
				return nil
			}

			names := make([]string, len(chain))
			for i, p := range chain {
				names[i] = p.Name
			}
			printSuccess("%s is inside: %s", target.Name, strings.Join(names, " → "))
			return nil
		},
	}

	match.register(cmd)
	return cmd
}

// describeItem formats an item's name with count and tags for status output.
func describeItem(it *item.Item) string {
	s := it.Name
	if it.Count > 1 {
		s += fmt.Sprintf(" ×%d", it.Count)
	}
	if len(it.Tags) > 0 {
		s += " [" + strings.Join(it.Tags, ", ") + "]"
	}
	return s
}
