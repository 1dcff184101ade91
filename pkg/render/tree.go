package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/knapsack/pkg/item"
)

// Color palette, matching the CLI styles.
var (
	colorTeal  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

// Tree styles.
var (
	styleContainer = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	styleLeaf      = lipgloss.NewStyle().Foreground(colorWhite)
	styleCount     = lipgloss.NewStyle().Foreground(colorGray)
	styleTag       = lipgloss.NewStyle().Foreground(colorDim)
	styleBranch    = lipgloss.NewStyle().Foreground(colorDim)
)

// TreeOptions configures text tree rendering.
type TreeOptions struct {
	// MaxDepth limits how many container levels are rendered below the root.
	// Zero means unlimited. Containers at the cutoff show an ellipsis when
	// they still hold items.
	MaxDepth int

	// ShowIDs appends each item's UUID to its line.
	ShowIDs bool

	// Plain disables all styling, for piping output to other tools.
	Plain bool
}

// Tree renders the item tree as an indented text tree with box-drawing
// branches, one item per line. Children appear in stored order, matching
// traversal order.
func Tree(root *item.Item, opts TreeOptions) string {
	var b strings.Builder
	b.WriteString(label(root, opts))
	b.WriteString("\n")
	writeChildren(&b, root, "", 1, opts)
	return b.String()
}

func writeChildren(b *strings.Builder, it *item.Item, prefix string, depth int, opts TreeOptions) {
	children := it.Children()
	for i, c := range children {
		branch, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			branch, childPrefix = "└── ", prefix+"    "
		}
		if !opts.Plain {
			branch = styleBranch.Render(branch)
		}
		b.WriteString(prefix + branch + label(c, opts) + "\n")

		if !c.IsContainer() || len(c.Children()) == 0 {
			continue
		}
		if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
			ellipsis := "└── …"
			if !opts.Plain {
				ellipsis = styleBranch.Render(ellipsis)
			}
			b.WriteString(childPrefix + ellipsis + "\n")
			continue
		}
		writeChildren(b, c, childPrefix, depth+1, opts)
	}
}

func label(it *item.Item, opts TreeOptions) string {
	name := it.Name
	if !opts.Plain {
		if it.IsContainer() {
			name = styleContainer.Render(name)
		} else {
			name = styleLeaf.Render(name)
		}
	}

	var extras []string
	if it.Count > 1 {
		count := fmt.Sprintf("×%d", it.Count)
		if !opts.Plain {
			count = styleCount.Render(count)
		}
		extras = append(extras, count)
	}
	if len(it.Tags) > 0 {
		tags := "[" + strings.Join(it.Tags, ", ") + "]"
		if !opts.Plain {
			tags = styleTag.Render(tags)
		}
		extras = append(extras, tags)
	}
	if opts.ShowIDs {
		id := it.ID
		if !opts.Plain {
			id = styleTag.Render(id)
		}
		extras = append(extras, id)
	}

	if len(extras) == 0 {
		return name
	}
	return name + " " + strings.Join(extras, " ")
}
