package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/knapsack/pkg/item"
	"github.com/matzehuels/knapsack/pkg/visit"
)

// DotOptions configures DOT generation.
type DotOptions struct {
	// Detailed includes counts and tags in node labels.
	// When false, only the item name is shown.
	Detailed bool
}

// ToDOT converts an item tree to Graphviz DOT format. Containers are drawn
// as filled boxes, leaves as plain boxes; edges run from each container to
// its direct contents. The resulting DOT string can be rendered with
// [RenderSVG].
//
// Node identifiers use the item UUIDs, so two items with the same name stay
// distinct in the diagram.
func ToDOT(root *item.Item, opts DotOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph pack {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	visit.VisitEach(root, func(it *item.Item) visit.Response {
		attrs := fmtAttrs(it, fmtLabel(it, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", it.ID, strings.Join(attrs, ", "))
		return visit.Next
	})

	buf.WriteString("\n")
	visit.VisitEach(root, func(it *item.Item) visit.Response {
		for _, c := range it.Children() {
			fmt.Fprintf(&buf, "  %q -> %q;\n", it.ID, c.ID)
		}
		return visit.Next
	})

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(it *item.Item, detailed bool) string {
	if !detailed {
		return it.Name
	}

	parts := []string{it.Name}
	if it.Count > 1 {
		parts = append(parts, fmt.Sprintf("count: %d", it.Count))
	}
	if len(it.Tags) > 0 {
		parts = append(parts, "tags: "+strings.Join(it.Tags, ", "))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(it *item.Item, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if it.IsContainer() {
		attrs = append(attrs, "fillcolor=lightblue", "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
