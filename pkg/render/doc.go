// Package render turns item trees into human-readable output.
//
// # Text Trees
//
// [Tree] renders a pack as an indented box-drawing tree with lipgloss
// styling, suitable for terminals. Styling can be disabled for piping and
// tests via [TreeOptions.Plain].
//
//	fmt.Print(render.Tree(root, render.TreeOptions{MaxDepth: 2}))
//
// # Graphviz Diagrams
//
// [ToDOT] emits Graphviz source with one node per item and one edge per
// containment relation. [RenderSVG] lays the DOT source out with the
// embedded Graphviz engine, no external binary required.
//
//	dot := render.ToDOT(root, render.DotOptions{Detailed: true})
//	svg, err := render.RenderSVG(dot)
package render
