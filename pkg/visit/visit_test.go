package visit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/knapsack/pkg/visit"
)

// node is a minimal tree element for exercising the engine. Identity is
// pointer identity, matching how real callers implement the contract.
type node struct {
	name      string
	container bool
	kids      []*node
}

func (n *node) IsContainer() bool      { return n.container }
func (n *node) Children() []*node      { return n.kids }
func (n *node) SetChildren(ks []*node) { n.kids = ks }

func leaf(name string) *node { return &node{name: name} }

func box(name string, kids ...*node) *node {
	return &node{name: name, container: true, kids: kids}
}

// find returns the first node with the given name, depth-first.
func find(root *node, name string) *node {
	var hit *node
	visit.VisitEach(root, func(n *node) visit.Response {
		if n.name == name {
			hit = n
			return visit.Abort
		}
		return visit.Next
	})
	return hit
}

// names flattens the tree to visit order.
func names(root *node) []string {
	var out []string
	visit.VisitEach(root, func(n *node) visit.Response {
		out = append(out, n.name)
		return visit.Next
	})
	return out
}

// sample builds the tree used throughout the tests:
//
//	pack
//	├── torch
//	├── pouch
//	│   ├── coin
//	│   └── tin
//	│       └── needle
//	└── rope
func sample() *node {
	return box("pack",
		leaf("torch"),
		box("pouch",
			leaf("coin"),
			box("tin", leaf("needle")),
		),
		leaf("rope"),
	)
}

func TestVisitOrder(t *testing.T) {
	want := []string{"pack", "torch", "pouch", "coin", "tin", "needle", "rope"}
	if diff := cmp.Diff(want, names(sample())); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitParents(t *testing.T) {
	root := sample()
	got := map[string]string{}
	resp := visit.Visit(root, func(n, parent *node) visit.Response {
		if parent == nil {
			got[n.name] = ""
		} else {
			got[n.name] = parent.name
		}
		return visit.Next
	})
	if resp != visit.Next {
		t.Fatalf("completed walk returned %v, want %v", resp, visit.Next)
	}

	want := map[string]string{
		"pack": "", "torch": "pack", "pouch": "pack", "rope": "pack",
		"coin": "pouch", "tin": "pouch", "needle": "tin",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parent mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitAbort(t *testing.T) {
	// Five leaves in a single level; abort on the second. The remaining
	// three must never reach the decision function.
	root := box("pack", leaf("a"), leaf("b"), leaf("c"), leaf("d"), leaf("e"))

	var visited []string
	resp := visit.VisitEach(root, func(n *node) visit.Response {
		visited = append(visited, n.name)
		if n.name == "b" {
			return visit.Abort
		}
		return visit.Next
	})
	if resp != visit.Abort {
		t.Errorf("aborted walk returned %v, want %v", resp, visit.Abort)
	}
	if diff := cmp.Diff([]string{"pack", "a", "b"}, visited); diff != "" {
		t.Errorf("visited mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitSkip(t *testing.T) {
	// Skipping a container with three children suppresses all three but
	// still visits the container's sibling.
	root := box("pack",
		box("pouch", leaf("a"), leaf("b"), leaf("c")),
		leaf("rope"),
	)

	var visited []string
	resp := visit.VisitEach(root, func(n *node) visit.Response {
		visited = append(visited, n.name)
		if n.name == "pouch" {
			return visit.Skip
		}
		return visit.Next
	})
	if resp != visit.Next {
		t.Errorf("walk with skip returned %v, want %v", resp, visit.Next)
	}
	if diff := cmp.Diff([]string{"pack", "pouch", "rope"}, visited); diff != "" {
		t.Errorf("visited mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitAbortInsideSubtree(t *testing.T) {
	// Abort from a descendant must short-circuit remaining siblings at every
	// ancestor level.
	root := sample()
	var visited []string
	visit.VisitEach(root, func(n *node) visit.Response {
		visited = append(visited, n.name)
		if n.name == "coin" {
			return visit.Abort
		}
		return visit.Next
	})
	if diff := cmp.Diff([]string{"pack", "torch", "pouch", "coin"}, visited); diff != "" {
		t.Errorf("visited mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitNoMutation(t *testing.T) {
	root := sample()
	before := names(root)
	visit.VisitEach(root, func(n *node) visit.Response { return visit.Next })
	if diff := cmp.Diff(before, names(root)); diff != "" {
		t.Errorf("visit mutated the tree (-before +after):\n%s", diff)
	}
}

func TestContains(t *testing.T) {
	root := sample()
	stranger := leaf("stranger")

	tests := []struct {
		name   string
		target *node
		want   bool
	}{
		{"Root", root, true},
		{"DirectChild", find(root, "torch"), true},
		{"Nested", find(root, "needle"), true},
		{"Absent", stranger, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visit.Contains(root, tt.target); got != tt.want {
				t.Errorf("Contains = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsFunc(t *testing.T) {
	root := sample()

	if !visit.ContainsFunc(root, func(n *node) bool { return n.name == "needle" }) {
		t.Error("ContainsFunc(needle) = false, want true")
	}
	if visit.ContainsFunc(root, func(n *node) bool { return n.name == "ghost" }) {
		t.Error("ContainsFunc(ghost) = true, want false")
	}

	// The root is the scope of the search, never a candidate.
	if visit.ContainsFunc(root, func(n *node) bool { return n.name == "pack" }) {
		t.Error("ContainsFunc matched the root itself")
	}

	// Read-only and idempotent.
	pred := func(n *node) bool { return n.container }
	first := visit.ContainsFunc(root, pred)
	second := visit.ContainsFunc(root, pred)
	if first != second {
		t.Errorf("repeated ContainsFunc disagreed: %v then %v", first, second)
	}
}

func TestResponseString(t *testing.T) {
	if got := visit.Skip.String(); got != "skip" {
		t.Errorf("Skip.String() = %q, want %q", got, "skip")
	}
}
