// Package item provides the concrete inventory node used throughout Knapsack.
//
// # Overview
//
// An [Item] is anything that can sit in a pack: a torch, a coin, or a pouch
// that itself holds further items. Items form the nested-container trees that
// the [visit] engine traverses; Item satisfies [visit.Editable], so every
// query and removal operation works on it directly.
//
// Items are compared by identity, never by value. Two items with the same
// name and count are still distinct nodes, which is what lets removal detach
// exactly the instance it matched. Every item carries a UUID so snapshots and
// the HTTP API can refer to a specific node across process boundaries.
//
// # Manifests and Snapshots
//
// Trees are usually built from TOML pack manifests ([Load], [Parse]) and
// persisted as JSON snapshots ([MarshalSnapshot], [UnmarshalSnapshot]); see
// manifest.go.
//
// [visit]: github.com/matzehuels/knapsack/pkg/visit
package item

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/knapsack/pkg/visit"
)

// Metadata stores arbitrary key-value pairs attached to an item, such as
// weight, material, or provenance. Metadata maps are never nil after New -
// they are automatically initialized to empty maps.
type Metadata map[string]any

// Item is a node in a nested-container inventory tree. The zero value is not
// usable - use [New] or [NewContainer] so the ID and metadata are initialized.
//
// Item is not safe for concurrent use without external synchronization.
type Item struct {
	ID        string   `json:"id"`                  // Unique identifier (UUID)
	Name      string   `json:"name"`                // Display label
	Count     int      `json:"count"`               // Stackable quantity (>= 1)
	Tags      []string `json:"tags,omitempty"`      // Free-form classification tags
	Meta      Metadata `json:"meta,omitempty"`      // Arbitrary key-value metadata
	Container bool     `json:"container,omitempty"` // Whether the item may hold others
	Contents  []*Item  `json:"contents,omitempty"`  // Direct children, in stored order
}

// Item satisfies the traversal engine's capability contract. Editable embeds
// comparable, so the check is instantiation rather than assignment.
var _ = visit.RemoveFunc[*Item]

// New creates a leaf item with a fresh UUID and a count of one.
func New(name string, tags ...string) *Item {
	return &Item{
		ID:    uuid.NewString(),
		Name:  name,
		Count: 1,
		Tags:  tags,
		Meta:  Metadata{},
	}
}

// NewContainer creates an empty container item holding the given contents.
func NewContainer(name string, contents ...*Item) *Item {
	it := New(name)
	it.Container = true
	it.Contents = contents
	return it
}

// IsContainer reports whether the item may hold child items.
func (it *Item) IsContainer() bool { return it.Container }

// Children returns the item's direct contents in stored order.
func (it *Item) Children() []*Item { return it.Contents }

// SetChildren replaces the item's direct contents. Used by the traversal
// engine to re-link the tree after removals.
func (it *Item) SetChildren(contents []*Item) { it.Contents = contents }

// Add appends items to the container's contents and returns the container
// for chaining. Adding to a non-container marks it as one.
func (it *Item) Add(items ...*Item) *Item {
	it.Container = true
	it.Contents = append(it.Contents, items...)
	return it
}

// HasTag reports whether the item carries the given tag.
func (it *Item) HasTag(tag string) bool { return slices.Contains(it.Tags, tag) }

// Total returns the number of items contained below the root, at any depth.
// The root itself is not counted.
func Total(root *Item) int {
	n := 0
	visit.VisitEach(root, func(*Item) visit.Response {
		n++
		return visit.Next
	})
	return n - 1
}

// Flatten returns every item below root in traversal (pre-order) order,
// excluding root itself.
func Flatten(root *Item) []*Item {
	var out []*Item
	visit.VisitEach(root, func(it *Item) visit.Response {
		if it != root {
			out = append(out, it)
		}
		return visit.Next
	})
	return out
}

// First returns the first item below root matching the predicate, in
// traversal order, or nil and false if nothing matches.
func First(root *Item, match func(*Item) bool) (*Item, bool) {
	var hit *Item
	visit.VisitEach(root, func(it *Item) visit.Response {
		if it != root && match(it) {
			hit = it
			return visit.Abort
		}
		return visit.Next
	})
	return hit, hit != nil
}

// Clone returns a deep copy of the tree rooted at root. The copies keep the
// original IDs, so a clone is structurally equal but never identical to the
// original (the engine compares by identity).
func Clone(root *Item) *Item {
	if root == nil {
		return nil
	}
	cp := *root
	cp.Tags = slices.Clone(root.Tags)
	if root.Meta != nil {
		cp.Meta = make(Metadata, len(root.Meta))
		for k, v := range root.Meta {
			cp.Meta[k] = v
		}
	}
	cp.Contents = make([]*Item, len(root.Contents))
	for i, c := range root.Contents {
		cp.Contents[i] = Clone(c)
	}
	return &cp
}

// Equal reports structural equality of two trees: same names, counts, tags,
// container flags, and child order at every level. IDs and metadata are
// ignored, which makes Equal useful for comparing a tree against a reloaded
// manifest or a pre-mutation clone.
func Equal(a, b *Item) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || a.Count != b.Count || a.Container != b.Container {
		return false
	}
	if !slices.Equal(a.Tags, b.Tags) {
		return false
	}
	if len(a.Contents) != len(b.Contents) {
		return false
	}
	for i := range a.Contents {
		if !Equal(a.Contents[i], b.Contents[i]) {
			return false
		}
	}
	return true
}

// ByName returns a predicate matching items with the given name.
func ByName(name string) func(*Item) bool {
	return func(it *Item) bool { return it.Name == name }
}

// ByTag returns a predicate matching items carrying the given tag.
func ByTag(tag string) func(*Item) bool {
	return func(it *Item) bool { return it.HasTag(tag) }
}

// ByID returns a predicate matching the item with the given UUID.
func ByID(id string) func(*Item) bool {
	return func(it *Item) bool { return it.ID == id }
}
