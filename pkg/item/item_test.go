package item

import (
	"testing"

	"github.com/matzehuels/knapsack/pkg/visit"
)

// kit builds the pack used throughout the tests:
//
//	field kit
//	├── torch [light]
//	├── pouch
//	│   ├── coin ×12
//	│   └── tin
//	│       └── needle [tool]
//	└── rope [tool]
func kit() *Item {
	coin := New("coin")
	coin.Count = 12
	return NewContainer("field kit",
		New("torch", "light"),
		NewContainer("pouch",
			coin,
			NewContainer("tin", New("needle", "tool")),
		),
		New("rope", "tool"),
	)
}

func TestNewDefaults(t *testing.T) {
	it := New("torch", "light")
	if it.ID == "" {
		t.Error("New left ID empty")
	}
	if it.Count != 1 {
		t.Errorf("Count = %d, want 1", it.Count)
	}
	if it.Meta == nil {
		t.Error("Meta not initialized")
	}
	if it.IsContainer() {
		t.Error("leaf item reports IsContainer")
	}
	if !it.HasTag("light") || it.HasTag("tool") {
		t.Error("tag lookup wrong")
	}
}

func TestAddMarksContainer(t *testing.T) {
	it := New("sack").Add(New("apple"))
	if !it.IsContainer() {
		t.Error("Add did not mark the item as a container")
	}
	if len(it.Children()) != 1 {
		t.Errorf("children = %d, want 1", len(it.Children()))
	}
}

func TestTotalAndFlatten(t *testing.T) {
	root := kit()
	if got := Total(root); got != 6 {
		t.Errorf("Total = %d, want 6", got)
	}

	flat := Flatten(root)
	want := []string{"torch", "pouch", "coin", "tin", "needle", "rope"}
	if len(flat) != len(want) {
		t.Fatalf("Flatten returned %d items, want %d", len(flat), len(want))
	}
	for i, it := range flat {
		if it.Name != want[i] {
			t.Errorf("Flatten[%d] = %q, want %q", i, it.Name, want[i])
		}
	}
}

func TestFirst(t *testing.T) {
	root := kit()

	got, ok := First(root, ByTag("tool"))
	if !ok || got.Name != "needle" {
		t.Errorf("First(tool) = %v, want needle", got)
	}

	if _, ok := First(root, ByName("anvil")); ok {
		t.Error("First matched a nonexistent item")
	}

	// The root is scope, not a candidate.
	if _, ok := First(root, ByName("field kit")); ok {
		t.Error("First matched the root itself")
	}
}

func TestItemWorksWithEngine(t *testing.T) {
	root := kit()

	if !visit.ContainsFunc(root, ByName("needle")) {
		t.Error("engine did not find nested item")
	}

	coin, _ := First(root, ByName("coin"))
	parent, ok := visit.FindParent(root, coin)
	if !ok || parent.Name != "pouch" {
		t.Errorf("FindParent(coin) = %v, want pouch", parent)
	}

	// Exercise every engine operation instantiated with *Item; Editable embeds
	// comparable, so satisfaction is only checkable through instantiation.
	if !visit.Contains(root, coin) {
		t.Error("Contains lost an item it was just handed")
	}
	if chain := visit.Parents(root, coin); len(chain) != 1 || chain[0].Name != "pouch" {
		t.Errorf("Parents(coin) = %v, want [pouch]", chain)
	}
	if got := visit.RemoveFuncN(root, ByName("ghost"), 1); got != nil {
		t.Errorf("RemoveFuncN(ghost) removed %d items, want none", len(got))
	}
	if _, err := visit.Remove(root, New("stranger")); err == nil {
		t.Error("Remove of an absent item succeeded")
	}

	removed := visit.RemoveFunc(root, ByTag("tool"))
	if len(removed) != 2 {
		t.Fatalf("removed %d items, want 2", len(removed))
	}
	// Removed as discrete nodes, counts untouched.
	for _, r := range removed {
		if r.Count != 1 {
			t.Errorf("removed %q count = %d, want 1", r.Name, r.Count)
		}
	}
	if visit.ContainsFunc(root, ByTag("tool")) {
		t.Error("tagged items still present after removal")
	}
}

func TestCloneAndEqual(t *testing.T) {
	root := kit()
	cp := Clone(root)

	if !Equal(root, cp) {
		t.Fatal("clone not structurally equal to original")
	}
	// Structural equality, not identity: the engine must treat the clone's
	// nodes as distinct.
	if visit.Contains(root, cp.Contents[0]) {
		t.Error("clone shares nodes with the original")
	}

	// Mutating the clone leaves the original untouched.
	visit.RemoveFunc(cp, ByName("coin"))
	if Equal(root, cp) {
		t.Error("trees still equal after mutating the clone")
	}
	if !visit.ContainsFunc(root, ByName("coin")) {
		t.Error("original lost a node when clone was mutated")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Item
		want bool
	}{
		{"identical shape", kit(), kit(), true},
		{"nil both", nil, nil, true},
		{"nil one", kit(), nil, false},
		{
			"different count",
			func() *Item { r := kit(); r.Contents[0].Count = 5; return r }(),
			kit(),
			false,
		},
		{
			"different child order",
			NewContainer("p", New("a"), New("b")),
			NewContainer("p", New("b"), New("a")),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}
