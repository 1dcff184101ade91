package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/knapsack/pkg/item"
)

func samplePack() *item.Item {
	coin := item.New("coin")
	coin.Count = 12
	return item.NewContainer("expedition",
		item.New("torch", "light"),
		item.NewContainer("pouch",
			coin,
			item.NewContainer("tin", item.New("needle")),
		),
		item.New("rope"),
	)
}

func TestTreePlain(t *testing.T) {
	got := Tree(samplePack(), TreeOptions{Plain: true})
	want := strings.Join([]string{
		"expedition",
		"├── torch [light]",
		"├── pouch",
		"│   ├── coin ×12",
		"│   └── tin",
		"│       └── needle",
		"└── rope",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Tree mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeMaxDepth(t *testing.T) {
	got := Tree(samplePack(), TreeOptions{Plain: true, MaxDepth: 1})

	if !strings.Contains(got, "pouch") {
		t.Error("depth-1 tree lost a direct child")
	}
	if strings.Contains(got, "coin") {
		t.Error("depth-1 tree rendered items below the cutoff")
	}
	if !strings.Contains(got, "…") {
		t.Error("truncated container missing ellipsis marker")
	}
}

func TestTreeShowIDs(t *testing.T) {
	pack := samplePack()
	got := Tree(pack, TreeOptions{Plain: true, ShowIDs: true})
	if !strings.Contains(got, pack.Contents[0].ID) {
		t.Error("ShowIDs did not include item UUIDs")
	}
}

func TestToDOT(t *testing.T) {
	pack := samplePack()
	dot := ToDOT(pack, DotOptions{})

	if !strings.HasPrefix(dot, "digraph pack {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("malformed DOT:\n%s", dot)
	}

	// One node per item, identified by UUID.
	for _, it := range append(item.Flatten(pack), pack) {
		if !strings.Contains(dot, `"`+it.ID+`"`) {
			t.Errorf("DOT missing node for %q", it.Name)
		}
	}

	// Edges run container -> content.
	pouch, _ := item.First(pack, item.ByName("pouch"))
	coin, _ := item.First(pack, item.ByName("coin"))
	edge := `"` + pouch.ID + `" -> "` + coin.ID + `"`
	if !strings.Contains(dot, edge) {
		t.Errorf("DOT missing edge %s", edge)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(samplePack(), DotOptions{Detailed: true})
	if !strings.Contains(dot, "count: 12") {
		t.Error("detailed DOT missing count label")
	}
	if !strings.Contains(dot, "tags: light") {
		t.Error("detailed DOT missing tag label")
	}
}
