package item

import (
	"os"
	"path/filepath"
	"testing"

	kserr "github.com/matzehuels/knapsack/pkg/errors"
)

const sampleManifest = `
name = "expedition pack"
tags = ["gear"]

[[contents]]
name = "torch"
count = 2
tags = ["light"]

[[contents]]
name = "pouch"

  [[contents.contents]]
  name = "coin"
  count = 12

  [[contents.contents]]
  name = "tin"
  container = true

[[contents]]
name = "rope"

  [contents.meta]
  length_m = 30
`

func TestParse(t *testing.T) {
	root, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if root.Name != "expedition pack" || !root.IsContainer() {
		t.Fatalf("root = %q (container=%v), want container %q", root.Name, root.IsContainer(), "expedition pack")
	}
	if got := Total(root); got != 5 {
		t.Errorf("Total = %d, want 5", got)
	}

	torch, ok := First(root, ByName("torch"))
	if !ok {
		t.Fatal("torch missing")
	}
	if torch.Count != 2 || !torch.HasTag("light") {
		t.Errorf("torch = count %d tags %v, want count 2 tag light", torch.Count, torch.Tags)
	}
	if torch.ID == "" {
		t.Error("parsed item has no ID")
	}

	// Contents imply container even without an explicit flag.
	pouch, _ := First(root, ByName("pouch"))
	if !pouch.IsContainer() {
		t.Error("pouch with contents not marked as container")
	}
	// Explicit flag allows empty containers.
	tin, _ := First(root, ByName("tin"))
	if !tin.IsContainer() {
		t.Error("explicit empty container not marked as container")
	}

	rope, _ := First(root, ByName("rope"))
	if got := rope.Meta["length_m"]; got != int64(30) {
		t.Errorf("rope meta length_m = %v (%T), want 30", got, got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"missing child name", "name = \"p\"\n[[contents]]\ncount = 1\n"},
		{"negative count", "name = \"p\"\n[[contents]]\nname = \"x\"\ncount = -1\n"},
		{"invalid toml", "name = \"p\"\n[[contents"},
		{"empty root name", "[[contents]]\nname = \"x\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if !kserr.Is(err, kserr.ErrCodeInvalidManifest) {
				t.Errorf("error code = %v, want %v", kserr.GetCode(err), kserr.ErrCodeInvalidManifest)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.toml")
	if err := os.WriteFile(path, []byte(sampleManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if root.Name != "expedition pack" {
		t.Errorf("root name = %q", root.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	root, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	data, err := MarshalSnapshot(root)
	if err != nil {
		t.Fatalf("MarshalSnapshot: %v", err)
	}

	back, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("UnmarshalSnapshot: %v", err)
	}
	if !Equal(root, back) {
		t.Error("snapshot round trip changed the tree")
	}

	// IDs survive the round trip, so API callers can keep referring to nodes.
	torch, _ := First(root, ByName("torch"))
	backTorch, _ := First(back, ByName("torch"))
	if torch.ID != backTorch.ID {
		t.Errorf("ID changed across round trip: %s != %s", torch.ID, backTorch.ID)
	}
}

func TestUnmarshalSnapshotNormalizes(t *testing.T) {
	raw := `{"name":"pack","contents":[{"name":"torch"}]}`
	root, err := UnmarshalSnapshot([]byte(raw))
	if err != nil {
		t.Fatalf("UnmarshalSnapshot: %v", err)
	}
	if !root.IsContainer() {
		t.Error("root with contents not normalized to container")
	}
	torch := root.Contents[0]
	if torch.ID == "" || torch.Count != 1 || torch.Meta == nil {
		t.Errorf("hand-written snapshot not normalized: %+v", torch)
	}
}
