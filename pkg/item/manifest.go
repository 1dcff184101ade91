package item

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	kserr "github.com/matzehuels/knapsack/pkg/errors"
)

// manifestItem mirrors one TOML table in a pack manifest. Entries nest
// recursively through their contents tables:
//
//	name = "expedition pack"
//
//	[[contents]]
//	name = "torch"
//	count = 2
//	tags = ["light"]
//
//	[[contents]]
//	name = "pouch"
//
//	[[contents.contents]]
//	name = "coin"
//	count = 12
type manifestItem struct {
	Name      string         `toml:"name"`
	Count     int            `toml:"count"`
	Tags      []string       `toml:"tags"`
	Meta      map[string]any `toml:"meta"`
	Container bool           `toml:"container"`
	Contents  []manifestItem `toml:"contents"`
}

// Load reads and parses a TOML pack manifest from disk.
// The top-level table describes the root container; its count defaults to 1.
func Load(path string) (*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses TOML manifest data into an item tree. Every item receives a
// fresh UUID. The root is always a container, entries holding contents are
// containers implicitly, and counts default to 1.
//
// Returns an error with code ErrCodeInvalidManifest when an entry is missing
// a name, has a negative count, or the TOML itself does not parse.
func Parse(data []byte) (*Item, error) {
	var m manifestItem
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, kserr.Wrap(kserr.ErrCodeInvalidManifest, err, "parse manifest")
	}
	root, err := m.build()
	if err != nil {
		return nil, err
	}
	root.Container = true
	return root, nil
}

func (m manifestItem) build() (*Item, error) {
	if err := kserr.ValidateItemName(m.Name); err != nil {
		return nil, err
	}
	if m.Count < 0 {
		return nil, kserr.New(kserr.ErrCodeInvalidManifest, "item %q: count must not be negative", m.Name)
	}

	it := New(m.Name, m.Tags...)
	if m.Count > 0 {
		it.Count = m.Count
	}
	for k, v := range m.Meta {
		it.Meta[k] = v
	}
	it.Container = m.Container || len(m.Contents) > 0

	for _, child := range m.Contents {
		c, err := child.build()
		if err != nil {
			return nil, fmt.Errorf("in %q: %w", m.Name, err)
		}
		it.Contents = append(it.Contents, c)
	}
	return it, nil
}

// MarshalSnapshot serializes an item tree as an indented JSON snapshot, the
// format used by the store and the HTTP API.
func MarshalSnapshot(root *Item) ([]byte, error) {
	return json.MarshalIndent(root, "", "  ")
}

// UnmarshalSnapshot parses a JSON snapshot back into an item tree. Items that
// arrive without an ID (snapshots edited by hand) receive a fresh UUID, and
// counts default to 1, so a round-tripped tree always satisfies the same
// invariants as one built by Parse.
func UnmarshalSnapshot(data []byte) (*Item, error) {
	var root Item
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, kserr.Wrap(kserr.ErrCodeInvalidManifest, err, "parse snapshot")
	}
	normalize(&root)
	return &root, nil
}

func normalize(it *Item) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.Count == 0 {
		it.Count = 1
	}
	if it.Meta == nil {
		it.Meta = Metadata{}
	}
	if len(it.Contents) > 0 {
		it.Container = true
	}
	for _, c := range it.Contents {
		normalize(c)
	}
}
