package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/knapsack/pkg/item"
)

// loadPack reads a pack from disk, accepting either a TOML manifest or a
// JSON snapshot, decided by file extension.
func loadPack(path string) (*item.Item, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return item.Load(path)
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read snapshot: %w", err)
		}
		return item.UnmarshalSnapshot(data)
	default:
		return nil, fmt.Errorf("unsupported pack file %q (want .toml or .json)", filepath.Base(path))
	}
}

// writePack writes a pack as a JSON snapshot to path, or to stdout when path
// is empty.
func writePack(path string, root *item.Item) error {
	data, err := item.MarshalSnapshot(root)
	if err != nil {
		return fmt.Errorf("marshal pack: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write pack: %w", err)
	}
	return nil
}
