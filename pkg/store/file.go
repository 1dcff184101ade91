package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	kserr "github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/item"
	"github.com/matzehuels/knapsack/pkg/observability"
)

// FileStore is a file-based pack store for CLI usage.
// Each pack is a JSON snapshot file named after its ID.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store in the given directory.
// If baseDir is empty, defaults to ~/.config/knapsack/packs/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "knapsack", "packs")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create pack dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) packPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Get reads and parses the snapshot file for the given pack.
func (s *FileStore) Get(ctx context.Context, id string) (*item.Item, error) {
	if err := kserr.ValidatePackID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	data, err := os.ReadFile(s.packPath(id))
	s.mu.RUnlock()

	if os.IsNotExist(err) {
		observability.Store().OnGet(ctx, "file", id, false)
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read pack file: %w", err)
	}

	root, err := item.UnmarshalSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("parse pack %s: %w", id, err)
	}
	observability.Store().OnGet(ctx, "file", id, true)
	return root, nil
}

// Set writes the pack as a JSON snapshot file.
func (s *FileStore) Set(ctx context.Context, id string, root *item.Item) error {
	if err := kserr.ValidatePackID(id); err != nil {
		return err
	}

	data, err := item.MarshalSnapshot(root)
	if err != nil {
		return fmt.Errorf("marshal pack: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.packPath(id), data, 0o600); err != nil {
		return fmt.Errorf("write pack file: %w", err)
	}
	observability.Store().OnSet(ctx, "file", id, len(data))
	return nil
}

// Delete removes the snapshot file if present.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := kserr.ValidatePackID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.packPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete pack file: %w", err)
	}
	observability.Store().OnDelete(ctx, "file", id)
	return nil
}

// List returns the IDs of all snapshot files in the store directory.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read pack dir: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}

// Close does nothing.
func (s *FileStore) Close() error { return nil }

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
