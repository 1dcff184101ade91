// Package store persists pack snapshots for the HTTP API and CLI.
//
// A snapshot is the JSON encoding of an item tree (see
// [item.MarshalSnapshot]). The [Store] interface has three backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI usage (~/.config/knapsack/packs)
//   - redis: Redis-backed storage for multi-instance server deployments
//
// The store lives entirely outside the traversal engine: it persists trees
// around engine calls, never during them. All backends emit
// [observability.StoreHooks] events.
//
// [item.MarshalSnapshot]: github.com/matzehuels/knapsack/pkg/item
package store

import (
	"context"
	"errors"

	"github.com/matzehuels/knapsack/pkg/item"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a requested pack does not exist.
	ErrNotFound = errors.New("pack not found")
)

// Store is the interface for pack snapshot storage backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves a pack by ID.
	// Returns ErrNotFound if the pack doesn't exist.
	Get(ctx context.Context, id string) (*item.Item, error)

	// Set stores a pack under the given ID, replacing any existing snapshot.
	Set(ctx context.Context, id string, root *item.Item) error

	// Delete removes a pack. Deleting a missing pack is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored packs.
	List(ctx context.Context) ([]string, error)

	// Close releases any resources held by the backend.
	Close() error
}
