// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about store operations and pack queries served over HTTP.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    observability.SetPackHooks(&myPackHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Store().OnGet(ctx, backend, id, found)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from pack snapshot storage backends.
type StoreHooks interface {
	// OnGet records a snapshot lookup and whether it was found.
	OnGet(ctx context.Context, backend, id string, found bool)

	// OnSet records a snapshot write with its encoded size in bytes.
	OnSet(ctx context.Context, backend, id string, size int)

	// OnDelete records a snapshot removal.
	OnDelete(ctx context.Context, backend, id string)
}

// =============================================================================
// Pack Hooks
// =============================================================================

// PackHooks receives events from pack operations served over the HTTP API.
type PackHooks interface {
	// OnQuery records an existence or locate query against a pack.
	OnQuery(ctx context.Context, packID, kind string, matched bool, duration time.Duration)

	// OnRemove records a removal operation and how many items it detached.
	OnRemove(ctx context.Context, packID string, removed int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnGet(context.Context, string, string, bool) {}
func (NoopStoreHooks) OnSet(context.Context, string, string, int)  {}
func (NoopStoreHooks) OnDelete(context.Context, string, string)    {}

// NoopPackHooks is a no-op implementation of PackHooks.
type NoopPackHooks struct{}

func (NoopPackHooks) OnQuery(context.Context, string, string, bool, time.Duration) {}
func (NoopPackHooks) OnRemove(context.Context, string, int, time.Duration)         {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	storeHooks StoreHooks = NoopStoreHooks{}
	packHooks  PackHooks  = NoopPackHooks{}
	hooksMu    sync.RWMutex
)

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetPackHooks registers custom pack hooks.
// This should be called once at application startup before serving requests.
func SetPackHooks(h PackHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		packHooks = h
	}
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Pack returns the registered pack hooks.
func Pack() PackHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return packHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	storeHooks = NoopStoreHooks{}
	packHooks = NoopPackHooks{}
}
