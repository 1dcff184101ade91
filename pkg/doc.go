// Package pkg provides the core libraries for working with nested-container
// packs.
//
// # Overview
//
// Knapsack models inventories as trees of items where containers hold other
// items to arbitrary depth. The pkg directory is organized into:
//
//  1. [visit] - Generic traversal, lookup, and extraction over container trees
//  2. [item] - The concrete item type, TOML manifests, and JSON snapshots
//  3. [store] - Snapshot persistence (memory, file, redis)
//  4. [render] - Text trees and Graphviz diagrams
//  5. [errors] - Structured error codes shared by the CLI and HTTP API
//  6. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow through knapsack:
//
//	TOML manifest / JSON snapshot
//	         ↓
//	    [item] package (parse into an item tree)
//	         ↓
//	    [visit] package (traverse, query, extract)
//	         ↓
//	    [render] / [store] (display or persist the result)
//
// The [visit] package is deliberately generic: it knows nothing about items,
// only about types that can report whether they are containers and what they
// hold. Everything else builds on it.
//
// [visit]: github.com/matzehuels/knapsack/pkg/visit
// [item]: github.com/matzehuels/knapsack/pkg/item
// [store]: github.com/matzehuels/knapsack/pkg/store
// [render]: github.com/matzehuels/knapsack/pkg/render
// [errors]: github.com/matzehuels/knapsack/pkg/errors
// [observability]: github.com/matzehuels/knapsack/pkg/observability
package pkg
