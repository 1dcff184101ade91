// Package visit provides a generic depth-first traversal and query engine
// for arbitrarily nested container trees.
//
// # Overview
//
// Knapsack models inventories as trees of items where any item may itself be
// a container holding further items. This package is the single mechanism by
// which every higher-level feature (queries, filters, bulk removal, rendering)
// touches that nested structure. It knows nothing about items: callers supply
// any type satisfying the [Node] capability contract, and the engine works
// purely in terms of "is this a container" and "give me its children".
//
// # Capability Contract
//
// The engine is generic over a node type T that implements [Node] (read
// access) or [Editable] (read plus structural write access, required by the
// removal operations). T must be comparable; in practice T is a pointer type
// and comparison is identity, which lets the engine distinguish two
// structurally equal nodes.
//
// # Traversal
//
// [Visit] is the primitive: a pre-order depth-first walk in which a
// caller-supplied decision function steers descent at every node by returning
// a [Response]:
//
//   - [Next]: descend into the node's children, then continue to its sibling
//   - [Skip]: do not descend, continue directly to the next sibling
//   - [Abort]: stop the entire traversal immediately
//
// [VisitEach] is a lightweight variant whose callback omits the parent
// argument. All other operations are specializations of Visit: [FindParent]
// and [Parents] derive ancestor relations, [Contains] and [ContainsFunc]
// answer existence queries, and [Remove], [RemoveFunc], and [RemoveFuncN]
// detach nodes and re-link the surviving tree.
//
// # Invariants
//
// The tree must be a strict tree: every node has at most one parent below a
// given root and there are no cycles. The engine performs no cycle detection
// and will not terminate on cyclic input. Traversal order is deterministic
// (pre-order, children in stored order), so search and removal results are
// reproducible.
//
// # Concurrency
//
// Every operation is a synchronous recursive call with no hidden state. The
// engine borrows the tree for the duration of a single call and retains no
// reference afterwards; it is not safe to mutate a tree concurrently from
// another goroutine while any operation is in flight.
package visit
