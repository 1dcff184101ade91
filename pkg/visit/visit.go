package visit

// Response steers a traversal from inside a decision function. It is produced
// and consumed per visited node and never stored by the engine.
type Response int

const (
	// Next descends into the current node's children (if it is a container)
	// and then continues to its next sibling.
	Next Response = iota
	// Skip ignores the current node's children and continues directly to its
	// next sibling. Skip never escapes past the node that produced it: the
	// top-level result of a traversal is only ever Next or Abort.
	Skip
	// Abort stops the entire traversal immediately. No sibling or
	// ancestor-level continuation happens after an Abort.
	Abort
)

// String returns the response name for logs and test failures.
func (r Response) String() string {
	switch r {
	case Next:
		return "next"
	case Skip:
		return "skip"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// Node is the capability contract a tree element must satisfy to be
// traversed. T is the concrete node type itself (e.g. *item.Item), so
// Children returns further nodes of the same type.
//
// T must be comparable; the engine compares nodes by identity, never by
// value, so pointer types are the natural fit.
type Node[T any] interface {
	comparable

	// IsContainer reports whether the node may hold child nodes.
	IsContainer() bool

	// Children returns the node's direct children in stored order.
	// Traversal visits them in exactly this order.
	Children() []T
}

// Editable extends Node with structural write access. The removal operations
// require it to detach children and install the surviving child list.
type Editable[T any] interface {
	Node[T]

	// SetChildren replaces the node's direct children.
	SetChildren([]T)
}

// Func is a decision function receiving each visited node together with its
// direct parent. The parent is the zero value of T for the root node.
type Func[T Node[T]] func(n, parent T) Response

// EachFunc is the lightweight decision function variant for callers that do
// not need the parent.
type EachFunc[T Node[T]] func(n T) Response

// Visit walks the tree rooted at root in pre-order, calling fn for every node
// until the tree is exhausted or fn returns Abort. The root itself is visited
// first, with the zero value of T as its parent.
//
// Visit itself never mutates the tree; any side effects are the callback's.
// The returned value is Next if the walk completed and Abort if fn stopped it
// early.
func Visit[T Node[T]](root T, fn Func[T]) Response {
	var zero T
	return walk(root, zero, fn)
}

// VisitEach is Visit without the parent argument.
func VisitEach[T Node[T]](root T, fn EachFunc[T]) Response {
	var zero T
	return walk(root, zero, func(n, _ T) Response { return fn(n) })
}

// walk is the shared recursive core. Abort propagates by early return through
// every enclosing frame; Skip is consumed at the node that produced it.
func walk[T Node[T]](n, parent T, fn Func[T]) Response {
	switch fn(n, parent) {
	case Abort:
		return Abort
	case Skip:
		return Next
	}
	if n.IsContainer() {
		for _, c := range n.Children() {
			if walk(c, n, fn) == Abort {
				return Abort
			}
		}
	}
	return Next
}
