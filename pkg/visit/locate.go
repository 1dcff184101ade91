package visit

// FindParent returns the direct container holding target within the tree
// rooted at root. The root is the search scope, not a candidate: if target is
// a direct child of root, is the root itself, or is not reachable from root
// at all, FindParent reports no parent (zero value, false).
//
// The scan stops on the first identity match; with the strict-tree invariant
// that match is unique.
func FindParent[T Node[T]](root, target T) (T, bool) {
	var zero, parent T
	var found bool
	Visit(root, func(n, p T) Response {
		if n == target && n != root {
			if p != root {
				parent, found = p, true
			}
			return Abort
		}
		return Next
	})
	if !found {
		return zero, false
	}
	return parent, true
}

// Parents returns the chain of containers enclosing target, innermost first,
// up to but not including root. A direct child of root therefore has an empty
// chain, and the last element of a non-empty chain is the outermost container
// strictly below root. Returns nil if target is not reachable from root.
func Parents[T Node[T]](root, target T) []T {
	// path holds the ancestors of the node currently being visited, root
	// first. Visit hands us each node's parent, which is enough to maintain
	// the path: truncate back to the parent, then push the node.
	var path, chain []T
	Visit(root, func(n, p T) Response {
		for len(path) > 0 && path[len(path)-1] != p {
			path = path[:len(path)-1]
		}
		if n == target && n != root {
			for i := len(path) - 1; i > 0; i-- { // path[0] is root, excluded
				chain = append(chain, path[i])
			}
			return Abort
		}
		path = append(path, n)
		return Next
	})
	return chain
}
