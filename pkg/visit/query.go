package visit

// Contains reports whether target is reachable from root, by identity. The
// root itself counts: Contains(root, root) is true.
//
// Only an identity match aborts the underlying walk, so an aborted walk is
// equivalent to "found".
func Contains[T Node[T]](root, target T) bool {
	return Visit(root, func(n, _ T) Response {
		if n == target {
			return Abort
		}
		return Next
	}) == Abort
}

// ContainsFunc reports whether any node below root matches the predicate.
// The root is the scope of the search, not a candidate: match is never called
// with root itself.
//
// ContainsFunc is read-only; calling it twice without mutating the tree in
// between yields identical results.
func ContainsFunc[T Node[T]](root T, match func(T) bool) bool {
	return Visit(root, func(n, _ T) Response {
		if n != root && match(n) {
			return Abort
		}
		return Next
	}) == Abort
}
