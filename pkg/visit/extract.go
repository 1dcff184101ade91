package visit

import "errors"

// ErrNotContained is returned by [Remove] when the target is not reachable
// from the root. Removing an item that is not there is a caller contract
// violation, not a soft miss, so it surfaces as an error rather than a
// sentinel node.
var ErrNotContained = errors.New("target not contained in root")

// RemoveFunc detaches every node below root that matches the predicate and
// returns the detached nodes in pre-order encounter order. The root itself is
// never a candidate.
//
// A matching container is removed whole: its own children are not tested once
// the container has been excised. Non-matching containers are descended into,
// so removal happens at every depth in one pass. Surviving siblings keep
// their relative order, and detached nodes retain no link to their former
// parent.
//
// Quantity-bearing nodes are returned as the discrete values they were in the
// tree; the engine never merges or splits counts across matches.
func RemoveFunc[T Editable[T]](root T, match func(T) bool) []T {
	budget := -1
	return extract(root, match, &budget)
}

// RemoveFuncN is RemoveFunc with a global removal budget across the whole
// subtree. At most n nodes are removed; n == 0 is a no-op that leaves the
// tree untouched, and n < 0 removes without bound.
func RemoveFuncN[T Editable[T]](root T, match func(T) bool, n int) []T {
	if n == 0 {
		return nil
	}
	return extract(root, match, &n)
}

// extract rebuilds each container's child list bottom-up as recursion
// returns, rather than editing a slice mid-iteration. budget counts removals
// still allowed; negative means unbounded.
func extract[T Editable[T]](n T, match func(T) bool, budget *int) []T {
	if !n.IsContainer() {
		return nil
	}
	var removed []T
	children := n.Children()
	kept := make([]T, 0, len(children))
	for _, c := range children {
		if *budget == 0 {
			kept = append(kept, c)
			continue
		}
		if match(c) {
			removed = append(removed, c)
			if *budget > 0 {
				*budget--
			}
			continue
		}
		removed = append(removed, extract(c, match, budget)...)
		kept = append(kept, c)
	}
	n.SetChildren(kept)
	return removed
}

// Remove detaches target from wherever it sits below root and returns it.
// The former parent's remaining children keep their order. If target is not
// contained in root's subtree (or is root itself), Remove returns
// [ErrNotContained] and leaves the tree untouched.
func Remove[T Editable[T]](root, target T) (T, error) {
	var detach func(n T) bool
	detach = func(n T) bool {
		if !n.IsContainer() {
			return false
		}
		children := n.Children()
		for i, c := range children {
			if c == target {
				n.SetChildren(append(children[:i:i], children[i+1:]...))
				return true
			}
			if detach(c) {
				return true
			}
		}
		return false
	}
	if detach(root) {
		return target, nil
	}
	var zero T
	return zero, ErrNotContained
}
