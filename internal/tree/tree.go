// Package tree provides generic depth-first operations over ordered trees whose
// nodes expose their children through an accessor function.
package tree

// Visit walks nodes depth-first in pre-order and calls fn for every node,
// including intermediate ones. Filtering is left to fn.
func Visit[T any](nodes []T, children func(T) []T, fn func(T)) {
	for _, n := range nodes {
		fn(n)
		if kids := children(n); len(kids) > 0 {
			Visit(kids, children, fn)
		}
	}
}

// Map builds a tree of the same shape where transform replaces each node.
//
// transform may return the zero value of D to signal that the node's own
// content is dropped. The children are mapped regardless and handed to attach
// together with whatever transform produced, so a later Filter can still
// reach them. attach is only called for source nodes that have children.
func Map[S, D any](nodes []S, children func(S) []S, transform func(S) D, attach func(D, []D) D) []D {
	if nodes == nil {
		return nil
	}
	out := make([]D, 0, len(nodes))
	for _, n := range nodes {
		d := transform(n)
		if kids := children(n); kids != nil {
			d = attach(d, Map(kids, children, transform, attach))
		}
		out = append(out, d)
	}
	return out
}

// Filter prunes nodes in post-order: children are filtered first and stored
// back through setChildren, then keep decides on the node itself. An empty
// surviving child list is passed to setChildren as nil so the node can drop
// its children entirely.
func Filter[T any](nodes []T, children func(T) []T, setChildren func(T, []T) T, keep func(T) bool) []T {
	out := make([]T, 0, len(nodes))
	for _, n := range nodes {
		if kids := children(n); kids != nil {
			kept := Filter(kids, children, setChildren, keep)
			if len(kept) == 0 {
				kept = nil
			}
			n = setChildren(n, kept)
		}
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
