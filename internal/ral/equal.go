package ral

import "github.com/forestrie/go-fral/refs"

// Equal reports whether a and b hold equal elements in the same order.
//
// The tree shapes of a list are fixed by its length, so two lists of equal
// length are compared tree by tree, and any subtree or spine tail the two
// share is skipped without looking at its elements.
func Equal[T comparable, C any, PC refs.Counter[C]](a, b List[T, C, PC]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any, C any, PC refs.Counter[C]](a, b List[T, C, PC], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	ca, cb := a.head, b.head
	for ca != nil && cb != nil {
		if ca == cb {
			return true
		}
		if ca.size != cb.size || !equalTrees(ca.tree, cb.tree, eq) {
			return false
		}
		ca, cb = ca.next, cb.next
	}
	return ca == cb
}

func equalTrees[T any, C any, PC refs.Counter[C]](a, b *node[T, C, PC], eq func(T, T) bool) bool {
	for {
		if a == b {
			return true
		}
		if !eq(a.value, b.value) {
			return false
		}
		if a.isLeaf() || b.isLeaf() {
			return a.isLeaf() && b.isLeaf()
		}
		if !equalTrees(a.left, b.left, eq) {
			return false
		}
		a, b = a.right, b.right
	}
}
