package ral

import (
	"github.com/forestrie/go-fral/refs"
	"github.com/forestrie/go-fral/skew"
)

// node is a complete binary tree of size 2^k - 1 holding a value at every
// node. A leaf has size 1 and nil children. Both children of an interior node
// always have size (size-1)/2.
//
// Once a node is reachable from a list it is never modified, apart from its
// reference count. The count is the number of parents, nodes or cells, that
// point at it.
type node[T any, C any, PC refs.Counter[C]] struct {
	refs  C
	value T
	size  int
	left  *node[T, C, PC]
	right *node[T, C, PC]
}

// newNode adopts left and right: the caller's references become the new
// node's references.
func newNode[T any, C any, PC refs.Counter[C]](
	value T, size int, left, right *node[T, C, PC],
) *node[T, C, PC] {
	n := &node[T, C, PC]{value: value, size: size, left: left, right: right}
	PC(&n.refs).InitRefs()
	return n
}

func newLeaf[T any, C any, PC refs.Counter[C]](value T) *node[T, C, PC] {
	return newNode[T, C, PC](value, 1, nil, nil)
}

// merge joins two trees of equal size under a new root holding value. Both
// children gain a reference, nothing is copied.
func merge[T any, C any, PC refs.Counter[C]](value T, left, right *node[T, C, PC]) *node[T, C, PC] {
	if left.size != right.size {
		panic("ral: merge of unequal trees")
	}
	return newNode(value, int(skew.MergeSize(uint64(left.size))), left.share(), right.share())
}

// share takes an additional reference on n and returns it.
func (n *node[T, C, PC]) share() *node[T, C, PC] {
	PC(&n.refs).IncRef()
	return n
}

func (n *node[T, C, PC]) isLeaf() bool {
	return n.left == nil
}

// split projects an interior node into its value and children. The children
// are returned without taking references.
func (n *node[T, C, PC]) split() (T, *node[T, C, PC], *node[T, C, PC]) {
	if n.isLeaf() {
		panic("ral: split of a leaf")
	}
	return n.value, n.left, n.right
}

// get returns the value at pre-order index i. The caller guarantees
// 0 <= i < n.size.
func (n *node[T, C, PC]) get(i int) T {
	at := uint64(i)
	for {
		b, j := skew.Step(uint64(n.size), at)
		switch b {
		case skew.Here:
			return n.value
		case skew.Left:
			n = n.left
		case skew.Right:
			n = n.right
		}
		at = j
	}
}

// update returns a new tree with the value at pre-order index i replaced.
// Only the nodes on the path from the root to i are new, every other subtree
// is shared with n. The caller guarantees 0 <= i < n.size.
func (n *node[T, C, PC]) update(i int, value T) *node[T, C, PC] {
	path := skew.Path(uint64(n.size), uint64(i))

	// visited[d] is the node at depth d, the last one holds index i
	visited := make([]*node[T, C, PC], len(path))
	for d, b := range path {
		visited[d] = n
		switch b {
		case skew.Left:
			n = n.left
		case skew.Right:
			n = n.right
		}
	}

	var out *node[T, C, PC]
	if n.isLeaf() {
		out = newLeaf[T, C, PC](value)
	} else {
		out = newNode(value, n.size, n.left.share(), n.right.share())
	}
	// rebuild bottom up, sharing the sibling at every level
	for d := len(path) - 2; d >= 0; d-- {
		p := visited[d]
		if path[d] == skew.Left {
			out = newNode(p.value, p.size, out, p.right.share())
			continue
		}
		out = newNode(p.value, p.size, p.left.share(), out)
	}
	return out
}

// each yields the values of n in pre-order, numbering them from i. It
// returns the next index and false if yield asked to stop.
func (n *node[T, C, PC]) each(i int, yield func(int, T) bool) (int, bool) {
	for {
		if !yield(i, n.value) {
			return i, false
		}
		i++
		if n.isLeaf() {
			return i, true
		}
		var ok bool
		if i, ok = n.left.each(i, yield); !ok {
			return i, false
		}
		// the right subtree is a tail call
		n = n.right
	}
}

// release drops one reference. When it was the last, the value is reported
// to hook and the children are released in turn.
func (n *node[T, C, PC]) release(hook func(T)) {
	for n != nil && PC(&n.refs).DecRef() {
		if hook != nil {
			hook(n.value)
		}
		if n.isLeaf() {
			return
		}
		n.left.release(hook)
		n = n.right
	}
}

// build creates a complete tree from values laid out in pre-order.
// len(values) must be a complete tree size.
func build[T any, C any, PC refs.Counter[C]](values []T) *node[T, C, PC] {
	if len(values) == 1 {
		return newLeaf[T, C, PC](values[0])
	}
	half := int(skew.ChildSize(uint64(len(values))))
	return newNode(
		values[0], len(values),
		build[T, C, PC](values[1:1+half]),
		build[T, C, PC](values[1+half:]))
}
