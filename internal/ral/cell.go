package ral

import "github.com/forestrie/go-fral/refs"

// cell is one digit of the spine: a complete tree and the size it stands for
// in the skew binary numeral of the list length. Cells form a persistent
// linked list, front to back, so cons and uncons only ever touch the front.
type cell[T any, C any, PC refs.Counter[C]] struct {
	refs C
	size int
	tree *node[T, C, PC]
	next *cell[T, C, PC]
}

// newCell adopts tree and next.
func newCell[T any, C any, PC refs.Counter[C]](tree *node[T, C, PC], next *cell[T, C, PC]) *cell[T, C, PC] {
	c := &cell[T, C, PC]{size: tree.size, tree: tree, next: next}
	PC(&c.refs).InitRefs()
	return c
}

// share takes an additional reference on c, if there is one, and returns it.
func (c *cell[T, C, PC]) share() *cell[T, C, PC] {
	if c != nil {
		PC(&c.refs).IncRef()
	}
	return c
}

func (c *cell[T, C, PC]) release(hook func(T)) {
	for c != nil && PC(&c.refs).DecRef() {
		c.tree.release(hook)
		c = c.next
	}
}
