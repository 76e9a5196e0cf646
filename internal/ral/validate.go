package ral

import (
	"fmt"

	"github.com/forestrie/go-fral/skew"
)

// Validate checks every structural invariant of l: the tree sizes form the
// canonical skew binary numeral of the length, each cell records the size of
// its tree, and every tree is complete with equal size children. A failure
// means the list implementation is broken, it can not be caused by use of
// the public operations.
func (l List[T, C, PC]) Validate() error {
	var sizes []uint64
	for c := l.head; c != nil; c = c.next {
		if c.tree == nil {
			return fmt.Errorf("%w: digit %d has no tree", ErrTreeShape, len(sizes))
		}
		if c.size != c.tree.size {
			return fmt.Errorf(
				"%w: digit %d records size %d, its tree has %d",
				ErrSizeMismatch, len(sizes), c.size, c.tree.size)
		}
		if err := c.tree.validate(); err != nil {
			return fmt.Errorf("digit %d: %w", len(sizes), err)
		}
		sizes = append(sizes, uint64(c.size))
	}
	if !skew.Valid(sizes) {
		return fmt.Errorf("%w: %v", ErrNotSkewBinary, sizes)
	}
	if n := skew.Sum(sizes); n != uint64(l.size) {
		return fmt.Errorf("%w: length %d, trees hold %d", ErrSizeMismatch, l.size, n)
	}
	return nil
}

func (n *node[T, C, PC]) validate() error {
	if !skew.IsTreeSize(uint64(n.size)) {
		return fmt.Errorf("%w: size %d", ErrTreeShape, n.size)
	}
	if n.isLeaf() {
		if n.size != 1 || n.right != nil {
			return fmt.Errorf("%w: leaf of size %d", ErrTreeShape, n.size)
		}
		return nil
	}
	if n.right == nil {
		return fmt.Errorf("%w: node of size %d has one child", ErrTreeShape, n.size)
	}
	if n.left.size != n.right.size {
		return fmt.Errorf(
			"%w: children of sizes %d and %d", ErrTreeShape, n.left.size, n.right.size)
	}
	if int(skew.MergeSize(uint64(n.left.size))) != n.size {
		return fmt.Errorf(
			"%w: node of size %d has children of size %d", ErrSizeMismatch, n.size, n.left.size)
	}
	if err := n.left.validate(); err != nil {
		return err
	}
	return n.right.validate()
}
