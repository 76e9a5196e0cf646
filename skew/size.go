package skew

import "math/bits"

// IsTreeSize reports whether size is the node count of a complete binary tree,
// that is 2^k - 1 for some k > 0. Such sizes are a run of binary 1's, so
// adding one clears every bit.
func IsTreeSize(size uint64) bool {
	return size != 0 && size&(size+1) == 0
}

// Height returns the zero based height of a complete tree of the given size,
// 0 for a leaf. size must satisfy IsTreeSize; Height(0) is -1.
func Height(size uint64) int {
	return bits.Len64(size) - 1
}

// ChildSize returns the size of each of the two children of a complete tree
// of the given size. Leaves have ChildSize 0.
func ChildSize(size uint64) uint64 {
	return size >> 1
}

// MergeSize returns the size of the tree formed by joining two trees of size
// childSize under a new root.
func MergeSize(childSize uint64) uint64 {
	return (childSize << 1) + 1
}
