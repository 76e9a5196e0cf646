package skew

// Branch identifies where a pre-order index lands relative to the root of a
// complete tree.
type Branch uint8

const (
	// Here is the root itself.
	Here Branch = iota
	// Left is the left subtree.
	Left
	// Right is the right subtree.
	Right
)

func (b Branch) String() string {
	switch b {
	case Here:
		return "here"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Step performs one level of descent through a complete tree of the given
// size towards the pre-order index i. It returns the branch to take and the
// index relative to that branch. For Here the returned index is always 0.
//
// The caller carries the burden of knowledge that i < size. For a leaf (size
// 1) any i other than 0 gives nonsense.
//
// Given the tree of size 7 below, Step(7, 5) returns (Right, 1) and
// Step(3, 1) then returns (Left, 0), which lands on index 5.
//
//	      0
//	   /     \
//	  1       4
//	 / \     / \
//	2   3   5   6
func Step(size uint64, i uint64) (Branch, uint64) {
	if i == 0 {
		return Here, 0
	}
	half := ChildSize(size)
	if i <= half {
		return Left, i - 1
	}
	return Right, i - 1 - half
}

// Path returns the sequence of branches taken from the root of a complete
// tree of the given size to reach the pre-order index i. The final element is
// always Here, and the path is at most Height(size) + 1 long. size must be a
// complete tree size and i must be less than size.
func Path(size uint64, i uint64) []Branch {
	path := make([]Branch, 0, Height(size)+1)
	for {
		b, j := Step(size, i)
		path = append(path, b)
		if b == Here {
			return path
		}
		size = ChildSize(size)
		i = j
	}
}
