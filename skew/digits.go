package skew

// Digits returns the tree sizes of the canonical skew binary numeral for n,
// front to back (ascending). The forest of a random access list of length n
// always has exactly these sizes, regardless of the cons and uncons history
// that produced it.
//
// For example, n = 12 gives [1 1 3 7]:
//
//	12 = 7 + 3 + 1 + 1
//
// The decomposition is greedy: take the largest complete tree that fits, and
// repeat on the remainder. Greedy selection can only ever repeat the final,
// smallest, weight and so the result is canonical.
func Digits(n uint64) []uint64 {
	if n == 0 {
		return nil
	}

	// Tree sizes are all binary '1's, so shifting right walks down the
	// weights. Start from the largest representable tree.
	top := ^uint64(0)

	var desc []uint64
	for n > 0 {
		for top > n {
			top >>= 1
		}
		desc = append(desc, top)
		n -= top
	}

	// reverse, so the smallest tree is first
	for i, j := 0, len(desc)-1; i < j; i, j = i+1, j-1 {
		desc[i], desc[j] = desc[j], desc[i]
	}
	return desc
}

// DigitCount returns len(Digits(n)) without allocating.
func DigitCount(n uint64) int {
	count := 0
	top := ^uint64(0)
	for n > 0 {
		for top > n {
			top >>= 1
		}
		n -= top
		count++
	}
	return count
}

// Valid reports whether sizes, front to back, is a canonical skew binary
// numeral: every size is a complete tree size, and the sizes strictly increase
// except that the first two may be equal.
func Valid(sizes []uint64) bool {
	for i, s := range sizes {
		if !IsTreeSize(s) {
			return false
		}
		if i == 0 {
			continue
		}
		if s > sizes[i-1] {
			continue
		}
		if i == 1 && s == sizes[0] {
			continue
		}
		return false
	}
	return true
}

// Sum returns the number encoded by sizes.
func Sum(sizes []uint64) uint64 {
	var n uint64
	for _, s := range sizes {
		n += s
	}
	return n
}
