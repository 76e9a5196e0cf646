package skew

// increment and decrement step a forest the way cons and uncons do, one
// merge or split at a time. The tests use them as an oracle for Digits.

func increment(sizes []uint64) []uint64 {
	if len(sizes) >= 2 && sizes[0] == sizes[1] {
		next := make([]uint64, 0, len(sizes)-1)
		next = append(next, MergeSize(sizes[0]))
		return append(next, sizes[2:]...)
	}
	next := make([]uint64, 0, len(sizes)+1)
	next = append(next, 1)
	return append(next, sizes...)
}

func decrement(sizes []uint64) ([]uint64, bool) {
	if len(sizes) == 0 {
		return nil, false
	}
	if sizes[0] == 1 {
		return append([]uint64(nil), sizes[1:]...), true
	}
	half := ChildSize(sizes[0])
	next := make([]uint64, 0, len(sizes)+1)
	next = append(next, half, half)
	return append(next, sizes[1:]...), true
}
