package ral

import "iter"

// All returns an iterator over the indices and elements of l, front to back.
// It walks the shared trees directly: no elements are copied into new
// structure and no cells are allocated. The iterator may be used any number
// of times.
func (l List[T, C, PC]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for c := l.head; c != nil; c = c.next {
			var ok bool
			if i, ok = c.tree.each(i, yield); !ok {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of l, front to back.
func (l List[T, C, PC]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns the elements of l in a new slice. The result is never nil.
func (l List[T, C, PC]) Slice() []T {
	s := make([]T, 0, l.size)
	for _, v := range l.All() {
		s = append(s, v)
	}
	return s
}

// Collect conses every value of seq onto l in turn, so the last value
// produced ends up at index 0. The intermediate lists are released as it
// goes, l itself is left untouched.
func (l List[T, C, PC]) Collect(seq iter.Seq[T]) List[T, C, PC] {
	out := l.Clone()
	for v := range seq {
		next := out.Cons(v)
		out.Release()
		out = next
	}
	return out
}
