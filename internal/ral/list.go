package ral

import (
	"fmt"

	"github.com/forestrie/go-fral/refs"
	"github.com/forestrie/go-fral/skew"
)

// List is a persistent random access list. Every operation that looks like a
// modification returns a new List and leaves the receiver, and every other
// list sharing structure with it, unchanged.
//
// C selects how shared structure is reference counted, see package refs. The
// zero List is empty and ready to use.
//
// A List value holds one reference on its spine. Plain assignment copies the
// handle without taking a reference; use Clone for a handle that will be
// released independently.
type List[T any, C any, PC refs.Counter[C]] struct {
	size int
	head *cell[T, C, PC]
	opts *Options[T]
}

// New returns an empty list.
func New[T any, C any, PC refs.Counter[C]](opts ...Option[T]) List[T, C, PC] {
	return List[T, C, PC]{opts: newOptions(opts...)}
}

// Of returns a list holding values, in order, so that Get(i) is values[i].
// The trees are built directly from the skew decomposition of len(values), in
// linear time and without the intermediate spines repeated Cons would create.
func Of[T any, C any, PC refs.Counter[C]](values ...T) List[T, C, PC] {
	return of[T, C, PC](nil, values)
}

func of[T any, C any, PC refs.Counter[C]](opts *Options[T], values []T) List[T, C, PC] {
	l := List[T, C, PC]{size: len(values), opts: opts}
	sizes := skew.Digits(uint64(len(values)))

	// link back to front so each cell can adopt its successor
	end := len(values)
	for i := len(sizes) - 1; i >= 0; i-- {
		start := end - int(sizes[i])
		l.head = newCell(build[T, C, PC](values[start:end]), l.head)
		end = start
	}
	return l
}

// Len returns the number of elements. O(1)
func (l List[T, C, PC]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l List[T, C, PC]) IsEmpty() bool {
	return l.size == 0
}

// Cons returns a new list with value in front of the elements of l. O(1)
//
// When the two front trees have equal size they are merged with value into a
// single tree, otherwise value becomes a new leaf at the front. This is the
// skew binary increment and never carries further.
func (l List[T, C, PC]) Cons(value T) List[T, C, PC] {
	next := List[T, C, PC]{size: l.size + 1, opts: l.opts}

	first := l.head
	if first != nil && first.next != nil && first.size == first.next.size {
		second := first.next
		next.head = newCell(merge(value, first.tree, second.tree), second.next.share())
		return next
	}
	next.head = newCell(newLeaf[T, C, PC](value), first.share())
	return next
}

// Uncons returns the first element and the list of the remaining elements.
// ok is false, and the returned list empty, only when l is empty. O(1)
//
// A front leaf is simply dropped. A front tree of size 2s+1 gives up its root
// value and is replaced by its two children of size s: the skew binary
// decrement.
func (l List[T, C, PC]) Uncons() (value T, rest List[T, C, PC], ok bool) {
	rest.opts = l.opts
	first := l.head
	if first == nil {
		return value, rest, false
	}
	rest.size = l.size - 1
	if first.tree.isLeaf() {
		rest.head = first.next.share()
		return first.tree.value, rest, true
	}
	value, left, right := first.tree.split()
	rest.head = newCell(left.share(), newCell(right.share(), first.next.share()))
	return value, rest, true
}

// First returns the first element without building the remaining list. O(1)
func (l List[T, C, PC]) First() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.head.tree.value, true
}

// Get returns the element at index i. ok is false if i is out of range.
// O(log n)
func (l List[T, C, PC]) Get(i int) (value T, ok bool) {
	if i < 0 || i >= l.size {
		return value, false
	}
	for c := l.head; c != nil; c = c.next {
		if i < c.size {
			return c.tree.get(i), true
		}
		i -= c.size
	}
	panic(fmt.Sprintf("ral: list length %d exceeds its trees", l.size))
}

// Update returns a new list with the element at index i replaced by value.
// ok is false, and the returned list empty, if i is out of range; l is never
// changed either way. O(log n)
//
// Only the path from the root of the containing tree down to i is copied.
// The spine is a persistent linked list, so the cells in front of the
// containing tree are copied too: up to one per digit, O(log n), rather than
// O(1). Their trees are shared. Everything behind the containing tree is
// shared outright. Updating index 0 copies a single node and a single cell.
func (l List[T, C, PC]) Update(i int, value T) (List[T, C, PC], bool) {
	if i < 0 || i >= l.size {
		return List[T, C, PC]{opts: l.opts}, false
	}

	front := make([]*cell[T, C, PC], 0, skew.DigitCount(uint64(l.size)))
	c := l.head
	for i >= c.size {
		front = append(front, c)
		i -= c.size
		c = c.next
	}

	head := newCell(c.tree.update(i, value), c.next.share())
	for j := len(front) - 1; j >= 0; j-- {
		head = newCell(front[j].tree.share(), head)
	}
	return List[T, C, PC]{size: l.size, head: head, opts: l.opts}, true
}

// Clone returns a new handle on the same list, holding its own reference. O(1)
func (l List[T, C, PC]) Clone() List[T, C, PC] {
	return List[T, C, PC]{size: l.size, head: l.head.share(), opts: l.opts}
}

// Release drops the reference l holds and leaves l empty. Trees and cells no
// longer referenced by any list are released in turn and, if a release hook
// is configured, their values are reported to it. Releasing an empty list is
// a no-op.
//
// Lists that are never released are reclaimed by the garbage collector as
// usual, without calling the hook.
func (l *List[T, C, PC]) Release() {
	l.head.release(l.opts.releaseHook())
	l.head = nil
	l.size = 0
}

// String formats the elements front to back, like a slice.
func (l List[T, C, PC]) String() string {
	return fmt.Sprint(l.Slice())
}
