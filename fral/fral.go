package fral

import (
	"iter"

	"github.com/forestrie/go-fral/internal/ral"
	"github.com/forestrie/go-fral/refs"
)

// List is a persistent random access list whose shared structure is
// reference counted atomically. The zero List is empty and ready to use.
type List[T any] = ral.List[T, refs.Atomic, *refs.Atomic]

type Option[T any] = ral.Option[T]

// New returns an empty list configured with opts.
func New[T any](opts ...Option[T]) List[T] {
	return ral.New[T, refs.Atomic, *refs.Atomic](opts...)
}

// Of returns a list holding values in order, so that Get(i) is values[i].
// O(n)
func Of[T any](values ...T) List[T] {
	return ral.Of[T, refs.Atomic, *refs.Atomic](values...)
}

// Collect conses the values of seq onto an empty list, so the last value
// produced is at index 0.
func Collect[T any](seq iter.Seq[T]) List[T] {
	var l List[T]
	return l.Collect(seq)
}

// WithReleaseHook installs hook, called once for each value whose tree node
// is released by the last List referencing it.
func WithReleaseHook[T any](hook func(T)) Option[T] {
	return ral.WithReleaseHook(hook)
}

// Equal reports whether a and b hold equal elements in the same order.
// Structure shared by the two lists is not compared element by element.
func Equal[T comparable](a, b List[T]) bool {
	return ral.Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b List[T], eq func(T, T) bool) bool {
	return ral.EqualFunc(a, b, eq)
}
