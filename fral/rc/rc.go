package rc

import (
	"iter"

	"github.com/forestrie/go-fral/internal/ral"
	"github.com/forestrie/go-fral/refs"
)

// List is a persistent random access list for use from a single goroutine.
// The zero List is empty and ready to use.
type List[T any] = ral.List[T, refs.Local, *refs.Local]

type Option[T any] = ral.Option[T]

func New[T any](opts ...Option[T]) List[T] {
	return ral.New[T, refs.Local, *refs.Local](opts...)
}

func Of[T any](values ...T) List[T] {
	return ral.Of[T, refs.Local, *refs.Local](values...)
}

func Collect[T any](seq iter.Seq[T]) List[T] {
	var l List[T]
	return l.Collect(seq)
}

func WithReleaseHook[T any](hook func(T)) Option[T] {
	return ral.WithReleaseHook(hook)
}

func Equal[T comparable](a, b List[T]) bool {
	return ral.Equal(a, b)
}

func EqualFunc[T any](a, b List[T], eq func(T, T) bool) bool {
	return ral.EqualFunc(a, b, eq)
}
