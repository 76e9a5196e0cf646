package ral

// Options configure a list. They are fixed when the list is created and are
// inherited by every list derived from it.
type Options[T any] struct {
	// ReleaseHook, if set, sees each value exactly once, when the last
	// reference to the tree node holding it is released. Nodes copied by
	// Update hold the same value, so a value may be reported once per copy.
	ReleaseHook func(T)
}

type Option[T any] func(*Options[T])

// WithReleaseHook installs a hook called from Release for every value whose
// node is no longer referenced by any list.
func WithReleaseHook[T any](hook func(T)) Option[T] {
	return func(opts *Options[T]) {
		opts.ReleaseHook = hook
	}
}

func newOptions[T any](opts ...Option[T]) *Options[T] {
	if len(opts) == 0 {
		return nil
	}
	options := &Options[T]{}
	for _, o := range opts {
		o(options)
	}
	return options
}

func (o *Options[T]) releaseHook() func(T) {
	if o == nil {
		return nil
	}
	return o.ReleaseHook
}
