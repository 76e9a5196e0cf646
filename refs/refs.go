// Package refs provides the reference counting strategies used to share
// immutable list structure between versions.
//
// Both strategies start at a count of one when initialised, report when the
// count drops to zero, and panic on underflow or on reviving a released
// count. A count going wrong means the owning data structure is broken, so
// there is nothing useful a caller could do with an error.
package refs

import "sync/atomic"

// Counter is satisfied by a pointer to a counter type C. Data structures
// embed C by value and reach the methods with PC(&field).
type Counter[C any] interface {
	*C
	InitRefs()
	IncRef()
	DecRef() bool
	ReadRefs() int64
}

// Atomic is a reference count that may be incremented and decremented from
// any number of goroutines concurrently.
type Atomic struct {
	n atomic.Int64
}

func (a *Atomic) InitRefs() { a.n.Store(1) }

// IncRef takes an additional reference.
func (a *Atomic) IncRef() {
	if a.n.Add(1) <= 1 {
		panic("refs: increment of a released reference")
	}
}

// DecRef drops a reference and reports whether it was the last one.
func (a *Atomic) DecRef() bool {
	n := a.n.Add(-1)
	if n < 0 {
		panic("refs: negative reference count")
	}
	return n == 0
}

func (a *Atomic) ReadRefs() int64 { return a.n.Load() }

// Local is a reference count for structures confined to a single goroutine.
// It costs a plain increment, and it is not safe for concurrent use.
type Local struct {
	n int64
}

func (l *Local) InitRefs() { l.n = 1 }

// IncRef takes an additional reference.
func (l *Local) IncRef() {
	l.n++
	if l.n <= 1 {
		panic("refs: increment of a released reference")
	}
}

// DecRef drops a reference and reports whether it was the last one.
func (l *Local) DecRef() bool {
	l.n--
	if l.n < 0 {
		panic("refs: negative reference count")
	}
	return l.n == 0
}

func (l *Local) ReadRefs() int64 { return l.n }
