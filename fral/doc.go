// Package fral provides functional random access lists: persistent sequences
// with O(1) Cons, Uncons and First, and O(log n) Get and Update, after Chris
// Okasaki's "Purely Functional Random-Access Lists" (FPCA 1995).
//
// Every operation returns a new list and leaves the old one intact, so any
// version can be kept, shared and read from any number of goroutines:
//
//	var f fral.List[int]
//	for _, v := range []int{1, 2, 3, 4, 5} {
//		f = f.Cons(v)
//	}
//	v, _ := f.Get(4)        // 1, in O(log n)
//	_, ok := f.Get(5)       // false, out of range
//	head, tail, _ := f.Uncons() // 5 and a list of length 4, in O(1)
//	g := f.Cons(42)         // f still holds 5 4 3 2 1
//
// Lists in this package count references to shared structure atomically, so
// handles may also be cloned and released concurrently. Package fral/rc has
// the same API with cheaper, single goroutine reference counts.
//
// References only matter for the optional release hook, see
// WithReleaseHook. Code that does not install a hook can ignore Clone and
// Release entirely and let the garbage collector reclaim old versions.
package fral
