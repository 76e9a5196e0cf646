// Package ral implements the purely functional random access list of
// Okasaki, "Purely Functional Random-Access Lists" (FPCA 1995), once, over any
// reference counting strategy from package refs.
//
// Cons, Uncons and First are O(1), Get and Update are O(log n). The elements
// live in a forest of complete binary trees whose sizes spell the skew binary
// numeral of the length, see package skew. Old versions are never modified:
// new versions share every subtree they do not change.
//
// The public packages fral and fral/rc instantiate List with atomic and
// single goroutine reference counts respectively.
package ral
