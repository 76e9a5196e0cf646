// Package rc provides the same functional random access list as package fral,
// with reference counts that are not synchronised.
//
// Reading a list, with Len, First, Get, All, Values or String, is safe from
// any number of goroutines because reads never touch reference counts. The
// operations that take or drop references, Cons, Uncons, Update, Clone and
// Release, must not run concurrently on lists that share structure. Use
// package fral when versions are handed between goroutines.
package rc
