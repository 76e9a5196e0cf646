package ral

import (
	"testing"

	"github.com/forestrie/go-fral/refs"
	"github.com/stretchr/testify/require"
)

type counted interface {
	ReadRefs() int64
}

// requireCounts checks that the reference count of every cell and node
// reachable from lists equals the number of handles and parents pointing at
// it. Every live handle sharing structure with lists must be passed in.
func requireCounts[T any, C any, PC refs.Counter[C]](t *testing.T, lists ...List[T, C, PC]) {
	t.Helper()

	want := map[counted]int64{}
	seen := map[counted]bool{}

	var visitNode func(n *node[T, C, PC])
	visitNode = func(n *node[T, C, PC]) {
		if n == nil {
			return
		}
		key := counted(PC(&n.refs))
		want[key]++
		if seen[key] {
			return
		}
		seen[key] = true
		visitNode(n.left)
		visitNode(n.right)
	}
	var visitCell func(c *cell[T, C, PC])
	visitCell = func(c *cell[T, C, PC]) {
		if c == nil {
			return
		}
		key := counted(PC(&c.refs))
		want[key]++
		if seen[key] {
			return
		}
		seen[key] = true
		visitNode(c.tree)
		visitCell(c.next)
	}
	for _, l := range lists {
		visitCell(l.head)
	}
	for c, n := range want {
		require.Equal(t, n, c.ReadRefs())
	}
}

// reachable returns every counter reachable from l.
func reachable[T any, C any, PC refs.Counter[C]](l List[T, C, PC]) []counted {
	var out []counted
	seen := map[counted]bool{}
	var visitNode func(n *node[T, C, PC])
	visitNode = func(n *node[T, C, PC]) {
		if n == nil || seen[PC(&n.refs)] {
			return
		}
		seen[PC(&n.refs)] = true
		out = append(out, PC(&n.refs))
		visitNode(n.left)
		visitNode(n.right)
	}
	for c := l.head; c != nil; c = c.next {
		if seen[PC(&c.refs)] {
			continue
		}
		seen[PC(&c.refs)] = true
		out = append(out, PC(&c.refs))
		visitNode(c.tree)
	}
	return out
}

func digitSizes[T any, C any, PC refs.Counter[C]](l List[T, C, PC]) []uint64 {
	var sizes []uint64
	for c := l.head; c != nil; c = c.next {
		sizes = append(sizes, uint64(c.size))
	}
	return sizes
}

func consAll[T any, C any, PC refs.Counter[C]](values ...T) List[T, C, PC] {
	var l List[T, C, PC]
	for _, v := range values {
		next := l.Cons(v)
		l.Release()
		l = next
	}
	return l
}

func upto(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values
}
