package fraltesting

import (
	"github.com/stretchr/testify/require"
)

// Sequence is the surface shared by every list variant, as seen from a
// script of int operations.
type Sequence[S any] interface {
	Len() int
	Cons(int) S
	Uncons() (int, S, bool)
	Get(int) (int, bool)
	Update(int, int) (S, bool)
	Slice() []int
	Validate() error
}

type fork[S any] struct {
	list  S
	model Model
}

// RunScript applies ops to empty and to a slice model in lock step and fails
// the test on the first disagreement. Versions kept by OpFork are checked at
// the end, they must be exactly as they were when kept.
func RunScript[S Sequence[S]](c *TestContext, empty S, ops []Op) {
	t := c.T
	t.Helper()

	cur := empty
	model := Model{}
	var forks []fork[S]

	for n, op := range ops {
		index := op.Index % (len(model) + 1)
		switch op.Kind {
		case OpCons:
			cur = cur.Cons(op.Value)
			model = model.Cons(op.Value)
		case OpUncons:
			v, rest, ok := cur.Uncons()
			mv, mrest, mok := model.Uncons()
			require.Equal(t, mok, ok, "op %d", n)
			if ok {
				require.Equal(t, mv, v, "op %d", n)
				cur, model = rest, mrest
			}
		case OpUpdate:
			u, ok := cur.Update(index, op.Value)
			mu, mok := model.Update(index, op.Value)
			require.Equal(t, mok, ok, "op %d", n)
			if ok {
				cur, model = u, mu
			}
		case OpGet:
			v, ok := cur.Get(index)
			require.Equal(t, index < len(model), ok, "op %d", n)
			if ok {
				require.Equal(t, model[index], v, "op %d", n)
			}
		case OpFork:
			forks = append(forks, fork[S]{cur, model})
		}
		require.Equal(t, len(model), cur.Len(), "op %d", n)
		if n%64 == 0 {
			require.NoError(t, cur.Validate(), "op %d", n)
			require.Equal(t, []int(model), cur.Slice(), "op %d", n)
		}
	}
	require.NoError(t, cur.Validate())
	require.Equal(t, []int(model), cur.Slice())

	for i, f := range forks {
		require.Equal(t, []int(f.model), f.list.Slice(), "fork %d", i)
	}
	c.Log.Infof("script: %d ops, final length %d, %d forks checked", len(ops), len(model), len(forks))
}
