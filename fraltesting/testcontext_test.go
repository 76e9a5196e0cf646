package fraltesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorsAreReproducible(t *testing.T) {
	a := NewTestContext(t, TestConfig{Seed: 42, TestLabelPrefix: "fraltesting"})
	b := NewTestContext(t, TestConfig{Seed: 42, TestLabelPrefix: "fraltesting"})

	assert.Equal(t, a.Ints(100, 1000), b.Ints(100, 1000))
	assert.Equal(t, a.Bytes(64), b.Bytes(64))

	ua, ub := a.UUIDs(10), b.UUIDs(10)
	assert.Equal(t, ua, ub)
	seen := map[string]bool{}
	for _, id := range ua {
		assert.Len(t, id, 36)
		assert.False(t, seen[id])
		seen[id] = true
	}

	for _, op := range a.Ops(500) {
		assert.Less(t, op.Kind, opKinds)
	}
}

func TestModel(t *testing.T) {
	m := Model{}.Cons(1).Cons(2)
	assert.Equal(t, Model{2, 1}, m)

	v, rest, ok := m.Uncons()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, Model{1}, rest)

	u, ok := m.Update(1, 9)
	assert.True(t, ok)
	assert.Equal(t, Model{2, 9}, u)
	assert.Equal(t, Model{2, 1}, m)

	_, ok = m.Update(2, 0)
	assert.False(t, ok)
	_, _, ok = Model{}.Uncons()
	assert.False(t, ok)
}
