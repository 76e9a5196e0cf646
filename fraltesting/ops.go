package fraltesting

// OpKind names an operation in a randomly generated script.
type OpKind uint8

const (
	OpCons OpKind = iota
	OpUncons
	OpUpdate
	OpGet
	// OpFork keeps the current version aside and carries on from it, so
	// later checks can see whether the kept version changed.
	OpFork

	opKinds
)

var opWeights = []OpKind{
	OpCons, OpCons, OpCons, OpCons,
	OpUncons, OpUncons,
	OpUpdate,
	OpGet, OpGet,
	OpFork,
}

type Op struct {
	Kind OpKind
	// Index is reduced modulo the current length by the consumer.
	Index int
	Value int
}

// Model is a plain slice that applies an Op script the obvious, copying, way.
// It is the oracle the persistent lists are checked against.
type Model []int

func (m Model) Cons(v int) Model {
	out := make(Model, 0, len(m)+1)
	out = append(out, v)
	return append(out, m...)
}

func (m Model) Uncons() (int, Model, bool) {
	if len(m) == 0 {
		return 0, m, false
	}
	return m[0], m[1:], true
}

func (m Model) Update(i int, v int) (Model, bool) {
	if i < 0 || i >= len(m) {
		return nil, false
	}
	out := append(Model(nil), m...)
	out[i] = v
	return out, true
}
