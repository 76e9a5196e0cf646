package main

// consList is the naive persistent list: O(1) cons and uncons, O(n) lookup
// and update. It is the baseline the random access lists are measured
// against.
type consList struct {
	first uint8
	rest  *consList
	count int
}

func (l *consList) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

func (l *consList) Cons(v uint8) *consList {
	return &consList{v, l, l.Len() + 1}
}

func (l *consList) Uncons() (uint8, *consList, bool) {
	if l == nil {
		return 0, nil, false
	}
	return l.first, l.rest, true
}

func (l *consList) Get(i int) (uint8, bool) {
	if i < 0 || i >= l.Len() {
		return 0, false
	}
	for ; i > 0; i-- {
		l = l.rest
	}
	return l.first, true
}

// Update copies every cell in front of i.
func (l *consList) Update(i int, v uint8) (*consList, bool) {
	if i < 0 || i >= l.Len() {
		return nil, false
	}
	if i == 0 {
		return l.rest.Cons(v), true
	}
	rest, _ := l.rest.Update(i-1, v)
	return rest.Cons(l.first), true
}
