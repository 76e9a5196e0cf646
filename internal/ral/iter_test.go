package ral

import (
	"testing"

	"github.com/forestrie/go-fral/refs"
	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	l := Of[int, refs.Atomic, *refs.Atomic](upto(50)...)

	next := 0
	for i, v := range l.All() {
		assert.Equal(t, next, i)
		assert.Equal(t, i, v)
		next++
	}
	assert.Equal(t, 50, next)

	// restartable, and in agreement with repeated Uncons
	var viaUncons []int
	for rest := l; ; {
		v, tail, ok := rest.Uncons()
		if !ok {
			break
		}
		viaUncons = append(viaUncons, v)
		rest = tail
	}
	var viaValues []int
	for v := range l.Values() {
		viaValues = append(viaValues, v)
	}
	assert.Equal(t, viaUncons, viaValues)
}

func TestAllStopsEarly(t *testing.T) {
	l := Of[int, refs.Local, *refs.Local](upto(100)...)

	for _, stop := range []int{0, 1, 2, 3, 17, 63, 99} {
		var got []int
		for i, v := range l.All() {
			got = append(got, v)
			if i == stop {
				break
			}
		}
		assert.Equal(t, upto(stop+1), got)
	}

	count := 0
	for v := range l.Values() {
		if v == 10 {
			break
		}
		count++
	}
	assert.Equal(t, 10, count)
}
