package tensor

import (
	"github.com/stride-ml/stride/internal/parallel"
)

// Elementwise plumbing built on the iterator family. These helpers are the
// in-repo consumers of the capability: they only ever talk to providers
// through Begin/End-style traversals, never through container internals.

// Fill overwrites every element of p with value, in layout order.
func Fill[T any](p MutProvider[T], layout Layout, value T) {
	m := NewIterable[T](p)
	it, end := m.Begin(layout), m.End(layout)
	for !it.Equal(end) {
		it.Set(value)
		it.Next()
	}
}

// Transform replaces every element of p with f(element), in layout order.
func Transform[T any](p MutProvider[T], layout Layout, f func(T) T) {
	m := NewIterable[T](p)
	it, end := m.Begin(layout), m.End(layout)
	for !it.Equal(end) {
		it.Set(f(it.Value()))
		it.Next()
	}
}

// Assign copies src into dst position by position, broadcasting src to
// dst's shape. The broadcast is resolved by src's stepper factory; an
// incompatible shape fails there.
func Assign[T any](dst MutProvider[T], src Provider[T], layout Layout) {
	m := NewIterable[T](dst)
	s := NewConstIterable[T](src)

	it, end := m.Begin(layout), m.End(layout)
	sit := s.CBeginShape(dst.Shape(), layout)
	for !it.Equal(end) {
		it.Set(sit.Value())
		it.Next()
		sit.Next()
	}
}

// Collect returns the elements of a full forward traversal as a slice.
func Collect[T any](p Provider[T], layout Layout) []T {
	c := NewConstIterable[T](p)
	out := make([]T, 0, p.Shape().NumElements())
	for v := range c.All(layout) {
		out = append(out, v)
	}
	return out
}

// EqualValues reports whether a and b hold equal elements under their
// common broadcast shape.
func EqualValues[T comparable](a, b Provider[T], layout Layout) bool {
	shape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return false
	}

	ca, cb := NewConstIterable[T](a), NewConstIterable[T](b)
	ita, end := ca.CBeginShape(shape, layout), ca.CEndShape(shape, layout)
	itb := cb.CBeginShape(shape, layout)
	for !ita.Equal(end) {
		if ita.Value() != itb.Value() {
			return false
		}
		ita.Next()
		itb.Next()
	}
	return true
}

// TransformParallel is Transform with the traversal split across workers.
// Each worker clones the begin iterator and advances into its own chunk,
// so chunks never share cursor state. Mutation over overlapping positions
// is still the caller's problem; chunks here are disjoint.
func TransformParallel[T any](p MutProvider[T], layout Layout, f func(T) T, cfg parallel.Config) {
	n := p.Shape().NumElements()
	base := NewIterable[T](p).Begin(layout)

	parallel.ForRange(n, func(start, end int) {
		it := base.Clone()
		it.Advance(start)
		for i := start; i < end; i++ {
			it.Set(f(it.Value()))
			it.Next()
		}
	}, cfg)
}
