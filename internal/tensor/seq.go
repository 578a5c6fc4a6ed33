package tensor

import "iter"

// All returns the elements of a full forward traversal as a range-over-func
// sequence, for use with the for-range statement:
//
//	for v := range c.All(tensor.RowMajor) { ... }
func (c ConstIterable[T]) All(layout Layout) iter.Seq[T] {
	return func(yield func(T) bool) {
		it, end := c.CBegin(layout), c.CEnd(layout)
		for !it.Equal(end) {
			if !yield(it.Value()) {
				return
			}
			it.Next()
		}
	}
}

// AllReversed is All in reverse traversal order.
func (c ConstIterable[T]) AllReversed(layout Layout) iter.Seq[T] {
	return func(yield func(T) bool) {
		it, end := c.CRBegin(layout), c.CREnd(layout)
		for !it.Equal(end) {
			if !yield(it.Value()) {
				return
			}
			it.Next()
		}
	}
}

// AllShape is All driven by a caller-supplied broadcast shape.
func (c ConstIterable[T]) AllShape(shape Shape, layout Layout) iter.Seq[T] {
	return func(yield func(T) bool) {
		it, end := c.CBeginShape(shape, layout), c.CEndShape(shape, layout)
		for !it.Equal(end) {
			if !yield(it.Value()) {
				return
			}
			it.Next()
		}
	}
}

// Indices iterates over all multi-indices of shape in the given layout
// order. The yielded slice is reused between iterations; don't hold on to
// it or modify it inside the loop.
func Indices(shape Shape, layout Layout) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if shape.Validate() != nil {
			return
		}

		rank := shape.Rank()
		index := make([]int, rank)
		if rank == 0 {
			// Valid scalar: yield one empty index slice.
			yield(index)
			return
		}

		for {
			if !yield(index) {
				return
			}

			// Bump the fastest axis and carry over into slower ones.
			carried := true
			if layout == ColMajor {
				for axis := 0; axis < rank; axis++ {
					index[axis]++
					if index[axis] < shape[axis] {
						carried = false
						break
					}
					index[axis] = 0
				}
			} else {
				for axis := rank - 1; axis >= 0; axis-- {
					index[axis]++
					if index[axis] < shape[axis] {
						carried = false
						break
					}
					index[axis] = 0
				}
			}
			if carried {
				// The slowest axis overflowed: every index has been visited.
				return
			}
		}
	}
}
