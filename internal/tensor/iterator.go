package tensor

import "fmt"

// Iterator is the read-only directional iterator over a shaped container.
// It combines a position cursor with the driving shape, the traversal
// layout, and its own multi-index; the (shape, layout) pair is fixed at
// construction and only the cursor position ever changes.
//
// Iterators are created by ConstIterable and Iterable, advanced with Next,
// and compared against the matching end iterator with Equal. Comparing
// iterators from different (shape, layout) constructions is undefined.
// Exhaustion is detected only through Equal; there is no error state.
type Iterator[T any] struct {
	stepper Stepper[T]
	shape   Shape // borrowed: owned by the container or the caller
	layout  Layout
	index   []int
	pos     int // logical position in [0, n]; n means one past the last
	n       int
}

func newIterator[T any](stepper Stepper[T], shape Shape, layout Layout, atEnd bool) *Iterator[T] {
	it := &Iterator[T]{
		stepper: stepper,
		shape:   shape,
		layout:  layout,
		index:   make([]int, len(shape)),
		n:       shape.NumElements(),
	}
	if atEnd {
		it.pos = it.n
		if len(shape) > 0 {
			slowest := layout.slowestAxis(len(shape))
			it.index[slowest] = shape[slowest]
		}
	}
	return it
}

// Next advances the iterator one logical position per its layout.
// Advancing past the end iterator is undefined.
func (it *Iterator[T]) Next() {
	it.pos++
	incrementStepper(it.stepper, it.index, it.shape, it.layout)
}

// prev moves one logical position backwards. Used by the reverse adaptor.
func (it *Iterator[T]) prev() {
	it.pos--
	decrementStepper(it.stepper, it.index, it.shape, it.layout)
}

// Advance calls Next n times.
func (it *Iterator[T]) Advance(n int) {
	for i := 0; i < n; i++ {
		it.Next()
	}
}

// Value reads the element at the current position.
// It panics when the iterator is positioned at or past the end.
func (it *Iterator[T]) Value() T {
	if it.pos < 0 || it.pos >= it.n {
		panic(fmt.Sprintf("tensor: dereference of out-of-range iterator (pos %d of %d)", it.pos, it.n))
	}
	return it.stepper.Value()
}

// Index returns the current multi-index in the driving shape. The slice is
// owned by the iterator; callers must not modify it.
func (it *Iterator[T]) Index() []int {
	return it.index
}

// Pos returns the logical position, i.e. the number of advances since the
// first element.
func (it *Iterator[T]) Pos() int {
	return it.pos
}

// Shape returns the driving shape the iterator was built over.
func (it *Iterator[T]) Shape() Shape {
	return it.shape
}

// Layout returns the traversal layout fixed at construction.
func (it *Iterator[T]) Layout() Layout {
	return it.layout
}

// Equal reports whether both iterators sit at the same logical position.
// Only meaningful for iterators built from the same (shape, layout).
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.pos == other.pos
}

// Clone returns an independent iterator at the same position. The clone and
// the original advance without affecting each other; the driving shape
// stays shared.
func (it *Iterator[T]) Clone() *Iterator[T] {
	clone := &Iterator[T]{
		stepper: it.stepper.Clone(),
		shape:   it.shape,
		layout:  it.layout,
		index:   make([]int, len(it.index)),
		pos:     it.pos,
		n:       it.n,
	}
	copy(clone.index, it.index)
	return clone
}

// MutIterator is the mutable directional iterator. It traverses exactly
// like Iterator over the same (shape, layout); in addition its current
// element can be overwritten in place with Set.
type MutIterator[T any] struct {
	stepper MutStepper[T]
	shape   Shape
	layout  Layout
	index   []int
	pos     int
	n       int
}

func newMutIterator[T any](stepper MutStepper[T], shape Shape, layout Layout, atEnd bool) *MutIterator[T] {
	it := &MutIterator[T]{
		stepper: stepper,
		shape:   shape,
		layout:  layout,
		index:   make([]int, len(shape)),
		n:       shape.NumElements(),
	}
	if atEnd {
		it.pos = it.n
		if len(shape) > 0 {
			slowest := layout.slowestAxis(len(shape))
			it.index[slowest] = shape[slowest]
		}
	}
	return it
}

// Next advances the iterator one logical position per its layout.
func (it *MutIterator[T]) Next() {
	it.pos++
	incrementStepper[T](it.stepper, it.index, it.shape, it.layout)
}

func (it *MutIterator[T]) prev() {
	it.pos--
	decrementStepper[T](it.stepper, it.index, it.shape, it.layout)
}

// Advance calls Next n times.
func (it *MutIterator[T]) Advance(n int) {
	for i := 0; i < n; i++ {
		it.Next()
	}
}

// Value reads the element at the current position.
func (it *MutIterator[T]) Value() T {
	if it.pos < 0 || it.pos >= it.n {
		panic(fmt.Sprintf("tensor: dereference of out-of-range iterator (pos %d of %d)", it.pos, it.n))
	}
	return it.stepper.Value()
}

// Set overwrites the element at the current position.
func (it *MutIterator[T]) Set(v T) {
	if it.pos < 0 || it.pos >= it.n {
		panic(fmt.Sprintf("tensor: write through out-of-range iterator (pos %d of %d)", it.pos, it.n))
	}
	it.stepper.Set(v)
}

// Index returns the current multi-index. The slice is owned by the
// iterator; callers must not modify it.
func (it *MutIterator[T]) Index() []int {
	return it.index
}

// Pos returns the logical position.
func (it *MutIterator[T]) Pos() int {
	return it.pos
}

// Shape returns the driving shape.
func (it *MutIterator[T]) Shape() Shape {
	return it.shape
}

// Layout returns the traversal layout.
func (it *MutIterator[T]) Layout() Layout {
	return it.layout
}

// Equal reports whether both iterators sit at the same logical position.
func (it *MutIterator[T]) Equal(other *MutIterator[T]) bool {
	return it.pos == other.pos
}

// Clone returns an independent mutable iterator at the same position.
func (it *MutIterator[T]) Clone() *MutIterator[T] {
	clone := &MutIterator[T]{
		stepper: it.stepper.MutClone(),
		shape:   it.shape,
		layout:  it.layout,
		index:   make([]int, len(it.index)),
		pos:     it.pos,
		n:       it.n,
	}
	copy(clone.index, it.index)
	return clone
}

// incrementStepper drives one layout-ordered advance: bump the fastest axis
// and carry over into slower ones, resetting each exhausted axis. A carry
// out of the slowest axis parks the cursor at the one-past-last sentinel.
func incrementStepper[T any](s Stepper[T], index []int, shape Shape, layout Layout) {
	rank := len(shape)
	if rank == 0 {
		// Scalar: the one advance parks the cursor at the end sentinel.
		s.ToEnd(layout)
		return
	}

	if layout == ColMajor {
		for axis := 0; axis < rank; axis++ {
			if index[axis]+1 != shape[axis] {
				index[axis]++
				s.Step(axis, 1)
				return
			}
			if axis != rank-1 {
				index[axis] = 0
				s.Reset(axis)
			} else {
				index[axis] = shape[axis]
				s.ToEnd(layout)
			}
		}
		return
	}

	for axis := rank - 1; axis >= 0; axis-- {
		if index[axis]+1 != shape[axis] {
			index[axis]++
			s.Step(axis, 1)
			return
		}
		if axis != 0 {
			index[axis] = 0
			s.Reset(axis)
		} else {
			index[axis] = shape[axis]
			s.ToEnd(layout)
		}
	}
}

// decrementStepper is the exact inverse of incrementStepper. Stepping back
// over the end sentinel lands on the last element of the layout order.
func decrementStepper[T any](s Stepper[T], index []int, shape Shape, layout Layout) {
	rank := len(shape)
	if rank == 0 {
		// Scalar: stepping back over the end sentinel lands on the only
		// element.
		s.ToBegin()
		return
	}

	slowest := layout.slowestAxis(rank)
	if index[slowest] == shape[slowest] {
		s.ToBegin()
		for axis := range shape {
			index[axis] = shape[axis] - 1
			s.Step(axis, shape[axis]-1)
		}
		return
	}

	if layout == ColMajor {
		for axis := 0; axis < rank; axis++ {
			if index[axis] != 0 {
				index[axis]--
				s.StepBack(axis, 1)
				return
			}
			index[axis] = shape[axis] - 1
			s.ResetBack(axis)
		}
		return
	}

	for axis := rank - 1; axis >= 0; axis-- {
		if index[axis] != 0 {
			index[axis]--
			s.StepBack(axis, 1)
			return
		}
		index[axis] = shape[axis] - 1
		s.ResetBack(axis)
	}
}
