package tensor

// Stepper is an opaque position cursor over a (shape, layout) iteration
// space. A stepper only knows how to move along individual axes; the
// layout-ordered walk through index space is driven by Iterator, which calls
// these axis moves in the right order. This keeps exactly one advancement
// algorithm per container regardless of traversal direction or layout.
//
// A stepper is bound to the driving shape it was built for. Mixing steppers
// built from different (shape, layout) constructions is undefined.
type Stepper[T any] interface {
	// Step moves n positions forward along axis.
	Step(axis, n int)
	// StepBack moves n positions backward along axis.
	StepBack(axis, n int)
	// Reset moves from the last index of axis back to index 0.
	Reset(axis int)
	// ResetBack moves from index 0 of axis to its last index.
	ResetBack(axis int)
	// ToBegin repositions the cursor at the first logical position.
	ToBegin()
	// ToEnd repositions the cursor one past the last logical position for
	// the given layout. The resulting position must not be dereferenced.
	ToEnd(layout Layout)
	// Value reads the element at the current position.
	Value() T
	// Clone returns an independent cursor at the same position.
	Clone() Stepper[T]
}

// MutStepper is a Stepper whose current element can be overwritten in place.
type MutStepper[T any] interface {
	Stepper[T]
	// Set overwrites the element at the current position.
	Set(v T)
	// MutClone returns an independent mutable cursor at the same position.
	MutClone() MutStepper[T]
}

// stridedStepper walks a flat data slice through per-axis strides. Broadcast
// axes carry stride 0, so stepping along them revisits the same element.
// It implements both Stepper and MutStepper over the same state; the
// capability layer decides which face a consumer sees.
type stridedStepper[T any] struct {
	data    []T
	shape   Shape // driving shape, borrowed from the factory caller
	strides []int // len(strides) == len(shape); 0 on broadcast axes
	base    int   // flat offset of the first logical position
	offset  int   // flat offset of the current position
}

// newStridedStepper returns a stepper positioned at the first logical
// position of shape. The shape and strides slices are borrowed, not copied.
func newStridedStepper[T any](data []T, base int, shape Shape, strides []int) *stridedStepper[T] {
	return &stridedStepper[T]{
		data:    data,
		shape:   shape,
		strides: strides,
		base:    base,
		offset:  base,
	}
}

func (s *stridedStepper[T]) Step(axis, n int) {
	s.offset += n * s.strides[axis]
}

func (s *stridedStepper[T]) StepBack(axis, n int) {
	s.offset -= n * s.strides[axis]
}

func (s *stridedStepper[T]) Reset(axis int) {
	s.offset -= (s.shape[axis] - 1) * s.strides[axis]
}

func (s *stridedStepper[T]) ResetBack(axis int) {
	s.offset += (s.shape[axis] - 1) * s.strides[axis]
}

func (s *stridedStepper[T]) ToBegin() {
	s.offset = s.base
}

func (s *stridedStepper[T]) ToEnd(layout Layout) {
	s.offset = s.base
	for axis, dim := range s.shape {
		s.offset += (dim - 1) * s.strides[axis]
	}
	if len(s.shape) == 0 {
		s.offset++
		return
	}
	s.offset += s.strides[layout.fastestAxis(len(s.shape))]
}

func (s *stridedStepper[T]) Value() T {
	return s.data[s.offset]
}

func (s *stridedStepper[T]) Set(v T) {
	s.data[s.offset] = v
}

func (s *stridedStepper[T]) Clone() Stepper[T] {
	return s.MutClone()
}

func (s *stridedStepper[T]) MutClone() MutStepper[T] {
	clone := *s
	return &clone
}
