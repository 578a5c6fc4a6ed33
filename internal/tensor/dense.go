package tensor

import "fmt"

// Dense is a dense, row-major multidimensional container. It stores its
// elements in one flat slice and gains the whole iterator family by
// implementing the stepper factories and embedding Iterable.
//
// Views created with Slice share the underlying slice with their parent;
// the offset keeps iteration anchored at the view's first element.
type Dense[T DType] struct {
	Iterable[T]

	data    []T
	shape   Shape
	strides []int // storage strides, always row-major
	offset  int
	dtype   DataType
}

// NewDense creates a zero-valued container with the given shape.
func NewDense[T DType](shape Shape) (*Dense[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	var dummy T
	d := &Dense[T]{
		data:    make([]T, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.Strides(RowMajor),
		dtype:   inferDataType(dummy),
	}
	d.Iterable = NewIterable[T](d)
	return d, nil
}

// FromSlice creates a container from a Go slice laid out in row-major
// order. The slice is copied into the container's own memory.
func FromSlice[T DType](data []T, shape Shape) (*Dense[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	d, err := NewDense[T](shape)
	if err != nil {
		return nil, err
	}
	copy(d.data, data)
	return d, nil
}

// Zeros creates a zero-valued container, panicking on an invalid shape.
func Zeros[T DType](shape Shape) *Dense[T] {
	d, err := NewDense[T](shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return d
}

// Full creates a container with every element set to value.
func Full[T DType](shape Shape, value T) *Dense[T] {
	d := Zeros[T](shape)
	for i := range d.data {
		d.data[i] = value
	}
	return d
}

// Shape returns the container's shape. Iterators built under this shape
// reference it directly; it stays valid as long as the container does.
func (d *Dense[T]) Shape() Shape {
	return d.shape
}

// DType returns the container's element type.
func (d *Dense[T]) DType() DataType {
	return d.dtype
}

// NumElements returns the total number of elements.
func (d *Dense[T]) NumElements() int {
	return d.shape.NumElements()
}

// ByteSize returns the memory footprint of the container's elements.
func (d *Dense[T]) ByteSize() int {
	return d.NumElements() * d.dtype.Size()
}

// Strides returns the container's storage strides.
func (d *Dense[T]) Strides() []int {
	return d.strides
}

// Data returns the container's elements as a flat row-major slice.
// The slice aliases the container's memory.
func (d *Dense[T]) Data() []T {
	return d.data[d.offset : d.offset+d.NumElements()]
}

// At returns the element at the given multi-index.
// Panics on a rank mismatch or an out-of-range index.
func (d *Dense[T]) At(indices ...int) T {
	return d.data[d.flatIndex(indices)]
}

// Set overwrites the element at the given multi-index.
func (d *Dense[T]) Set(value T, indices ...int) {
	d.data[d.flatIndex(indices)] = value
}

func (d *Dense[T]) flatIndex(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("tensor: expected %d indices for shape %v, got %d", len(d.shape), d.shape, len(indices)))
	}
	flat := d.offset
	for axis, idx := range indices {
		if idx < 0 || idx >= d.shape[axis] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d of shape %v", idx, axis, d.shape))
		}
		flat += idx * d.strides[axis]
	}
	return flat
}

// Slice returns a view of rows [start, stop) along the leading axis.
// The view shares memory with the parent: writes through either are
// visible in both.
func (d *Dense[T]) Slice(start, stop int) (*Dense[T], error) {
	if len(d.shape) == 0 {
		return nil, fmt.Errorf("cannot slice a scalar container")
	}
	if start < 0 || stop > d.shape[0] || start >= stop {
		return nil, fmt.Errorf("invalid slice [%d:%d) for leading dimension %d", start, stop, d.shape[0])
	}

	shape := d.shape.Clone()
	shape[0] = stop - start
	view := &Dense[T]{
		data:    d.data,
		shape:   shape,
		strides: d.strides,
		offset:  d.offset + start*d.strides[0],
		dtype:   d.dtype,
	}
	view.Iterable = NewIterable[T](view)
	return view, nil
}

// Clone returns a deep copy with its own memory.
func (d *Dense[T]) Clone() *Dense[T] {
	clone := Zeros[T](d.shape)
	copy(clone.data, d.Data())
	return clone
}

func (d *Dense[T]) String() string {
	return fmt.Sprintf("Dense[%s] shape=%v", d.dtype, d.shape)
}

// StepperBegin returns a read-only cursor at the first position of shape,
// which may be the container's own shape or a broadcast shape.
func (d *Dense[T]) StepperBegin(shape Shape) Stepper[T] {
	return d.MutStepperBegin(shape)
}

// StepperEnd returns a read-only cursor one past the last position of
// shape, traversed per layout.
func (d *Dense[T]) StepperEnd(shape Shape, layout Layout) Stepper[T] {
	return d.MutStepperEnd(shape, layout)
}

// MutStepperBegin returns a mutable cursor at the first position of shape.
// An incompatible broadcast shape panics here, in the factory; the
// iteration layer above never checks.
func (d *Dense[T]) MutStepperBegin(shape Shape) MutStepper[T] {
	return newStridedStepper(d.data, d.offset, shape, d.stepperStrides(shape))
}

// MutStepperEnd returns a mutable cursor one past the last position of
// shape, traversed per layout.
func (d *Dense[T]) MutStepperEnd(shape Shape, layout Layout) MutStepper[T] {
	s := newStridedStepper(d.data, d.offset, shape, d.stepperStrides(shape))
	s.ToEnd(layout)
	return s
}

func (d *Dense[T]) stepperStrides(shape Shape) []int {
	if shape.Equal(d.shape) {
		return d.strides
	}
	strides, err := BroadcastStrides(d.shape, d.strides, shape)
	if err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return strides
}
