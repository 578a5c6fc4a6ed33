package tensor

// Provider is the contract a container implements to gain the read-only
// iteration capability. The container describes its own shape and produces
// position cursors. Everything else (direction, layout ordering, reverse
// adaption, broadcast driving shapes) is synthesized on top by
// ConstIterable and Iterable.
//
// The factories may be invoked with the container's own shape or with a
// caller-supplied broadcast shape. Whether a foreign shape is compatible is
// the factory's own business; the iteration layer performs no check.
type Provider[T any] interface {
	// Shape returns the container's own shape. The returned shape must stay
	// valid and unmodified for as long as any iterator derived from it is
	// alive; iterators keep a reference, never a copy.
	Shape() Shape

	// StepperBegin returns a cursor at the first logical position of the
	// iteration space described by shape.
	StepperBegin(shape Shape) Stepper[T]

	// StepperEnd returns a cursor one past the last logical position of the
	// iteration space described by shape, traversed per layout.
	StepperEnd(shape Shape, layout Layout) Stepper[T]
}

// MutProvider extends Provider with mutable cursor factories. Mutable and
// read-only cursors over the same (shape, layout) must visit positions in
// the same order; only the dereference differs.
type MutProvider[T any] interface {
	Provider[T]

	// MutStepperBegin is StepperBegin with in-place element writes enabled.
	MutStepperBegin(shape Shape) MutStepper[T]

	// MutStepperEnd is StepperEnd with in-place element writes enabled.
	MutStepperEnd(shape Shape, layout Layout) MutStepper[T]
}
