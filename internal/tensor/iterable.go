package tensor

// ConstIterable synthesizes the read-only iterator family for any Provider:
// forward and reverse, under the container's own shape or a caller-supplied
// broadcast shape, in any supported layout. It holds nothing but the
// provider and performs no validation; a broadcast shape the provider
// cannot serve fails inside the provider's stepper factory.
//
// Every call produces a fresh, independent traversal. The driving shape is
// referenced, never copied: it must outlive every iterator built from it.
type ConstIterable[T any] struct {
	p Provider[T]
}

// NewConstIterable builds the read-only iteration capability over p.
func NewConstIterable[T any](p Provider[T]) ConstIterable[T] {
	return ConstIterable[T]{p: p}
}

// Begin returns a read-only iterator at the first element under the
// container's own shape, traversed per layout.
func (c ConstIterable[T]) Begin(layout Layout) *Iterator[T] {
	return c.CBegin(layout)
}

// End returns the read-only one-past-last iterator matching Begin.
func (c ConstIterable[T]) End(layout Layout) *Iterator[T] {
	return c.CEnd(layout)
}

// CBegin is Begin under a name that stays read-only even where mutable
// overloads shadow Begin.
func (c ConstIterable[T]) CBegin(layout Layout) *Iterator[T] {
	shape := c.p.Shape()
	return newIterator(c.p.StepperBegin(shape), shape, layout, false)
}

// CEnd is the read-only counterpart of End, mirroring CBegin.
func (c ConstIterable[T]) CEnd(layout Layout) *Iterator[T] {
	shape := c.p.Shape()
	return newIterator(c.p.StepperEnd(shape, layout), shape, layout, true)
}

// RBegin returns a read-only reverse iterator at the last element:
// the reverse adaptor over End.
func (c ConstIterable[T]) RBegin(layout Layout) *ReverseIterator[T] {
	return c.CRBegin(layout)
}

// REnd returns the read-only reverse one-past-last iterator:
// the reverse adaptor over Begin.
func (c ConstIterable[T]) REnd(layout Layout) *ReverseIterator[T] {
	return c.CREnd(layout)
}

// CRBegin is RBegin under an unshadowable read-only name.
func (c ConstIterable[T]) CRBegin(layout Layout) *ReverseIterator[T] {
	return NewReverseIterator(c.CEnd(layout))
}

// CREnd is REnd under an unshadowable read-only name.
func (c ConstIterable[T]) CREnd(layout Layout) *ReverseIterator[T] {
	return NewReverseIterator(c.CBegin(layout))
}

// BeginShape returns a read-only iterator at the first position of the
// caller-supplied broadcast shape. The shape is borrowed for the lifetime
// of the iterator; compatibility with the container is the stepper
// factory's business.
func (c ConstIterable[T]) BeginShape(shape Shape, layout Layout) *Iterator[T] {
	return c.CBeginShape(shape, layout)
}

// EndShape returns the read-only one-past-last iterator matching BeginShape.
func (c ConstIterable[T]) EndShape(shape Shape, layout Layout) *Iterator[T] {
	return c.CEndShape(shape, layout)
}

// CBeginShape is BeginShape under an unshadowable read-only name.
func (c ConstIterable[T]) CBeginShape(shape Shape, layout Layout) *Iterator[T] {
	return newIterator(c.p.StepperBegin(shape), shape, layout, false)
}

// CEndShape is EndShape under an unshadowable read-only name.
func (c ConstIterable[T]) CEndShape(shape Shape, layout Layout) *Iterator[T] {
	return newIterator(c.p.StepperEnd(shape, layout), shape, layout, true)
}

// RBeginShape returns a read-only reverse iterator over the broadcast shape.
func (c ConstIterable[T]) RBeginShape(shape Shape, layout Layout) *ReverseIterator[T] {
	return c.CRBeginShape(shape, layout)
}

// REndShape returns the read-only reverse end iterator over the broadcast
// shape.
func (c ConstIterable[T]) REndShape(shape Shape, layout Layout) *ReverseIterator[T] {
	return c.CREndShape(shape, layout)
}

// CRBeginShape is RBeginShape under an unshadowable read-only name.
func (c ConstIterable[T]) CRBeginShape(shape Shape, layout Layout) *ReverseIterator[T] {
	return NewReverseIterator(c.CEndShape(shape, layout))
}

// CREndShape is REndShape under an unshadowable read-only name.
func (c ConstIterable[T]) CREndShape(shape Shape, layout Layout) *ReverseIterator[T] {
	return NewReverseIterator(c.CBeginShape(shape, layout))
}

// StorageBegin returns a read-only iterator in underlying storage order.
// Storage order currently resolves to the default layout order; a true
// physical-order traversal for non-contiguous containers is not
// distinguished yet.
func (c ConstIterable[T]) StorageBegin() *Iterator[T] {
	return c.CBegin(DefaultLayout)
}

// StorageEnd returns the storage-order one-past-last iterator.
func (c ConstIterable[T]) StorageEnd() *Iterator[T] {
	return c.CEnd(DefaultLayout)
}

// StorageCBegin is StorageBegin under an unshadowable read-only name.
func (c ConstIterable[T]) StorageCBegin() *Iterator[T] {
	return c.CBegin(DefaultLayout)
}

// StorageCEnd is StorageEnd under an unshadowable read-only name.
func (c ConstIterable[T]) StorageCEnd() *Iterator[T] {
	return c.CEnd(DefaultLayout)
}

// StorageRBegin returns a read-only reverse iterator in storage order.
func (c ConstIterable[T]) StorageRBegin() *ReverseIterator[T] {
	return c.CRBegin(DefaultLayout)
}

// StorageREnd returns the storage-order reverse end iterator.
func (c ConstIterable[T]) StorageREnd() *ReverseIterator[T] {
	return c.CREnd(DefaultLayout)
}

// StorageCRBegin is StorageRBegin under an unshadowable read-only name.
func (c ConstIterable[T]) StorageCRBegin() *ReverseIterator[T] {
	return c.CRBegin(DefaultLayout)
}

// StorageCREnd is StorageREnd under an unshadowable read-only name.
func (c ConstIterable[T]) StorageCREnd() *ReverseIterator[T] {
	return c.CREnd(DefaultLayout)
}

// Iterable extends ConstIterable with mutable entry points. It embeds the
// read-only capability, so a container embedding Iterable offers both: the
// Begin/End/RBegin/REnd family shadows the read-only one with mutable
// iterators, while the C-prefixed names keep yielding read-only ones.
type Iterable[T any] struct {
	ConstIterable[T]
	mp MutProvider[T]
}

// NewIterable builds the full iteration capability over p.
func NewIterable[T any](p MutProvider[T]) Iterable[T] {
	return Iterable[T]{ConstIterable: NewConstIterable[T](p), mp: p}
}

// Begin returns a mutable iterator at the first element under the
// container's own shape, traversed per layout.
func (m Iterable[T]) Begin(layout Layout) *MutIterator[T] {
	shape := m.mp.Shape()
	return newMutIterator(m.mp.MutStepperBegin(shape), shape, layout, false)
}

// End returns the mutable one-past-last iterator matching Begin.
func (m Iterable[T]) End(layout Layout) *MutIterator[T] {
	shape := m.mp.Shape()
	return newMutIterator(m.mp.MutStepperEnd(shape, layout), shape, layout, true)
}

// RBegin returns a mutable reverse iterator: the reverse adaptor over End.
func (m Iterable[T]) RBegin(layout Layout) *MutReverseIterator[T] {
	return NewMutReverseIterator(m.End(layout))
}

// REnd returns the mutable reverse end iterator: the reverse adaptor over
// Begin.
func (m Iterable[T]) REnd(layout Layout) *MutReverseIterator[T] {
	return NewMutReverseIterator(m.Begin(layout))
}

// BeginShape returns a mutable iterator over the caller-supplied broadcast
// shape.
func (m Iterable[T]) BeginShape(shape Shape, layout Layout) *MutIterator[T] {
	return newMutIterator(m.mp.MutStepperBegin(shape), shape, layout, false)
}

// EndShape returns the mutable one-past-last iterator matching BeginShape.
func (m Iterable[T]) EndShape(shape Shape, layout Layout) *MutIterator[T] {
	return newMutIterator(m.mp.MutStepperEnd(shape, layout), shape, layout, true)
}

// RBeginShape returns a mutable reverse iterator over the broadcast shape.
func (m Iterable[T]) RBeginShape(shape Shape, layout Layout) *MutReverseIterator[T] {
	return NewMutReverseIterator(m.EndShape(shape, layout))
}

// REndShape returns the mutable reverse end iterator over the broadcast
// shape.
func (m Iterable[T]) REndShape(shape Shape, layout Layout) *MutReverseIterator[T] {
	return NewMutReverseIterator(m.BeginShape(shape, layout))
}

// StorageBegin returns a mutable iterator in underlying storage order
// (currently the default layout order).
func (m Iterable[T]) StorageBegin() *MutIterator[T] {
	return m.Begin(DefaultLayout)
}

// StorageEnd returns the mutable storage-order one-past-last iterator.
func (m Iterable[T]) StorageEnd() *MutIterator[T] {
	return m.End(DefaultLayout)
}

// StorageRBegin returns a mutable reverse iterator in storage order.
func (m Iterable[T]) StorageRBegin() *MutReverseIterator[T] {
	return NewMutReverseIterator(m.End(DefaultLayout))
}

// StorageREnd returns the mutable storage-order reverse end iterator.
func (m Iterable[T]) StorageREnd() *MutReverseIterator[T] {
	return NewMutReverseIterator(m.Begin(DefaultLayout))
}
