package tensor

// ReverseIterator adapts a forward Iterator to traverse in the opposite
// order. It is always built around a forward iterator at the opposite
// endpoint: reverse-begin wraps forward-end, reverse-end wraps
// forward-begin. Advancing steps the wrapped iterator backwards and
// dereferencing reads one position behind it, so the forward cursor's
// advancement algorithm is the only one in play.
type ReverseIterator[T any] struct {
	base *Iterator[T]
}

// NewReverseIterator wraps a forward iterator into its reverse counterpart.
func NewReverseIterator[T any](base *Iterator[T]) *ReverseIterator[T] {
	return &ReverseIterator[T]{base: base}
}

// Next advances the reverse traversal by stepping the wrapped iterator back.
func (r *ReverseIterator[T]) Next() {
	r.base.prev()
}

// Advance calls Next n times.
func (r *ReverseIterator[T]) Advance(n int) {
	for i := 0; i < n; i++ {
		r.base.prev()
	}
}

// Value reads the element one position behind the wrapped iterator.
func (r *ReverseIterator[T]) Value() T {
	behind := r.base.Clone()
	behind.prev()
	return behind.Value()
}

// Index returns the multi-index of the element Value would read.
// The returned slice is freshly allocated per call.
func (r *ReverseIterator[T]) Index() []int {
	behind := r.base.Clone()
	behind.prev()
	return behind.index
}

// Base returns the wrapped forward iterator.
func (r *ReverseIterator[T]) Base() *Iterator[T] {
	return r.base
}

// Equal reports whether both reverse iterators wrap equal forward
// iterators. Only meaningful for adaptors built from the same
// (shape, layout).
func (r *ReverseIterator[T]) Equal(other *ReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

// Clone returns an independent reverse iterator at the same position.
func (r *ReverseIterator[T]) Clone() *ReverseIterator[T] {
	return &ReverseIterator[T]{base: r.base.Clone()}
}

// MutReverseIterator is the mutable counterpart of ReverseIterator.
type MutReverseIterator[T any] struct {
	base *MutIterator[T]
}

// NewMutReverseIterator wraps a mutable forward iterator into its reverse
// counterpart.
func NewMutReverseIterator[T any](base *MutIterator[T]) *MutReverseIterator[T] {
	return &MutReverseIterator[T]{base: base}
}

// Next advances the reverse traversal by stepping the wrapped iterator back.
func (r *MutReverseIterator[T]) Next() {
	r.base.prev()
}

// Advance calls Next n times.
func (r *MutReverseIterator[T]) Advance(n int) {
	for i := 0; i < n; i++ {
		r.base.prev()
	}
}

// Value reads the element one position behind the wrapped iterator.
func (r *MutReverseIterator[T]) Value() T {
	behind := r.base.Clone()
	behind.prev()
	return behind.Value()
}

// Set overwrites the element one position behind the wrapped iterator.
func (r *MutReverseIterator[T]) Set(v T) {
	behind := r.base.Clone()
	behind.prev()
	behind.Set(v)
}

// Index returns the multi-index of the element Value would read.
func (r *MutReverseIterator[T]) Index() []int {
	behind := r.base.Clone()
	behind.prev()
	return behind.index
}

// Base returns the wrapped forward iterator.
func (r *MutReverseIterator[T]) Base() *MutIterator[T] {
	return r.base
}

// Equal reports whether both reverse iterators wrap equal forward iterators.
func (r *MutReverseIterator[T]) Equal(other *MutReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

// Clone returns an independent mutable reverse iterator at the same
// position.
func (r *MutReverseIterator[T]) Clone() *MutReverseIterator[T] {
	return &MutReverseIterator[T]{base: r.base.Clone()}
}
