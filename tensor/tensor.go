// Copyright 2026 Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"iter"

	"github.com/stride-ml/stride/internal/parallel"
	"github.com/stride-ml/stride/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for supported element types.
type DType = tensor.DType

// DataType represents runtime type information for containers.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a multidimensional iteration space.
// Example: Shape{2, 3, 4} describes a 3D space with extents 2×3×4.
type Shape = tensor.Shape

// Layout selects the order in which an iterator walks through index space.
type Layout = tensor.Layout

// Layout constants.
const (
	RowMajor      Layout = tensor.RowMajor
	ColMajor      Layout = tensor.ColMajor
	DefaultLayout Layout = tensor.DefaultLayout
)

// Stepper is the opaque position cursor a container supplies to the
// iteration layer.
type Stepper[T any] = tensor.Stepper[T]

// MutStepper is a Stepper with in-place element writes.
type MutStepper[T any] = tensor.MutStepper[T]

// Provider is the contract a container implements to gain the read-only
// iteration capability.
type Provider[T any] = tensor.Provider[T]

// MutProvider extends Provider with mutable cursor factories.
type MutProvider[T any] = tensor.MutProvider[T]

// Iterator is the read-only directional iterator.
type Iterator[T any] = tensor.Iterator[T]

// MutIterator is the mutable directional iterator.
type MutIterator[T any] = tensor.MutIterator[T]

// ReverseIterator adapts a forward iterator to the opposite traversal
// order.
type ReverseIterator[T any] = tensor.ReverseIterator[T]

// MutReverseIterator is the mutable reverse adaptor.
type MutReverseIterator[T any] = tensor.MutReverseIterator[T]

// ConstIterable synthesizes the read-only iterator family over a Provider.
type ConstIterable[T any] = tensor.ConstIterable[T]

// Iterable synthesizes the full iterator family over a MutProvider.
type Iterable[T any] = tensor.Iterable[T]

// Dense is a dense row-major container adopting the iteration capability.
type Dense[T DType] = tensor.Dense[T]

// ParallelConfig controls the worker pool used by TransformParallel.
type ParallelConfig = parallel.Config

// Constructors and free functions

// NewDense creates a zero-valued container with the given shape.
func NewDense[T DType](shape Shape) (*Dense[T], error) {
	return tensor.NewDense[T](shape)
}

// FromSlice creates a container from a row-major Go slice. The slice is
// copied.
func FromSlice[T DType](data []T, shape Shape) (*Dense[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a zero-valued container, panicking on an invalid shape.
func Zeros[T DType](shape Shape) *Dense[T] {
	return tensor.Zeros[T](shape)
}

// Full creates a container with every element set to value.
func Full[T DType](shape Shape, value T) *Dense[T] {
	return tensor.Full(shape, value)
}

// NewConstIterable builds the read-only iteration capability over p.
func NewConstIterable[T any](p Provider[T]) ConstIterable[T] {
	return tensor.NewConstIterable(p)
}

// NewIterable builds the full iteration capability over p.
func NewIterable[T any](p MutProvider[T]) Iterable[T] {
	return tensor.NewIterable(p)
}

// NewReverseIterator wraps a forward iterator into its reverse counterpart.
func NewReverseIterator[T any](base *Iterator[T]) *ReverseIterator[T] {
	return tensor.NewReverseIterator(base)
}

// NewMutReverseIterator wraps a mutable forward iterator into its reverse
// counterpart.
func NewMutReverseIterator[T any](base *MutIterator[T]) *MutReverseIterator[T] {
	return tensor.NewMutReverseIterator(base)
}

// BroadcastShapes implements NumPy-style broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// BroadcastStrides maps a container's strides onto a driving broadcast
// shape, with stride 0 on broadcast axes.
func BroadcastStrides(from Shape, strides []int, to Shape) ([]int, error) {
	return tensor.BroadcastStrides(from, strides, to)
}

// Indices iterates over all multi-indices of shape in layout order.
func Indices(shape Shape, layout Layout) iter.Seq[[]int] {
	return tensor.Indices(shape, layout)
}

// Fill overwrites every element of p with value, in layout order.
func Fill[T any](p MutProvider[T], layout Layout, value T) {
	tensor.Fill(p, layout, value)
}

// Transform replaces every element of p with f(element), in layout order.
func Transform[T any](p MutProvider[T], layout Layout, f func(T) T) {
	tensor.Transform(p, layout, f)
}

// Assign copies src into dst position by position, broadcasting src to
// dst's shape.
func Assign[T any](dst MutProvider[T], src Provider[T], layout Layout) {
	tensor.Assign(dst, src, layout)
}

// Collect returns the elements of a full forward traversal as a slice.
func Collect[T any](p Provider[T], layout Layout) []T {
	return tensor.Collect(p, layout)
}

// EqualValues reports whether a and b hold equal elements under their
// common broadcast shape.
func EqualValues[T comparable](a, b Provider[T], layout Layout) bool {
	return tensor.EqualValues(a, b, layout)
}

// DefaultParallelConfig returns worker-pool defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// TransformParallel is Transform with the traversal split across workers.
func TransformParallel[T any](p MutProvider[T], layout Layout, f func(T) T, cfg ParallelConfig) {
	tensor.TransformParallel(p, layout, f, cfg)
}
