// Copyright 2026 Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API of the Stride iteration library.
//
// # Overview
//
// Stride turns any shaped container into a fully iterable one. A container
// only has to implement the Provider contract, reporting its shape and
// building position cursors (Steppers), and the library synthesizes the
// whole iterator family on top:
//   - forward and reverse traversal
//   - read-only and mutable dereference
//   - row-major and column-major layouts
//   - iteration driven by an external broadcast shape
//
// The package also ships Dense[T], a dense row-major container that adopts
// the capability and serves as the reference Provider.
//
// # Basic Usage
//
//	import "github.com/stride-ml/stride/tensor"
//
//	func main() {
//	    d, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//
//	    // Explicit iterators
//	    for it, end := d.Begin(tensor.RowMajor), d.End(tensor.RowMajor); !it.Equal(end); it.Next() {
//	        _ = it.Value()
//	    }
//
//	    // Range-over-func
//	    for v := range d.All(tensor.ColMajor) {
//	        _ = v
//	    }
//
//	    // Broadcast: drive a (2,3) container by a (4,2,3) shape
//	    drive := tensor.Shape{4, 2, 3}
//	    for it, end := d.CBeginShape(drive, tensor.RowMajor), d.CEndShape(drive, tensor.RowMajor); !it.Equal(end); it.Next() {
//	        _ = it.Value()
//	    }
//	}
//
// # Contracts
//
// Iterators reference the shape that drives them; that shape must stay
// alive and unmodified for the iterator's whole lifetime. Iterators from
// different (shape, layout) constructions must not be compared. The
// library validates nothing on the hot path; misuse that can be caught
// cheaply panics, everything else is undefined.
package tensor
