package tensor

import "fmt"

// Shape represents the dimensions of a multidimensional iteration space.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

// Strides computes the element strides that lay the shape out contiguously
// in the given order. RowMajor: the last axis is contiguous. ColMajor: the
// first axis is contiguous.
func (s Shape) Strides(layout Layout) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	if layout == ColMajor {
		strides[0] = 1
		for i := 1; i < len(s); i++ {
			strides[i] = strides[i-1] * s[i-1]
		}
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an error if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := false

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}

// BroadcastStrides maps the strides of a container with shape from onto the
// (typically larger) driving shape to. Axes that are broadcast, either
// missing on the left or of extent 1, get stride 0, so a cursor stepping
// along them stays on the same element.
//
// Returns an error when from cannot be broadcast to to; cursor factories
// handing the result to a stepper treat that as their own contract failure.
func BroadcastStrides(from Shape, strides []int, to Shape) ([]int, error) {
	if len(strides) != len(from) {
		return nil, fmt.Errorf("stride count %d does not match shape %v", len(strides), from)
	}
	if len(to) < len(from) {
		return nil, fmt.Errorf("cannot broadcast shape %v to lower-rank shape %v", from, to)
	}

	out := make([]int, len(to))
	offset := len(to) - len(from)

	for i := range to {
		fromIdx := i - offset
		switch {
		case fromIdx < 0:
			// Padded dimension, stride is 0
			out[i] = 0
		case from[fromIdx] == 1 && to[i] != 1:
			// Broadcast dimension, stride is 0
			out[i] = 0
		case from[fromIdx] == to[i]:
			out[i] = strides[fromIdx]
		default:
			return nil, fmt.Errorf("cannot broadcast shape %v to %v (dimension %d: %d vs %d)",
				from, to, i, from[fromIdx], to[i])
		}
	}

	return out, nil
}
