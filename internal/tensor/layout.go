package tensor

// Layout selects the order in which an iterator walks through index space.
// It is fixed at iterator construction and never changes afterwards.
type Layout int

// Supported traversal orders.
const (
	// RowMajor visits the last axis fastest (C order).
	RowMajor Layout = iota
	// ColMajor visits the first axis fastest (Fortran order).
	ColMajor
)

// DefaultLayout is the traversal order used when callers do not ask for a
// specific one. Storage-order entry points also resolve to it; see the
// package documentation.
const DefaultLayout = RowMajor

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// fastestAxis returns the axis a traversal in this layout advances most
// often, for the given rank.
func (l Layout) fastestAxis(rank int) int {
	if l == ColMajor {
		return 0
	}
	return rank - 1
}

// slowestAxis returns the most significant axis for this layout: the one
// whose extent is exceeded only by the one-past-last position.
func (l Layout) slowestAxis(rank int) int {
	if l == ColMajor {
		return rank - 1
	}
	return 0
}
