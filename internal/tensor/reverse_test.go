package tensor

import "testing"

func collectReverse[T DType](d *Dense[T], layout Layout) []T {
	var out []T
	it, end := d.CRBegin(layout), d.CREnd(layout)
	for !it.Equal(end) {
		out = append(out, it.Value())
		it.Next()
	}
	return out
}

func TestReverseIsReversedForward(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	for _, layout := range []Layout{RowMajor, ColMajor} {
		forward := collectForward(d, layout)
		reverse := collectReverse(d, layout)

		if len(forward) != len(reverse) {
			t.Fatalf("%s: length mismatch %d vs %d", layout, len(forward), len(reverse))
		}
		for i := range forward {
			if reverse[i] != forward[len(forward)-1-i] {
				t.Fatalf("%s: reverse = %v, want reversed %v", layout, reverse, forward)
			}
		}
	}
}

func TestReverseRowMajorScenario(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	got := collectReverse(d, RowMajor)
	want := []float32{6, 5, 4, 3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reverse row-major = %v, want %v", got, want)
		}
	}
}

func TestReverseWrapsOppositeEndpoint(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4}, Shape{4})

	// Reverse-begin wraps the forward end iterator, reverse-end wraps the
	// forward begin iterator.
	rbegin := d.CRBegin(RowMajor)
	if !rbegin.Base().Equal(d.CEnd(RowMajor)) {
		t.Error("RBegin must wrap the forward end iterator")
	}
	rend := d.CREnd(RowMajor)
	if !rend.Base().Equal(d.CBegin(RowMajor)) {
		t.Error("REnd must wrap the forward begin iterator")
	}
}

func TestReverseValueReadsBehind(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4}, Shape{4})

	it := d.CRBegin(RowMajor)
	if got := it.Value(); got != 4 {
		t.Errorf("first reverse value = %v, want 4", got)
	}
	// Dereferencing must not move the iterator.
	if got := it.Value(); got != 4 {
		t.Errorf("repeated dereference = %v, want 4", got)
	}
	it.Next()
	if got := it.Value(); got != 3 {
		t.Errorf("second reverse value = %v, want 3", got)
	}
	assertEqualInts(t, []int{2}, it.Index(), "reverse index")
}

func TestReverseClone(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4}, Shape{4})

	it := d.CRBegin(RowMajor)
	it.Next()
	clone := it.Clone()
	clone.Next()

	if got := it.Value(); got != 3 {
		t.Errorf("original reverse value = %v, want 3", got)
	}
	if got := clone.Value(); got != 2 {
		t.Errorf("cloned reverse value = %v, want 2", got)
	}
}

func TestMutReverseWrites(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	// The first reverse position under row-major order is (1,2).
	it := d.RBegin(RowMajor)
	it.Set(60)
	if got := d.At(1, 2); got != 60 {
		t.Errorf("At(1,2) = %v, want 60", got)
	}

	it.Next()
	it.Set(50)
	if got := d.At(1, 1); got != 50 {
		t.Errorf("At(1,1) = %v, want 50", got)
	}
}

func TestReverseScalar(t *testing.T) {
	d := mustDense(t, []float32{7}, Shape{})

	got := collectReverse(d, RowMajor)
	if len(got) != 1 || got[0] != 7 {
		t.Fatalf("scalar reverse traversal = %v, want [7]", got)
	}

	rbegin, rend := d.CRBegin(RowMajor), d.CREnd(RowMajor)
	if rbegin.Equal(rend) {
		t.Fatal("scalar reverse begin must not equal reverse end")
	}
	if got := rbegin.Value(); got != 7 {
		t.Errorf("scalar reverse value = %v, want 7", got)
	}
	rbegin.Next()
	if !rbegin.Equal(rend) {
		t.Error("scalar reverse iterator must reach end after one advance")
	}
}

func TestMutReverseScalarWrite(t *testing.T) {
	d := mustDense(t, []float32{1}, Shape{})

	it := d.RBegin(ColMajor)
	it.Set(9)
	if got := d.At(); got != 9 {
		t.Errorf("At() = %v, want 9", got)
	}
	if got := collectForward(d, RowMajor); got[0] != 9 {
		t.Errorf("forward traversal after reverse write = %v, want [9]", got)
	}
}

func TestReverseAdvanceCount(t *testing.T) {
	d := Zeros[float32](Shape{3, 2, 2})

	steps := 0
	it, end := d.CRBegin(ColMajor), d.CREnd(ColMajor)
	for !it.Equal(end) {
		it.Next()
		steps++
	}
	if steps != 12 {
		t.Errorf("reverse advances = %d, want 12", steps)
	}
}
