package tensor

import "testing"

func mustDense(t *testing.T, data []float32, shape Shape) *Dense[float32] {
	t.Helper()
	d, err := FromSlice(data, shape)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return d
}

func collectForward[T DType](d *Dense[T], layout Layout) []T {
	var out []T
	it, end := d.CBegin(layout), d.CEnd(layout)
	for !it.Equal(end) {
		out = append(out, it.Value())
		it.Next()
	}
	return out
}

func TestIteratorRowMajorOrder(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	got := collectForward(d, RowMajor)
	want := []float32{1, 2, 3, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row-major traversal = %v, want %v", got, want)
		}
	}
}

func TestIteratorColMajorOrder(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	got := collectForward(d, ColMajor)
	want := []float32{1, 4, 2, 5, 3, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("col-major traversal = %v, want %v", got, want)
		}
	}
}

func TestIteratorAdvanceCountMatchesShape(t *testing.T) {
	shapes := []Shape{{1}, {4}, {2, 3}, {3, 2, 4}, {1, 1, 1}, {}}
	for _, shape := range shapes {
		d := Zeros[float32](shape)
		for _, layout := range []Layout{RowMajor, ColMajor} {
			steps := 0
			it, end := d.CBegin(layout), d.CEnd(layout)
			for !it.Equal(end) {
				it.Next()
				steps++
			}
			if steps != shape.NumElements() {
				t.Errorf("shape %v, %s: %d advances reach end, want %d",
					shape, layout, steps, shape.NumElements())
			}
		}
	}
}

func TestIteratorIndexTracksPosition(t *testing.T) {
	d := Zeros[float32](Shape{2, 2})
	it := d.CBegin(RowMajor)

	wantIndices := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for step, want := range wantIndices {
		assertEqualInts(t, want, it.Index(), "index at step")
		if it.Pos() != step {
			t.Errorf("Pos() = %d, want %d", it.Pos(), step)
		}
		it.Next()
	}
	if it.Pos() != 4 {
		t.Errorf("Pos() after full traversal = %d, want 4", it.Pos())
	}
}

func TestIteratorCloneAdvancesIndependently(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4}, Shape{4})

	it := d.CBegin(RowMajor)
	it.Next()
	clone := it.Clone()
	clone.Next()
	clone.Next()

	if got := it.Value(); got != 2 {
		t.Errorf("original value = %v, want 2", got)
	}
	if got := clone.Value(); got != 4 {
		t.Errorf("clone value = %v, want 4", got)
	}
}

func TestIteratorReentrantBegin(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	first := d.CBegin(RowMajor)
	first.Advance(4)

	// A second, independent traversal is unaffected by the first.
	second := collectForward(d, RowMajor)
	want := []float32{1, 2, 3, 4, 5, 6}
	for i := range want {
		if second[i] != want[i] {
			t.Fatalf("second traversal = %v, want %v", second, want)
		}
	}
	if got := first.Value(); got != 5 {
		t.Errorf("first iterator value = %v, want 5", got)
	}
}

func TestIteratorScalar(t *testing.T) {
	d := mustDense(t, []float32{7}, Shape{})

	it, end := d.CBegin(RowMajor), d.CEnd(RowMajor)
	if it.Equal(end) {
		t.Fatal("scalar begin must not equal end")
	}
	if got := it.Value(); got != 7 {
		t.Errorf("scalar value = %v, want 7", got)
	}
	it.Next()
	if !it.Equal(end) {
		t.Error("scalar iterator must reach end after one advance")
	}
}

func TestIteratorDereferenceEndPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on end dereference")
		}
	}()

	d := Zeros[float32](Shape{2})
	d.CEnd(RowMajor).Value()
}

func TestMutIteratorWritesThirdVisited(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	// Overwriting the third visited element under row-major order changes
	// logical position (0,2).
	it := d.Begin(RowMajor)
	it.Advance(2)
	it.Set(99)

	if got := d.At(0, 2); got != 99 {
		t.Errorf("At(0,2) = %v, want 99", got)
	}

	got := collectForward(d, RowMajor)
	want := []float32{1, 2, 99, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("traversal after write = %v, want %v", got, want)
		}
	}
}

func TestMutIteratorOrderMatchesConst(t *testing.T) {
	d := mustDense(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	for _, layout := range []Layout{RowMajor, ColMajor} {
		mit, mend := d.Begin(layout), d.End(layout)
		cit := d.CBegin(layout)
		for !mit.Equal(mend) {
			if mit.Value() != cit.Value() {
				t.Fatalf("%s: mutable and const traversals diverge at pos %d", layout, mit.Pos())
			}
			mit.Next()
			cit.Next()
		}
	}
}
