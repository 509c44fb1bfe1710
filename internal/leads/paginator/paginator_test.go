package paginator

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total    int
		size     int
		expected int
	}{
		{total: 0, size: 10, expected: 0},
		{total: 1, size: 10, expected: 1},
		{total: 10, size: 10, expected: 1},
		{total: 11, size: 10, expected: 2},
		{total: 23, size: 10, expected: 3},
		{total: 80, size: 10, expected: 8},
		{total: 5, size: 0, expected: 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.size); got != tt.expected {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.expected)
		}
	}
}

func TestCompute_PartitionsWithoutGaps(t *testing.T) {
	for n := 0; n <= 57; n++ {
		pages := TotalPages(n, DefaultPageSize)
		covered := 0
		prevEnd := 0

		for i := 0; i < pages; i++ {
			w := Compute(n, i, DefaultPageSize)
			if w.Index != i {
				t.Fatalf("n=%d: index %d was corrected to %d", n, i, w.Index)
			}
			if w.Start != prevEnd {
				t.Fatalf("n=%d page %d: starts at %d, previous ended at %d", n, i, w.Start, prevEnd)
			}
			size := w.End - w.Start
			if size <= 0 || size > DefaultPageSize {
				t.Fatalf("n=%d page %d: invalid size %d", n, i, size)
			}
			covered += size
			prevEnd = w.End
		}

		if covered != n {
			t.Fatalf("n=%d: pages cover %d items", n, covered)
		}
	}
}

func TestCompute_EmptySet(t *testing.T) {
	w := Compute(0, 3, DefaultPageSize)

	if w.TotalPages != 0 || w.Index != 0 || w.Start != 0 || w.End != 0 {
		t.Errorf("unexpected window for empty set: %+v", w)
	}
	if w.CurrentPage() != 0 {
		t.Errorf("CurrentPage() = %d, want 0", w.CurrentPage())
	}
	if w.ShowNavigation() || w.HasNext() || w.HasPrevious() {
		t.Error("empty set must not show navigation")
	}
}

func TestCompute_IndexCorrection(t *testing.T) {
	stored := 5

	before := Compute(80, stored, DefaultPageSize)
	if before.TotalPages != 8 || before.Index != 5 {
		t.Fatalf("expected index 5 of 8 pages, got %+v", before)
	}

	after := Compute(30, stored, DefaultPageSize)
	if after.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", after.TotalPages)
	}
	if after.Index != 0 {
		t.Errorf("out of range index should reset to 0, got %d", after.Index)
	}

	if got := Compute(30, -1, DefaultPageSize).Index; got != 0 {
		t.Errorf("negative index should reset to 0, got %d", got)
	}
}

func TestNavigation_EndToEnd(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	index := 0
	sizes := []int{}
	for step := 0; step < 3; step++ {
		w := Compute(len(items), index, DefaultPageSize)
		sizes = append(sizes, len(Slice(items, w)))
		index = Next(w.Index, w.TotalPages)
	}

	if sizes[0] != 10 || sizes[1] != 10 || sizes[2] != 3 {
		t.Errorf("expected page sizes [10 10 3], got %v", sizes)
	}

	w := Compute(len(items), 2, DefaultPageSize)
	last := Slice(items, w)
	if last[0] != 20 || last[2] != 22 {
		t.Errorf("last page should hold the final 3 items, got %v", last)
	}
	if w.CurrentPage() != 3 || w.HasNext() || !w.HasPrevious() {
		t.Errorf("unexpected metadata on last page: %+v", w)
	}
}

func TestNextPrevious_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		fn       func() int
		expected int
	}{
		{name: "next in middle", fn: func() int { return Next(1, 3) }, expected: 2},
		{name: "next at last page", fn: func() int { return Next(2, 3) }, expected: 2},
		{name: "next with no pages", fn: func() int { return Next(0, 0) }, expected: 0},
		{name: "previous in middle", fn: func() int { return Previous(2) }, expected: 1},
		{name: "previous at first page", fn: func() int { return Previous(0) }, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(); got != tt.expected {
				t.Errorf("got %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestWindow_ShowNavigation(t *testing.T) {
	if Compute(10, 0, DefaultPageSize).ShowNavigation() {
		t.Error("a single page must hide navigation")
	}
	if !Compute(11, 0, DefaultPageSize).ShowNavigation() {
		t.Error("two pages must show navigation")
	}
}
