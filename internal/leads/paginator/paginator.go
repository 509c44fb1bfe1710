package paginator

const DefaultPageSize = 10

// Window describes one page of a filtered set. Start and End index into the
// set; Index is already corrected into [0, TotalPages).
type Window struct {
	Index      int
	Start      int
	End        int
	TotalPages int
	Total      int
}

func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Correct resets an index that no longer falls inside [0, totalPages) to 0.
func Correct(index, totalPages int) int {
	if index < 0 || index >= totalPages {
		return 0
	}
	return index
}

func Compute(total, index, size int) Window {
	if size <= 0 {
		size = DefaultPageSize
	}

	pages := TotalPages(total, size)
	index = Correct(index, pages)

	start := min(index*size, total)
	end := min(start+size, total)

	return Window{
		Index:      index,
		Start:      start,
		End:        end,
		TotalPages: pages,
		Total:      total,
	}
}

// Slice returns the items of the window, sharing the backing array.
func Slice[T any](items []T, w Window) []T {
	return items[w.Start:w.End]
}

func Next(index, totalPages int) int {
	if index+1 >= totalPages {
		return index
	}
	return index + 1
}

func Previous(index int) int {
	if index <= 0 {
		return 0
	}
	return index - 1
}

// CurrentPage is the 1-based page number for display, 0 when there are no pages.
func (w Window) CurrentPage() int {
	if w.TotalPages == 0 {
		return 0
	}
	return w.Index + 1
}

func (w Window) HasPrevious() bool {
	return w.Index > 0
}

func (w Window) HasNext() bool {
	return w.Index+1 < w.TotalPages
}

func (w Window) ShowNavigation() bool {
	return w.TotalPages > 1
}
