package projection

// Page is one window of an ordered result set plus the size of the whole set.
type Page[T any] struct {
	Items  []T
	Total  int64
	Number int
	Size   int
}

// NewPage builds a page, normalizing the page number to 1-based.
func NewPage[T any](items []T, total int64, number, size int) Page[T] {
	if number < 1 {
		number = 1
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Number: number, Size: size}
}

// EmptyPage is the degraded result handed out when a backend cannot answer.
func EmptyPage[T any](number, size int) Page[T] {
	return NewPage[T](nil, 0, number, size)
}

// TotalPages is ceil(Total/Size), or 0 when the size is unset.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 || p.Total <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// Window returns the [offset, offset+size) slice of items, clamped to its bounds.
func Window[T any](items []T, offset, size int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) || size <= 0 {
		return []T{}
	}
	end := offset + size
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
