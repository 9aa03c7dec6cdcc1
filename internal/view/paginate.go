// Package view holds the pure derivation pipeline between a fetched
// entity list and what gets rendered: conjunctive filters, a stable
// sort, and fixed-size pagination with clamped page numbers.
package view

// Page sizes per screen.
const (
	DevicePageSize = 9
	ReportPageSize = 10
)

// TotalPages is max(1, ceil(count/pageSize)). An empty list still has
// one (empty) page so page arithmetic never divides by zero.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	n := (count + pageSize - 1) / pageSize
	if n < 1 {
		return 1
	}
	return n
}

// ClampPage forces page into [1, TotalPages]. Out-of-range pages are
// not an error; they are silently clamped.
func ClampPage(page, count, pageSize int) int {
	total := TotalPages(count, pageSize)
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Paginate slices one page out of items. The returned slice is a
// contiguous window of the input and never longer than pageSize.
func Paginate[T any](items []T, page, pageSize int) (pageItems []T, totalPages int) {
	totalPages = TotalPages(len(items), pageSize)
	page = ClampPage(page, len(items), pageSize)

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end], totalPages
}
