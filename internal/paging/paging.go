// Package paging implements the list pagination rules used by the incident
// dashboard: fixed-size pages, a bounded window of page numbers for the
// navigation controls, and range jumps of one window at a time.
package paging

// WindowSize is the maximum number of contiguous page numbers shown in the
// pagination controls.
const WindowSize = 4

// TotalPages returns the page count for a collection of the given size.
// An empty collection has zero pages.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage forces page into [1, totalPages]. With zero pages the current
// page is pinned at 1 so an empty list still renders.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

// PageBounds returns the half-open [start, end) slice indexes for a page.
func PageBounds(count, page, pageSize int) (int, int) {
	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start > count {
		start = count
	}
	end := start + pageSize
	if end > count {
		end = count
	}
	return start, end
}

// Window returns the contiguous page numbers to display. The window starts
// at current-WindowSize/2 once the current page moves past the window
// midpoint, and is clamped so it never runs past totalPages nor below 1.
// For any current page in range the window contains it and has length
// min(WindowSize, totalPages).
func Window(current, totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	start := 1
	if current > WindowSize/2 && totalPages > WindowSize {
		start = current - WindowSize/2
	}
	if start+WindowSize > totalPages {
		start = totalPages - WindowSize + 1
	}
	if start < 1 {
		start = 1
	}

	pages := make([]int, 0, WindowSize)
	for i := start; i < start+WindowSize && i <= totalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}

// PreviousRange jumps the current page back by one window, clamped at 1.
func PreviousRange(current int) int {
	if current-WindowSize < 1 {
		return 1
	}
	return current - WindowSize
}

// NextRange jumps the current page forward by one window, clamped at
// totalPages.
func NextRange(current, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if current+WindowSize > totalPages {
		return totalPages
	}
	return current + WindowSize
}
