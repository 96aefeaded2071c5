// Package pagination implements fixed-size, 1-based page slicing for list
// views. Out-of-range page requests clamp to the nearest valid page
// instead of failing.
package pagination

// Page describes one window into an ordered result set.
type Page struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// Paginate computes the page window for a result set of total items with
// the given page size. The requested page is clamped into [1, last page];
// an empty result set yields page 1 of 1 with no items.
func Paginate(total int64, size, requested int) Page {
	if size < 1 {
		size = 1
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalPages: totalPages,
		TotalItems: total,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}

// Offset returns the zero-based item offset of the page window.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
