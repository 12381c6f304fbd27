// Package pagination computes deterministic page windows over ordered
// sequences. Slicing is pure: the same (page, total) input always yields the
// same window, and out-of-range page numbers clamp to the nearest valid page
// instead of erroring.
package pagination

// PageSize is the fixed number of items per page.
const PageSize = 10

// Page describes one window of an ordered sequence plus the metadata the
// presentation layer renders alongside it.
type Page struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// New clamps the requested 1-based page number into [1, totalPages] and
// returns the resulting page window. An empty sequence still has exactly one
// (empty) page, so requesting any page of it yields page 1.
func New(requested int, totalItems int64) Page {
	totalPages := int((totalItems + PageSize - 1) / PageSize)
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
		Size:       PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
	}
}

// Offset returns the zero-based index of the page's first item.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
