// Package pagination splits an ordered listing into fixed-size pages.
package pagination

// Page describes one page of a listing and the data needed to render
// pagination controls.
type Page struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	PageSize    int
	Offset      int
	Limit       int
	NextPage    int
	PrevPage    int
	HasNext     bool
	HasPrev     bool
}

// Paginate computes the page window for a listing of totalItems split into
// pages of pageSize. Out-of-range requests clamp instead of erroring: page 0
// or a negative page yields the first page, anything past the end yields the
// last page. An empty listing still has a single (empty) first page.
func Paginate(totalItems, pageSize, requested int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return Page{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PageSize:    pageSize,
		Offset:      (page - 1) * pageSize,
		Limit:       pageSize,
		NextPage:    page + 1,
		PrevPage:    page - 1,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
