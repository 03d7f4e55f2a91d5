package request

// PageState tracks server-driven pagination. Pages are 1-based.
type PageState struct {
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// NewPageState creates a page state positioned on the given page.
func NewPageState(page, pageSize int) PageState {
	if page < 1 {
		page = 1
	}
	return PageState{Page: page, PageSize: pageSize}
}

// WithTotals returns a copy carrying the backend's totals. When the backend
// does not supply totalPages, it is computed from the count and page size.
func (p PageState) WithTotals(totalCount, totalPages int) PageState {
	p.TotalCount = totalCount
	if totalPages > 0 {
		p.TotalPages = totalPages
	} else {
		p.TotalPages = TotalPages(totalCount, p.PageSize)
	}
	return p
}

// HasNext reports whether a later page exists.
func (p PageState) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p PageState) HasPrev() bool {
	return p.Page > 1
}

// First returns the 1-based index of the first row on the page, 0 when empty.
func (p PageState) First() int {
	if p.TotalCount == 0 {
		return 0
	}
	return (p.Page-1)*p.PageSize + 1
}

// Last returns the 1-based index of the last row on the page.
func (p PageState) Last() int {
	last := p.Page * p.PageSize
	if last > p.TotalCount {
		last = p.TotalCount
	}
	return last
}

// TotalPages computes ceil(totalCount / pageSize).
func TotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
