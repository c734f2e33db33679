package pager

// Pagination mirrors the pagination fields the backend returns with every page
type Pagination struct {
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
}

// Page is one fetched result page. Pagination is embedded so the wire shape stays
// flat: {data, total, current_page, last_page, per_page}.
type Page[T any] struct {
	Data []T `json:"data"`
	Pagination
}

// StatusOption is one choice of the status filter
type StatusOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LastPageFor returns ceil(total/perPage) with a floor of 1
func LastPageFor(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	last := total / perPage
	if total%perPage > 0 {
		last++
	}
	return last
}

// emptyPagination is what a screen shows before its first successful fetch
func emptyPagination(perPage int) Pagination {
	return Pagination{
		Total:       0,
		CurrentPage: 1,
		LastPage:    1,
		PerPage:     perPage,
	}
}

// normalize trusts the server numbers but enforces total >= 0, lastPage >= 1 and
// currentPage within [1, lastPage].
func (p Pagination) normalize(requested Filters) Pagination {
	out := p
	if out.Total < 0 {
		out.Total = 0
	}
	if out.PerPage <= 0 {
		out.PerPage = requested.PerPage
	}
	if out.LastPage < 1 {
		out.LastPage = LastPageFor(out.Total, out.PerPage)
	}
	if out.CurrentPage < 1 {
		out.CurrentPage = requested.Page
	}
	if out.CurrentPage < 1 {
		out.CurrentPage = 1
	}
	if out.CurrentPage > out.LastPage {
		out.CurrentPage = out.LastPage
	}
	return out
}

// HasNext reports whether a "next" control should be enabled
func (p Pagination) HasNext() bool {
	return p.CurrentPage < p.LastPage
}

// HasPrev reports whether a "previous" control should be enabled
func (p Pagination) HasPrev() bool {
	return p.CurrentPage > 1
}

// Window returns the 1-based index range of the records on the current page
func (p Pagination) Window(count int) (from, to int) {
	if count == 0 || p.Total == 0 {
		return 0, 0
	}
	from = (p.CurrentPage-1)*p.PerPage + 1
	to = from + count - 1
	return from, to
}
