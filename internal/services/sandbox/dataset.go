package sandbox

import (
	"cmp"
	"slices"
	"strings"

	"github.com/benedict-erwin/agency-console/internal/entities/screens"
	"github.com/benedict-erwin/agency-console/pkg/pager"
)

// Dataset holds the fixture records of one screen, newest first
type Dataset[T screens.Filterable] struct {
	records    []T
	statuses   []screens.StatusEntry
	maxPerPage int
}

// NewDataset sorts the records by record date, newest first, keeping input order on ties
func NewDataset[T screens.Filterable](records []T, statuses []screens.StatusEntry, maxPerPage int) *Dataset[T] {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(b.RecordDate(), a.RecordDate())
	})
	return &Dataset[T]{
		records:    sorted,
		statuses:   slices.Clone(statuses),
		maxPerPage: maxPerPage,
	}
}

// List filters the records and cuts out the requested page. A page past the end
// answers with no data and the requested current_page.
func (d *Dataset[T]) List(q Query) (*pager.Page[T], error) {
	q, err := q.normalize(d.maxPerPage)
	if err != nil {
		return nil, err
	}

	matched := make([]T, 0, len(d.records))
	for _, r := range d.records {
		if matches(r, q) {
			matched = append(matched, r)
		}
	}

	total := len(matched)
	start := min((q.Page-1)*q.PerPage, total)
	end := min(start+q.PerPage, total)

	return &pager.Page[T]{
		Data: slices.Clone(matched[start:end]),
		Pagination: pager.Pagination{
			Total:       total,
			CurrentPage: q.Page,
			LastPage:    pager.LastPageFor(total, q.PerPage),
			PerPage:     q.PerPage,
		},
	}, nil
}

// Statuses returns the status list of the screen
func (d *Dataset[T]) Statuses() []screens.StatusEntry {
	return slices.Clone(d.statuses)
}

// Len returns the number of records held
func (d *Dataset[T]) Len() int {
	return len(d.records)
}

func matches(r screens.Filterable, q Query) bool {
	date := r.RecordDate()
	if q.FromDate != "" && date < q.FromDate {
		return false
	}
	if q.ToDate != "" && date > q.ToDate {
		return false
	}
	if q.Status != "" && r.StatusCode() != q.Status {
		return false
	}
	if q.Reference != "" && !containsFold(r.References(), q.Reference) {
		return false
	}
	if q.Agent != "" && !containsFold(r.Agents(), q.Agent) {
		return false
	}
	return true
}

// containsFold reports whether any value contains needle, ignoring case
func containsFold(values []string, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
