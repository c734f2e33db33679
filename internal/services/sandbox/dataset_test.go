package sandbox

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedict-erwin/agency-console/internal/constants"
	"github.com/benedict-erwin/agency-console/internal/entities/screens"
)

type record struct {
	ID     string
	PNR    string
	Agent  string
	Status string
	Date   string
}

func (r record) RecordDate() string   { return r.Date }
func (r record) References() []string { return []string{r.ID, r.PNR} }
func (r record) Agents() []string     { return []string{r.Agent} }
func (r record) StatusCode() string   { return r.Status }

// numbered returns n records dated across May 2024, oldest first
func numbered(n int) []record {
	out := make([]record, n)
	for i := range out {
		status := "PENDING"
		if i%3 == 0 {
			status = "CONFIRMED"
		}
		out[i] = record{
			ID:     fmt.Sprintf("BUS-%06d", i+1),
			PNR:    fmt.Sprintf("PNR%03d", i+1),
			Agent:  "Skyline Travels",
			Status: status,
			Date:   fmt.Sprintf("2024-05-%02d", i%31+1),
		}
	}
	return out
}

func TestListPagination(t *testing.T) {
	ds := NewDataset(numbered(37), nil, 100)

	page, err := ds.List(Query{})
	require.NoError(t, err)
	assert.Equal(t, 37, page.Total)
	assert.Equal(t, 15, page.PerPage)
	assert.Equal(t, 3, page.LastPage)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Data, 15)

	page, err = ds.List(Query{Page: 3})
	require.NoError(t, err)
	assert.Len(t, page.Data, 7)
	assert.Equal(t, 3, page.CurrentPage)

	page, err = ds.List(Query{Page: 4})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, 4, page.CurrentPage)
	assert.Equal(t, 3, page.LastPage)
}

func TestListCapsPerPage(t *testing.T) {
	ds := NewDataset(numbered(250), nil, 100)

	page, err := ds.List(Query{PerPage: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, page.PerPage)
	assert.Len(t, page.Data, 100)
	assert.Equal(t, 3, page.LastPage)
}

func TestListEmptyResultHasOnePage(t *testing.T) {
	ds := NewDataset(numbered(10), nil, 100)

	page, err := ds.List(Query{Status: "REFUNDED"})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Equal(t, 1, page.LastPage)
	assert.NotNil(t, page.Data)
}

func TestListNewestFirst(t *testing.T) {
	ds := NewDataset(numbered(5), nil, 100)

	page, err := ds.List(Query{})
	require.NoError(t, err)
	require.Len(t, page.Data, 5)
	assert.Equal(t, "2024-05-05", page.Data[0].Date)
	assert.Equal(t, "2024-05-01", page.Data[4].Date)
}

func TestListFilters(t *testing.T) {
	ds := NewDataset(numbered(31), nil, 100)

	tests := []struct {
		name  string
		query Query
		want  int
	}{
		{"status is exact", Query{Status: "CONFIRMED"}, 11},
		{"status is case sensitive", Query{Status: "confirmed"}, 0},
		{"date range is inclusive", Query{FromDate: "2024-05-10", ToDate: "2024-05-12"}, 3},
		{"from date only", Query{FromDate: "2024-05-30"}, 2},
		{"reference matches booking id", Query{Reference: "bus-000007"}, 1},
		{"reference matches pnr substring", Query{Reference: "pnr01"}, 10},
		{"agent substring ignores case", Query{Agent: "SKYLINE"}, 31},
		{"agent mismatch", Query{Agent: "Northstar"}, 0},
		{"filters combine", Query{Status: "CONFIRMED", FromDate: "2024-05-01", ToDate: "2024-05-04"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ds.List(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, page.Total)
		})
	}
}

func TestListRejectsBadDates(t *testing.T) {
	ds := NewDataset(numbered(3), nil, 100)

	_, err := ds.List(Query{FromDate: "05/01/2024"})
	var queryErr *QueryError
	require.True(t, errors.As(err, &queryErr))
	assert.Equal(t, constants.CodeInvalidDate, queryErr.Code)
	assert.Contains(t, queryErr.Message, "from_date")

	_, err = ds.List(Query{FromDate: "2024-06-01", ToDate: "2024-05-01"})
	require.True(t, errors.As(err, &queryErr))
	assert.Equal(t, constants.CodeInvalidRange, queryErr.Code)
}

func TestStatusesAreCopied(t *testing.T) {
	ds := NewDataset(numbered(1), []screens.StatusEntry{{Code: "OPEN", Label: "Open"}}, 100)

	got := ds.Statuses()
	got[0].Label = "changed"
	assert.Equal(t, "Open", ds.Statuses()[0].Label)
}
