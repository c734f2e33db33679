package screens

import (
	"math/rand/v2"
	"time"

	"github.com/benedict-erwin/agency-console/pkg/pager"
)

// Filterable exposes the values the back office filters a record on
type Filterable interface {
	RecordDate() string   // YYYY-MM-DD, matched by from_date/to_date
	References() []string // matched by booking_id_or_pnr
	Agents() []string     // matched by agent_sl_or_name
	StatusCode() string   // matched exactly by status
}

// StatusEntry is one status as the back office publishes it
type StatusEntry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Column renders one table column of a record
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Config describes one list screen: where its data lives and how it renders
type Config[T any] struct {
	Name       string // CLI name, e.g. "bus"
	Title      string
	Resource   string // permission resource guarding the list
	ListPath   string // API path relative to the base URL
	StatusPath string
	Fields     []string // filter fields the screen offers
	Columns    []Column[T]
	Statuses   []StatusEntry

	// Generate builds the i-th sandbox fixture
	Generate func(rng *rand.Rand, i int, now time.Time) T
}

// StandardFields are the filters every booking screen offers
var StandardFields = []string{
	pager.FieldFromDate,
	pager.FieldToDate,
	pager.FieldBookingIDOrPNR,
	pager.FieldAgentSLOrName,
	pager.FieldStatus,
}

// DefaultFilters returns the mount-time filter state of the screen
func (c Config[T]) DefaultFilters(perPage int) pager.Filters {
	fields := make(map[string]string, len(c.Fields))
	for _, name := range c.Fields {
		fields[name] = ""
	}
	return pager.NewFilters(fields).WithPerPage(perPage)
}

// Header returns the table header row
func (c Config[T]) Header() []string {
	out := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		out[i] = col.Header
	}
	return out
}

// Row renders one record as a table row
func (c Config[T]) Row(record T) []string {
	out := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		out[i] = col.Value(record)
	}
	return out
}

// StatusLabel maps a status code to its display label
func (c Config[T]) StatusLabel(code string) string {
	for _, s := range c.Statuses {
		if s.Code == code {
			return s.Label
		}
	}
	return code
}
