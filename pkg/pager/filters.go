package pager

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"
)

// Recognized filter field names. Screens may add their own on top of these.
const (
	FieldFromDate       = "from_date"
	FieldToDate         = "to_date"
	FieldBookingIDOrPNR = "booking_id_or_pnr"
	FieldAgentSLOrName  = "agent_sl_or_name"
	FieldStatus         = "status"
	FieldPage           = "page"
	FieldPerPage        = "per_page"
)

const (
	// DefaultPerPage is used whenever a screen does not supply its own page size
	DefaultPerPage = 15

	// DateLayout is the only accepted format for *_date fields
	DateLayout = "2006-01-02"
)

// Filters is the filter state of one list screen: free-form named fields plus the
// page window. Page is 1-based and always present.
type Filters struct {
	Fields  map[string]string
	Page    int
	PerPage int
}

// NewFilters builds a filter state on page 1 with the default page size
func NewFilters(fields map[string]string) Filters {
	return Filters{
		Fields:  cloneFields(fields),
		Page:    1,
		PerPage: DefaultPerPage,
	}
}

// WithPerPage returns a copy using the given page size (ignored when not positive)
func (f Filters) WithPerPage(perPage int) Filters {
	out := f.Clone()
	if perPage > 0 {
		out.PerPage = perPage
	}
	return out
}

// Get returns the value of a field, page fields included
func (f Filters) Get(name string) string {
	switch name {
	case FieldPage:
		return strconv.Itoa(f.Page)
	case FieldPerPage:
		return strconv.Itoa(f.PerPage)
	}
	return f.Fields[name]
}

// Clone returns a deep copy so callers can never alias controller state
func (f Filters) Clone() Filters {
	return Filters{
		Fields:  cloneFields(f.Fields),
		Page:    f.Page,
		PerPage: f.PerPage,
	}
}

// Equal reports whether both states would produce the same request
func (f Filters) Equal(other Filters) bool {
	if f.Page != other.Page || f.PerPage != other.PerPage {
		return false
	}
	return maps.Equal(f.Params(), other.Params())
}

// Params flattens the state into request parameters. Empty fields are unset and
// therefore omitted.
func (f Filters) Params() map[string]string {
	params := make(map[string]string, len(f.Fields)+2)
	for name, value := range f.Fields {
		if value == "" {
			continue
		}
		params[name] = value
	}
	params[FieldPage] = strconv.Itoa(f.Page)
	params[FieldPerPage] = strconv.Itoa(f.PerPage)
	return params
}

// Set applies one edit. Any field other than page moves the pending page back to 1.
func (f *Filters) Set(name, value string) error {
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" {
		return fmt.Errorf("%w: empty field name", ErrInvalidFilter)
	}

	switch name {
	case FieldPage:
		page, err := positiveInt(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidFilter, name, value)
		}
		f.Page = page
		return nil

	case FieldPerPage:
		perPage, err := positiveInt(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidFilter, name, value)
		}
		f.PerPage = perPage
	default:
		if IsDateField(name) && value != "" {
			if _, err := time.Parse(DateLayout, value); err != nil {
				return fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", ErrInvalidFilter, name, value)
			}
		}
		if f.Fields == nil {
			f.Fields = make(map[string]string)
		}
		f.Fields[name] = value
	}

	f.Page = 1
	return nil
}

// IsDateField reports whether a field carries an ISO date
func IsDateField(name string) bool {
	return strings.HasSuffix(name, "_date")
}

func positiveInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be >= 1")
	}
	return n, nil
}

func cloneFields(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for name, value := range fields {
		out[name] = value
	}
	return out
}
