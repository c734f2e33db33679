package sandbox

import (
	"fmt"
	"time"

	"github.com/benedict-erwin/agency-console/internal/constants"
	"github.com/benedict-erwin/agency-console/pkg/pager"
)

// Query is the filter and page window of one list request
type Query struct {
	FromDate  string `query:"from_date"`
	ToDate    string `query:"to_date"`
	Reference string `query:"booking_id_or_pnr" validate:"omitempty,max=64"`
	Agent     string `query:"agent_sl_or_name" validate:"omitempty,max=64"`
	Status    string `query:"status" validate:"omitempty,max=32"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PerPage   int    `query:"per_page" validate:"omitempty,min=1"`
}

// QueryError is a request the sandbox refuses to run, with the code it answers with
type QueryError struct {
	Code    int
	Message string
}

func (e *QueryError) Error() string {
	return e.Message
}

// normalize fills the page window defaults, caps per_page and checks the dates
func (q Query) normalize(maxPerPage int) (Query, error) {
	out := q
	if out.Page < 1 {
		out.Page = 1
	}
	if out.PerPage < 1 {
		out.PerPage = pager.DefaultPerPage
	}
	if maxPerPage > 0 && out.PerPage > maxPerPage {
		out.PerPage = maxPerPage
	}

	for name, value := range map[string]string{
		pager.FieldFromDate: out.FromDate,
		pager.FieldToDate:   out.ToDate,
	} {
		if value == "" {
			continue
		}
		if _, err := time.Parse(pager.DateLayout, value); err != nil {
			return out, &QueryError{
				Code:    constants.CodeInvalidDate,
				Message: fmt.Sprintf("%s must be formatted as YYYY-MM-DD", name),
			}
		}
	}

	if out.FromDate != "" && out.ToDate != "" && out.FromDate > out.ToDate {
		return out, &QueryError{
			Code:    constants.CodeInvalidRange,
			Message: constants.GetErrorMessage(constants.CodeInvalidRange),
		}
	}
	return out, nil
}
