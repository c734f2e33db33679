package backoffice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedict-erwin/agency-console/pkg/pager"
)

type booking struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{BaseURL: srv.URL + "/v1", Tokens: staticToken("tok")})
	require.NoError(t, err)
	return c, srv
}

func TestListFetcherSendsFiltersAndDecodesPage(t *testing.T) {
	var got *http.Request
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		fmt.Fprint(w, `{"success":true,"code":0,"message":"Successful","request_id":"abc",
			"data":{"data":[{"booking_id":"BUS-000031","status":"CONFIRMED"}],
			"total":37,"current_page":3,"last_page":3,"per_page":15}}`)
	})

	filters := pager.NewFilters(map[string]string{
		pager.FieldStatus:   "CONFIRMED",
		pager.FieldFromDate: "",
	})
	filters.Page = 3

	page, err := ListFetcher[booking](c, "bookings/bus")(context.Background(), filters)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "/v1/bookings/bus", got.URL.Path)
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
	assert.Equal(t, url.Values{
		"status":   {"CONFIRMED"},
		"page":     {"3"},
		"per_page": {"15"},
	}, got.URL.Query())

	assert.Equal(t, []booking{{BookingID: "BUS-000031", Status: "CONFIRMED"}}, page.Data)
	assert.Equal(t, pager.Pagination{Total: 37, CurrentPage: 3, LastPage: 3, PerPage: 15}, page.Pagination)
}

func TestListFetcherEmptyDataIsNotNil(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"data":{"data":null,"total":0,"current_page":1,"last_page":1,"per_page":15}}`)
	})

	page, err := ListFetcher[booking](c, "tickets")(context.Background(), pager.NewFilters(nil))
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestServerMessageIsSurfaced(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"success":false,"code":40004,"data":null,"message":"from_date must be YYYY-MM-DD"}`)
	})

	_, err := ListFetcher[booking](c, "bookings/bus")(context.Background(), pager.NewFilters(nil))
	require.Error(t, err)

	var serverErr *pager.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusUnprocessableEntity, serverErr.Status)
	assert.Equal(t, 40004, serverErr.Code)
	assert.Equal(t, "from_date must be YYYY-MM-DD", pager.UserMessage(err))
}

func TestUnsuccessfulEnvelopeOnOK(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":false,"code":42001,"data":null,"message":"Agent account suspended"}`)
	})

	_, err := ListFetcher[booking](c, "bookings/bus")(context.Background(), pager.NewFilters(nil))
	assert.Equal(t, "Agent account suspended", pager.UserMessage(err))
}

func TestServerErrorWithoutEnvelopeGetsGenericMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	_, err := ListFetcher[booking](c, "bookings/bus")(context.Background(), pager.NewFilters(nil))
	var serverErr *pager.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusBadGateway, serverErr.Status)
	assert.Equal(t, pager.GenericFailureMessage, pager.UserMessage(err))
}

func TestMalformedBodyIsServerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>maintenance</html>`)
	})

	_, err := ListFetcher[booking](c, "bookings/bus")(context.Background(), pager.NewFilters(nil))
	var serverErr *pager.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, pager.GenericFailureMessage, pager.UserMessage(err))
}

func TestUnreachableServerIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewClient(Options{BaseURL: base})
	require.NoError(t, err)

	_, err = ListFetcher[booking](c, "bookings/bus")(context.Background(), pager.NewFilters(nil))
	var netErr *pager.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, pager.GenericFailureMessage, pager.UserMessage(err))
}

func TestStatusProviderMapsAndCaches(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/v1/statuses/bus", r.URL.Path)
		fmt.Fprint(w, `{"success":true,"data":[{"code":"PENDING","label":"Pending"},{"code":"CONFIRMED","label":""}]}`)
	})

	statuses := StatusProvider(c, "statuses/bus")
	want := []pager.StatusOption{
		{Label: "Pending", Value: "PENDING"},
		{Label: "CONFIRMED", Value: "CONFIRMED"},
	}

	first, err := statuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, first)

	first[0].Label = "mutated"
	second, err := statuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, second)
	assert.Equal(t, int32(1), hits.Load())

	c.InvalidateStatuses()
	_, err = statuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestStatusFailureIsNotCached(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"success":true,"data":[{"code":"OPEN","label":"Open"}]}`)
	})

	statuses := StatusProvider(c, "statuses/tickets")
	_, err := statuses(context.Background())
	require.Error(t, err)

	options, err := statuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []pager.StatusOption{{Label: "Open", Value: "OPEN"}}, options)
}

type failingToken struct{}

func (failingToken) Token() (string, error) { return "", errors.New("no secret") }

func TestTokenFailureStopsRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c, err := NewClient(Options{BaseURL: srv.URL, Tokens: failingToken{}})
	require.NoError(t, err)

	err = c.Get(context.Background(), "tickets", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no secret")
	assert.Zero(t, hits.Load())
}

func TestNewClientRejectsBadBaseURL(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	_, err = NewClient(Options{BaseURL: "://"})
	assert.Error(t, err)
}
