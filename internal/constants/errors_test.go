package constants

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code int
		want int
	}{
		{CodeSuccess, http.StatusOK},
		{CodeInvalidParameter, http.StatusBadRequest},
		{CodeInvalidToken, http.StatusUnauthorized},
		{CodeInvalidDate, http.StatusUnprocessableEntity},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeInsufficientPerms, http.StatusForbidden},
		{CodeScreenNotFound, http.StatusNotFound},
		{CodeFixturesError, http.StatusInternalServerError},
		{CodeServiceUnavailable, http.StatusServiceUnavailable},
		{99999, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetHTTPStatusFromCode(tt.code), "code %d", tt.code)
	}
}

func TestGetCodeFromHTTPStatusRoundTrips(t *testing.T) {
	for _, status := range []int{400, 401, 403, 404, 405, 422, 429, 500, 503} {
		assert.Equal(t, status, GetHTTPStatusFromCode(GetCodeFromHTTPStatus(status)))
	}
	assert.Equal(t, "Unknown error", GetErrorMessage(-1))
}
