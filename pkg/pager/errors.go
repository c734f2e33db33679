package pager

import (
	"errors"
	"fmt"
	"strings"
)

// GenericFailureMessage is shown when a failure carries no server message
const GenericFailureMessage = "Failed to load data. Please try again."

// ErrInvalidFilter is returned for filter edits that cannot be applied
var ErrInvalidFilter = errors.New("invalid filter value")

// NetworkError means the backend could not be reached at all
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError means the backend answered but refused or failed the request.
// Message is the server-supplied message field, possibly empty.
type ServerError struct {
	Status  int
	Code    int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.Status)
	}
	return fmt.Sprintf("server error (status %d): %s", e.Status, e.Message)
}

// UserMessage converts any fetch failure into text fit for display.
// A server-supplied message wins; everything else gets the generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		if msg := strings.TrimSpace(serverErr.Message); msg != "" {
			return msg
		}
	}
	return GenericFailureMessage
}
