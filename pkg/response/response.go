package response

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"github.com/benedict-erwin/agency-console/internal/constants"
)

// Buffer pool for JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return &bytes.Buffer{}
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuffer returns buffer to pool (only if not too large)
func putBuffer(buf *bytes.Buffer) {
	const maxBufferSize = 64 * 1024
	if buf.Cap() < maxBufferSize {
		bufferPool.Put(buf)
	}
}

func fastJSON(c echo.Context, code int, obj interface{}) error {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(obj); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	c.Response().WriteHeader(code)
	_, err := c.Response().Write(buf.Bytes())
	return err
}

// Response is the envelope every sandbox endpoint answers with
type Response struct {
	Success   bool   `json:"success"`
	Code      int    `json:"code"`
	Data      any    `json:"data"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// Success returns a successful response with data
func Success(c echo.Context, data any) error {
	return fastJSON(c, http.StatusOK, Response{
		Success:   true,
		Code:      constants.CodeSuccess,
		Data:      data,
		Message:   "Successful",
		RequestID: constants.GetRequestID(c),
	})
}

// Fail returns an error response with message
func Fail(c echo.Context, httpStatus int, code int, message string) error {
	return fastJSON(c, httpStatus, Response{
		Success:   false,
		Code:      code,
		Data:      nil,
		Message:   message,
		RequestID: constants.GetRequestID(c),
	})
}

// FailWithCode returns an error response using standardized error code
func FailWithCode(c echo.Context, code int) error {
	return Fail(c, constants.GetHTTPStatusFromCode(code), code, constants.GetErrorMessage(code))
}

// FailWithCodeAndMessage returns an error response with custom message
func FailWithCodeAndMessage(c echo.Context, code int, customMessage string) error {
	return Fail(c, constants.GetHTTPStatusFromCode(code), code, customMessage)
}
