package constants

import "net/http"

// Error Code Categories
// Format: XYZAB where:
// XY = HTTP status family (40, 41, 42, ...)
// ZAB = Specific error

const (
	// SUCCESS CODES (0xxxx)
	CodeSuccess = 0

	// CLIENT ERROR CODES (4xxxx)
	// 400 Bad Request (40xxx)
	CodeBadRequest       = 40000 // Generic bad request
	CodeValidationFailed = 40002 // Validation failed
	CodeInvalidParameter = 40004 // Invalid parameter value

	// 401 Unauthorized (41xxx)
	CodeUnauthorized   = 41000 // Generic unauthorized
	CodeMissingAuth    = 41001 // Missing authentication
	CodeInvalidToken   = 41002 // Invalid JWT token
	CodeExpiredToken   = 41003 // Expired JWT token
	CodeInactiveClient = 41007 // Client is inactive

	// 403 Forbidden (43xxx)
	CodeForbidden         = 43000 // Generic forbidden
	CodeInsufficientPerms = 43001 // Insufficient permissions

	// 404 Not Found (44xxx)
	CodeNotFound         = 44000 // Generic not found
	CodeScreenNotFound   = 44001 // Unknown list screen
	CodeEndpointNotFound = 44002 // Endpoint not found

	// 405 Method Not Allowed (45xxx)
	CodeMethodNotAllowed = 45000

	// 422 Unprocessable Entity (42xxx)
	CodeUnprocessable = 42000 // Generic unprocessable
	CodeInvalidDate   = 42001 // Date filter is not YYYY-MM-DD
	CodeInvalidRange  = 42002 // from_date after to_date

	// 429 Too Many Requests (42xxx)
	CodeRateLimit = 42900 // Rate limit exceeded

	// SERVER ERROR CODES (5xxxx)
	CodeInternalError      = 50000 // Generic internal error
	CodeFixturesError      = 50006 // Fixture data could not be loaded
	CodeServiceUnavailable = 53000 // Generic service unavailable
)

// Error Code Messages - for consistent error messaging
var ErrorMessages = map[int]string{
	CodeSuccess: "Success",

	CodeBadRequest:       "Bad request",
	CodeValidationFailed: "Validation failed",
	CodeInvalidParameter: "Invalid parameter value",

	CodeUnauthorized:   "Unauthorized",
	CodeMissingAuth:    "Authentication required: provide a Bearer token",
	CodeInvalidToken:   "Invalid JWT token",
	CodeExpiredToken:   "Token has expired",
	CodeInactiveClient: "Client is inactive",

	CodeForbidden:         "Forbidden",
	CodeInsufficientPerms: "Insufficient permissions",

	CodeNotFound:         "Not found",
	CodeScreenNotFound:   "Unknown screen",
	CodeEndpointNotFound: "Endpoint not found",

	CodeMethodNotAllowed: "Method not allowed",

	CodeUnprocessable: "Unprocessable entity",
	CodeInvalidDate:   "Dates must be formatted as YYYY-MM-DD",
	CodeInvalidRange:  "from_date must not be after to_date",

	CodeRateLimit: "Rate limit exceeded",

	CodeInternalError:      "Internal server error",
	CodeFixturesError:      "Fixture data unavailable",
	CodeServiceUnavailable: "Service unavailable",
}

// GetErrorMessage returns the standard message for an error code
func GetErrorMessage(code int) string {
	if msg, exists := ErrorMessages[code]; exists {
		return msg
	}
	return "Unknown error"
}

// GetHTTPStatusFromCode returns the appropriate HTTP status code based on error code
func GetHTTPStatusFromCode(code int) int {
	switch {
	case code == 0:
		return http.StatusOK
	case code >= 40000 && code < 41000:
		return http.StatusBadRequest
	case code >= 41000 && code < 42000:
		return http.StatusUnauthorized
	case code >= 42900 && code < 43000:
		return http.StatusTooManyRequests
	case code >= 42000 && code < 42900:
		return http.StatusUnprocessableEntity
	case code >= 43000 && code < 44000:
		return http.StatusForbidden
	case code >= 44000 && code < 45000:
		return http.StatusNotFound
	case code >= 45000 && code < 46000:
		return http.StatusMethodNotAllowed
	case code >= 53000 && code < 54000:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetCodeFromHTTPStatus maps a bare HTTP status to its generic error code
func GetCodeFromHTTPStatus(status int) int {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusMethodNotAllowed:
		return CodeMethodNotAllowed
	case http.StatusUnprocessableEntity:
		return CodeUnprocessable
	case http.StatusTooManyRequests:
		return CodeRateLimit
	case http.StatusServiceUnavailable:
		return CodeServiceUnavailable
	default:
		return CodeInternalError
	}
}
