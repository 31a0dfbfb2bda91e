package dto

import "net/http"

// Error codes returned by the API
const (
	// ErrCodeValidation is used when input fails validation
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeInvalidInput is used for malformed input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeInvalidCredentials is used when login fails
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "INVALID_TOKEN"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeUnsupportedMediaType is used when an upload has a disallowed content type
	ErrCodeUnsupportedMediaType = "UNSUPPORTED_MEDIA_TYPE"
	// ErrCodeFileTooLarge is used when an upload exceeds its size limit
	ErrCodeFileTooLarge = "FILE_TOO_LARGE"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeInvalidInput:       http.StatusBadRequest,
	ErrCodeInvalidCredentials: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound: http.StatusNotFound,

	ErrCodeUnsupportedMediaType: http.StatusUnsupportedMediaType,
	ErrCodeFileTooLarge:         http.StatusRequestEntityTooLarge,

	ErrCodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
