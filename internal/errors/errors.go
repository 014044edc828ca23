package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a request omits required fields.
	ErrMissingFields = errors.New("All fields are required")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("Product not found")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Deliberately shared by the unknown-email and wrong-password paths.
	ErrInvalidCredentials = errors.New("Invalid Credentials")
	// ErrSignupFailed is returned when the user row cannot be read back after signup.
	ErrSignupFailed = errors.New("Signup failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Store failures always
// collapse to a generic 500; the cause is never exposed to the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, ErrMissingFields.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, ErrProductNotFound.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrSignupFailed):
		return NewHTTPError(http.StatusUnauthorized, ErrSignupFailed.Error(), "SIGNUP_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error", "INTERNAL_ERROR")
	}
}
