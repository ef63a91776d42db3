package ynab

import (
	"errors"
	"fmt"

	internalTypes "github.com/eshaffer321/ynab-go/internal/types"
)

// Sentinel errors share their values with the transport layer so that
// errors.Is matches no matter which layer produced the failure.
var (
	// ErrNotAuthenticated is returned when the access token is missing or rejected
	ErrNotAuthenticated = internalTypes.ErrNotAuthenticated

	// ErrRateLimited is returned when the API rate limit is exhausted
	ErrRateLimited = internalTypes.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = internalTypes.ErrTimeout

	// ErrNotFound is returned when a resource does not exist
	ErrNotFound = internalTypes.ErrNotFound

	// ErrConnection is returned when the API cannot be reached
	ErrConnection = internalTypes.ErrConnection

	// ErrServerError is returned for server-side failures
	ErrServerError = internalTypes.ErrServerError

	// ErrInvalidInput is returned for requests rejected before reaching the API
	ErrInvalidInput = errors.New("invalid input")
)

// Error represents an API error
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
	Detail     string `json:"detail,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	Err        error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}

	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Code == t.Code
}

// ValidationError reports a request rejected locally, before any network
// call is made.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap marks validation errors as invalid-input failures
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewError creates a new API error
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// fromTransportError re-homes transport-layer errors into this package's
// Error type, preserving the sentinel chain for errors.Is.
func fromTransportError(err error) error {
	var terr *internalTypes.Error
	if errors.As(err, &terr) {
		return &Error{
			Code:       terr.Code,
			Message:    terr.Message,
			StatusCode: terr.StatusCode,
			Detail:     terr.Detail,
			RequestID:  terr.RequestID,
			Err:        terr.Err,
		}
	}
	return err
}

// IsAuthError checks if error is authentication related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated)
}

// IsNotFound checks if error means the resource does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimited checks if error is a rate-limit rejection
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsConnectionError checks if error is a network failure or timeout
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection) || errors.Is(err, ErrTimeout)
}

// IsValidationError checks if error is a local validation rejection
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsRetryable checks if error is retryable
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}
