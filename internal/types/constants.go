package types

import (
	"errors"
	"time"
)

const (
	// DefaultBaseURL is the default YNAB API base URL
	DefaultBaseURL = "https://api.ynab.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "ynab-go/1.0.0"
)

// Common errors
var (
	// ErrNotAuthenticated is returned when the access token is missing, invalid, or revoked
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrRateLimited is returned when the API rate limit is exhausted
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on timeout
	ErrTimeout = errors.New("request timeout")

	// ErrNotFound is returned when resource not found
	ErrNotFound = errors.New("resource not found")

	// ErrConnection is returned when the request never produced a response
	ErrConnection = errors.New("connection failed")

	// ErrServerError is returned for server errors
	ErrServerError = errors.New("server error")
)
