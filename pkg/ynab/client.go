// Package ynab is a client for the YNAB (You Need A Budget) REST API v1.
// It authenticates with a Personal Access Token, converts the API's
// milliunit amounts to decimals at the wire boundary, and layers local
// pagination, search, and spending analysis over the raw endpoints.
package ynab

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/eshaffer321/ynab-go/internal/transport"
	internalTypes "github.com/eshaffer321/ynab-go/internal/types"
	"github.com/getsentry/sentry-go"
)

const (
	// DefaultBaseURL is the default API base URL
	DefaultBaseURL = internalTypes.DefaultBaseURL

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = internalTypes.DefaultTimeout

	// UserAgent is the user agent string
	UserAgent = internalTypes.UserAgent
)

// Client is the main YNAB API client
type Client struct {
	// Service interfaces
	Budgets      BudgetService
	Accounts     AccountService
	Categories   CategoryService
	Months       MonthService
	Transactions TransactionService
	Scheduled    ScheduledTransactionService
	Spending     SpendingService
	User         UserService

	// Internal fields
	baseURL    string
	httpClient *http.Client
	transport  Transport
	options    *ClientOptions
}

// ClientOptions configures the client
type ClientOptions struct {
	// Token is the Personal Access Token used as the bearer credential.
	// Required.
	Token string

	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// NewClient creates a new YNAB client. The access token is validated
// before anything else; a missing token fails immediately without touching
// the network.
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	if strings.TrimSpace(opts.Token) == "" {
		return nil, &ValidationError{
			Field:   "access_token",
			Message: "access token is required. Get your token at: https://app.ynab.com/settings/developer",
		}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		// Use provided options if available, otherwise create new ones
		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		// Override DSN if provided separately
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		// Set default environment if not provided
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		// Initialize Sentry
		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	// Create transport using the internal package
	trans := transport.NewRESTTransport(&transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		Token:       opts.Token,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	})

	// Create client
	c := &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		transport:  trans,
		options:    opts,
	}

	// Initialize services
	c.initServices()

	return c, nil
}

// NewClientWithToken creates a client with an access token
func NewClientWithToken(token string) (*Client, error) {
	return NewClient(&ClientOptions{
		Token: token,
	})
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Budgets = &budgetService{client: c}
	c.Accounts = &accountService{client: c}
	c.Categories = &categoryService{client: c}
	c.Months = &monthService{client: c}
	c.Transactions = &transactionService{client: c}
	c.Scheduled = &scheduledTransactionService{client: c}
	c.Spending = &spendingService{client: c}
	c.User = &userService{client: c}
}

// SetToken replaces the access token for subsequent requests
func (c *Client) SetToken(token string) {
	c.transport.SetAuth(token)
}

// execute runs one API request through the rate limiter and transport,
// reporting failures to Sentry tagged with the calling operation.
func (c *Client) execute(ctx context.Context, operation string, req *transport.Request, result interface{}) error {
	// Rate limiting
	if c.options.RateLimiter != nil {
		if err := c.options.RateLimiter.Wait(ctx); err != nil {
			// Capture rate limiter errors in Sentry
			if hub := sentry.GetHubFromContext(ctx); hub != nil {
				hub.CaptureException(err)
			} else {
				sentry.CaptureException(err)
			}
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	// Execute request
	start := time.Now()
	err := c.transport.Do(ctx, req, result)
	duration := time.Since(start)

	// Capture errors in Sentry
	if err != nil {
		err = fromTransportError(err)

		// Add context to Sentry
		capture := func(scope *sentry.Scope) {
			scope.SetTag("ynab.operation", operation)
			scope.SetContext("request", map[string]interface{}{
				"method":   req.Method,
				"path":     req.Path,
				"duration": duration.String(),
			})
		}
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				capture(scope)
				hub.CaptureException(err)
			})
		} else {
			sentry.WithScope(func(scope *sentry.Scope) {
				capture(scope)
				sentry.CaptureException(err)
			})
		}
	}

	return err
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	// Flush Sentry events with a 2 second timeout
	sentry.Flush(2 * time.Second)
}
