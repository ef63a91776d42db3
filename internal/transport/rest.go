package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eshaffer321/ynab-go/internal/types"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const (
	authHeaderKey    = "Authorization"
	requestIDHeader  = "X-Request-ID"
	contentType      = "application/json"
	bearerAuthScheme = "Bearer"
)

// RESTTransport handles HTTP communication with the YNAB API
type RESTTransport struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	token       string
	logger      types.Logger
	hooks       *types.Hooks
}

// Request describes a single REST call. Path is relative to the base URL
// and never starts with a slash, e.g. "budgets/last-used/accounts".
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// restResponse is the envelope every YNAB endpoint responds with: a data
// payload on success, an error object otherwise.
type restResponse struct {
	Data  json.RawMessage `json:"data,omitempty"`
	Error *types.APIError `json:"error,omitempty"`
}

// NewRESTTransport creates a new REST transport
func NewRESTTransport(opts *Options) *RESTTransport {
	if opts == nil {
		opts = &Options{}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = types.DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	// Create retry client if configured
	var retryClient *retryablehttp.Client
	if opts.RetryConfig != nil {
		retryClient = retryablehttp.NewClient()
		retryClient.HTTPClient = opts.HTTPClient
		retryClient.RetryMax = opts.RetryConfig.MaxRetries
		retryClient.RetryWaitMin = opts.RetryConfig.RetryWait
		retryClient.RetryWaitMax = opts.RetryConfig.MaxWait

		if opts.Logger != nil {
			retryClient.Logger = &retryLogger{logger: opts.Logger}
		}
	}

	// Set default headers
	headers := map[string]string{
		"Accept":       contentType,
		"Content-Type": contentType,
		"User-Agent":   types.UserAgent,
	}

	// Merge custom headers
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &RESTTransport{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		httpClient:  opts.HTTPClient,
		retryClient: retryClient,
		headers:     headers,
		token:       opts.Token,
		logger:      opts.Logger,
		hooks:       opts.Hooks,
	}
}

// Do executes a REST request and unmarshals the data payload into result
func (t *RESTTransport) Do(ctx context.Context, req *Request, result interface{}) error {
	if t.token == "" {
		return types.ErrNotAuthenticated
	}

	// Marshal body if present
	var bodyReader io.Reader
	if req.Body != nil {
		body, err := json.Marshal(req.Body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request body")
		}
		bodyReader = bytes.NewReader(body)
	}

	// Build URL
	reqURL := t.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		reqURL += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, reqURL, bodyReader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	// Set headers
	for k, v := range t.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set(authHeaderKey, fmt.Sprintf("%s %s", bearerAuthScheme, t.token))

	// Tag the request so failures can be correlated
	requestID := uuid.New().String()
	httpReq.Header.Set(requestIDHeader, requestID)

	// Call request hook
	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	// Log request
	if t.logger != nil {
		t.logger.Debug("API request", "method", req.Method, "path", req.Path, "requestId", requestID)
	}

	// Execute request
	start := time.Now()
	resp, err := t.doRequest(httpReq)
	duration := time.Since(start)

	if err != nil {
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, err)
		}
		return t.wrapTransportError(req, requestID, err)
	}
	defer resp.Body.Close()

	// Call response hook
	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	// Read response
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	// Log response
	if t.logger != nil {
		t.logger.Debug("API response", "status", resp.StatusCode, "duration", duration, "size", len(respBody))
	}

	// Check status code
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return t.handleHTTPError(resp.StatusCode, respBody, requestID)
	}

	// Parse envelope
	var restResp restResponse
	if err := json.Unmarshal(respBody, &restResp); err != nil {
		return errors.Wrap(err, "failed to parse response")
	}

	// Unmarshal data payload
	if result != nil && len(restResp.Data) > 0 {
		if err := json.Unmarshal(restResp.Data, result); err != nil {
			return errors.Wrap(err, "failed to unmarshal result")
		}
	}

	return nil
}

// SetAuth sets the access token used for the Authorization header
func (t *RESTTransport) SetAuth(token string) {
	t.token = token
}

// doRequest executes the HTTP request with retry if configured
func (t *RESTTransport) doRequest(req *http.Request) (*http.Response, error) {
	if t.retryClient != nil {
		// Convert to retryable request
		retryReq, err := retryablehttp.FromRequest(req)
		if err != nil {
			return nil, err
		}
		return t.retryClient.Do(retryReq)
	}
	return t.httpClient.Do(req)
}

// wrapTransportError classifies request failures that never produced a response
func (t *RESTTransport) wrapTransportError(req *Request, requestID string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &types.Error{
			Code:      "timeout",
			Message:   fmt.Sprintf("request to %s timed out: %v", req.Path, err),
			RequestID: requestID,
			Err:       types.ErrTimeout,
		}
	}
	return &types.Error{
		Code:      "connection_error",
		Message:   fmt.Sprintf("request to %s failed: %v", req.Path, err),
		RequestID: requestID,
		Err:       types.ErrConnection,
	}
}

// handleHTTPError maps error responses onto the error taxonomy
func (t *RESTTransport) handleHTTPError(statusCode int, body []byte, requestID string) error {
	// Try to parse the error envelope
	var errResp types.APIErrorResponse
	_ = json.Unmarshal(body, &errResp)

	name := ""
	detail := ""
	if errResp.Error != nil {
		name = errResp.Error.Name
		detail = errResp.Error.Detail
	}

	apiErr := func(defaultName, defaultDetail string, sentinel error) *types.Error {
		code := name
		if code == "" {
			code = defaultName
		}
		msg := detail
		if msg == "" {
			msg = defaultDetail
		}
		return &types.Error{
			Code:       code,
			Message:    msg,
			StatusCode: statusCode,
			Detail:     detail,
			RequestID:  requestID,
			Err:        sentinel,
		}
	}

	// Map status codes to errors
	switch statusCode {
	case http.StatusUnauthorized:
		return apiErr("unauthorized", "access token missing, invalid, or revoked", types.ErrNotAuthenticated)
	case http.StatusForbidden:
		return apiErr("forbidden", "access token not authorized for this resource", types.ErrNotAuthenticated)
	case http.StatusNotFound:
		return apiErr("not_found", "the requested resource does not exist", types.ErrNotFound)
	case http.StatusTooManyRequests:
		return apiErr("too_many_requests", "rate limit exhausted for this access token", types.ErrRateLimited)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return apiErr("request_timeout", "the request timed out", types.ErrTimeout)
	case http.StatusBadRequest:
		return apiErr("bad_request", "the request could not be understood", nil)
	default:
		if statusCode >= 500 {
			// Build informative error message for server errors
			baseMsg := fmt.Sprintf("server error: %d", statusCode)
			if desc := httpStatusDescription(statusCode); desc != "" {
				baseMsg = fmt.Sprintf("server error: %d (%s)", statusCode, desc)
			}
			if detail != "" {
				baseMsg = fmt.Sprintf("%s: %s", baseMsg, detail)
			}

			return &types.Error{
				Code:       "server_error",
				Message:    baseMsg,
				StatusCode: statusCode,
				Detail:     detail,
				RequestID:  requestID,
				Err:        types.ErrServerError,
			}
		}
		return apiErr("http_error", fmt.Sprintf("HTTP error: %d", statusCode), nil)
	}
}

// httpStatusDescription returns a human-readable description for common HTTP status codes.
// This helps users understand errors like 525 (SSL Handshake Failed) which are Cloudflare-specific.
func httpStatusDescription(statusCode int) string {
	descriptions := map[int]string{
		500: "Internal Server Error",
		501: "Not Implemented",
		502: "Bad Gateway",
		503: "Service Unavailable",
		504: "Gateway Timeout",
		520: "Web Server Error",
		521: "Web Server Is Down",
		522: "Connection Timed Out",
		523: "Origin Is Unreachable",
		524: "A Timeout Occurred",
		525: "SSL Handshake Failed",
		526: "Invalid SSL Certificate",
		527: "Railgun Error",
		530: "Origin DNS Error",
	}
	return descriptions[statusCode]
}

// Options for the REST transport
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	Token       string
	RetryConfig *types.RetryConfig
	Logger      types.Logger
	Hooks       *types.Hooks
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
