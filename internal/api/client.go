package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/toolkitapi/client-go/internal/apierrors"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.toolkitapi.dev"

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "toolkit-go"

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-Id"

// maxErrorBody caps how much of an unparseable body is quoted in errors.
const maxErrorBody = 512

// Config holds the API client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	UserAgent  string
}

// Client is the HTTP API client. It is immutable after construction and
// safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// NewClient creates an API client from an explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}
	if err := validateBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	return c, nil
}

// New creates an API client with functional options. The base URL
// defaults to DefaultBaseURL.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// validateBaseURL requires an absolute http or https URL.
func validateBaseURL(raw string) error {
	if raw == "" {
		return &apierrors.ValidationError{Field: "baseURL", Message: "must not be empty"}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return &apierrors.ValidationError{Field: "baseURL", Message: "cannot be parsed", Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &apierrors.ValidationError{Field: "baseURL", Message: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return &apierrors.ValidationError{Field: "baseURL", Message: "has no host"}
	}
	return nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the wrapper every API response uses.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// hasError reports whether the envelope carries a non-null error field.
func (e *envelope) hasError() bool {
	return len(e.Error) > 0 && string(e.Error) != "null"
}

// envelopeError is the usual shape of the error field. Some endpoints
// report a bare string instead, and codes are occasionally numeric.
type envelopeError struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
}

// parseEnvelopeError extracts a code and message from the error field,
// accepting an object, a string, or any other JSON value.
func parseEnvelopeError(raw json.RawMessage) (code, message string) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", ""
	}

	var obj envelopeError
	if err := json.Unmarshal(raw, &obj); err == nil {
		return scalarString(obj.Code), obj.Message
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return "", text
	}
	return "", string(raw)
}

// scalarString renders a JSON string or number as plain text.
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// Do performs an authenticated request and unwraps the response envelope.
// On success the envelope's data field is returned verbatim. A body of
// nil sends no request body.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &apierrors.ValidationError{Field: "body", Message: "cannot be encoded as JSON", Err: err}
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, &apierrors.ValidationError{Field: "request", Message: "cannot be built", Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return nil, &apierrors.TransportError{Op: apierrors.OpSend, Method: method, URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if id := resp.Header.Get(RequestIDHeader); id != "" {
		requestID = id
	}

	c.logger.DebugContext(ctx, "request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierrors.TransportError{
			Op: apierrors.OpRead, Method: method, URL: reqURL, StatusCode: resp.StatusCode, Err: err,
		}
	}

	return c.unwrap(method, reqURL, resp.StatusCode, requestID, raw)
}

func (c *Client) unwrap(method, reqURL string, status int, requestID string, raw []byte) (json.RawMessage, error) {
	ok := status >= 200 && status < 300

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if !ok {
			return nil, &apierrors.TransportError{
				Op: apierrors.OpStatus, Method: method, URL: reqURL, StatusCode: status,
				Err: fmt.Errorf("unexpected response: %s", truncate(raw)),
			}
		}
		return nil, &apierrors.TransportError{
			Op: apierrors.OpDecode, Method: method, URL: reqURL, StatusCode: status,
			Err: fmt.Errorf("failed to decode response: %w", err),
		}
	}

	if !ok && env.Success == nil && !env.hasError() {
		return nil, &apierrors.TransportError{
			Op: apierrors.OpStatus, Method: method, URL: reqURL, StatusCode: status,
			Err: fmt.Errorf("unexpected response: %s", truncate(raw)),
		}
	}

	if env.Success != nil && *env.Success {
		return env.Data, nil
	}

	return nil, vendorError(status, requestID, &env)
}

// vendorError builds a VendorError with both code and message populated.
func vendorError(status int, requestID string, env *envelope) *apierrors.VendorError {
	e := &apierrors.VendorError{StatusCode: status, RequestID: requestID}
	e.Code, e.Message = parseEnvelopeError(env.Error)
	if e.Code == "" {
		e.Code = apierrors.CodeUnknown
	}
	if e.Message == "" {
		switch {
		case env.Success == nil && !env.hasError():
			e.Message = "response envelope has no success indicator"
		case status >= 300 || status < 200:
			e.Message = http.StatusText(status)
		}
	}
	if e.Message == "" {
		e.Message = "request was not successful"
	}
	return e
}

func truncate(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	if s == "" {
		return "<empty body>"
	}
	return s
}
