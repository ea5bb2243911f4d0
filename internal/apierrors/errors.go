// Package apierrors provides shared error types for the Toolkit client.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided. It is a
	// *ValidationError so it satisfies the toolkit.Error marker.
	ErrMissingAPIKey error = &ValidationError{Field: "apiKey", Message: "API key is required"}

	// ErrVendor matches every error reported by the API inside a response envelope.
	ErrVendor = errors.New("vendor error")

	// ErrTransport matches every failure that happened before a response
	// envelope could be obtained.
	ErrTransport = errors.New("transport error")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInsufficientCredits is returned when the account has no credits left.
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// Error codes the API is known to report.
const (
	CodeUnknown             = "UNKNOWN_ERROR"
	CodeRateLimited         = "RATE_LIMITED"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInvalidAPIKey       = "INVALID_API_KEY"
	CodeInsufficientCredits = "INSUFFICIENT_CREDITS"
)

// VendorError is an application-level failure reported by the API through
// a response envelope whose success flag was false or missing.
type VendorError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *VendorError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("vendor error %s: %s (request_id: %s)", e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("vendor error %s: %s", e.Code, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *VendorError) Is(target error) bool {
	switch target {
	case ErrVendor:
		return true
	case ErrRateLimited:
		return e.Code == CodeRateLimited || e.StatusCode == http.StatusTooManyRequests
	case ErrUnauthorized:
		return e.Code == CodeUnauthorized || e.Code == CodeInvalidAPIKey ||
			e.StatusCode == http.StatusUnauthorized
	case ErrInsufficientCredits:
		return e.Code == CodeInsufficientCredits || e.StatusCode == http.StatusPaymentRequired
	}
	return false
}

// ToolkitError implements the toolkit.Error marker interface.
func (e *VendorError) ToolkitError() {}

// Transport operations recorded on TransportError.Op.
const (
	OpSend   = "send"
	OpRead   = "read"
	OpDecode = "decode"
	OpStatus = "status"
)

// TransportError represents a failure to obtain a response envelope:
// the request never reached the API, the response could not be read,
// or the body was not a usable envelope.
type TransportError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error: %s %s %s (status %d): %v", e.Op, e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport error: %s %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ToolkitError implements the toolkit.Error marker interface.
func (e *TransportError) ToolkitError() {}

// ValidationError reports arguments rejected before any request was sent.
// Err holds the underlying cause, if any.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ToolkitError implements the toolkit.Error marker interface.
func (e *ValidationError) ToolkitError() {}
