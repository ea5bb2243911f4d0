package toolkit

import (
	"github.com/toolkitapi/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrVendor matches every error the API reported in a response envelope.
	ErrVendor = apierrors.ErrVendor

	// ErrTransport matches every failure that happened before a response
	// envelope could be read: network errors, unreadable bodies, non-JSON
	// responses and non-2xx responses without an envelope.
	ErrTransport = apierrors.ErrTransport

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrInsufficientCredits is returned when the AI gateway account is out of credits.
	ErrInsufficientCredits = apierrors.ErrInsufficientCredits
)

// Error is implemented by all SDK errors.
type Error interface {
	error
	ToolkitError() // marker method
}

// VendorError is returned when the API answers with an unsuccessful
// envelope. Code and Message are always populated.
type VendorError = apierrors.VendorError

// TransportError is returned when no response envelope could be obtained.
// Use errors.Unwrap or errors.Is to inspect the cause.
type TransportError = apierrors.TransportError

// ValidationError is returned for arguments rejected before any request
// was sent: an empty API key or short code, an invalid base URL, or a
// request body that cannot be encoded as JSON.
type ValidationError = apierrors.ValidationError

var (
	_ Error = (*VendorError)(nil)
	_ Error = (*TransportError)(nil)
	_ Error = (*ValidationError)(nil)
)
