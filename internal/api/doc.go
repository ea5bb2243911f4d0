// Package api provides HTTP client functionality for communicating with the
// Toolkit API. It handles authentication, request serialization and
// unwrapping of the response envelope every endpoint uses.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern with the production base URL as default.
//
// The API key is sent as a bearer token in the Authorization header on
// every request, together with a JSON Content-Type and a fresh
// X-Request-Id.
//
// # Response Envelope
//
// Every response is a JSON object of the form
//
//	{"success": true, "data": ...}
//	{"success": false, "error": {"code": "...", "message": "..."}}
//
// [Client.Do] returns the data field verbatim when success is true. Any
// other envelope, including one without a success field, becomes an
// [apierrors.VendorError]. Failures that prevent an envelope from being
// read (network errors, unreadable or non-JSON bodies, non-2xx responses
// without an envelope) become an [apierrors.TransportError].
//
// Requests are never retried and no timeout is imposed; deadlines and
// cancellation come from the caller's context and HTTP client.
//
// # Thread Safety
//
// The [Client] type is immutable after construction and safe for
// concurrent use. Multiple goroutines may call methods on a single Client
// simultaneously.
package api
