package toolkit

import "github.com/toolkitapi/client-go/internal/api"

// Request types. Optional fields are pointers: leave them nil to omit the
// field from the request entirely. Use String, Int, Bool and Float64 to
// set them inline.
type (
	ModerateTextRequest  = api.ModerateTextRequest
	ModerateImageRequest = api.ModerateImageRequest
	RedactRequest        = api.RedactRequest
	ChatMessage          = api.ChatMessage
	ChatRequest          = api.ChatRequest
	SanitizeRequest      = api.SanitizeRequest
	ShortenRequest       = api.ShortenRequest
	ValidateRequest      = api.ValidateRequest
	OCRRequest           = api.OCRRequest
	TranslateRequest     = api.TranslateRequest
	ScreenshotRequest    = api.ScreenshotRequest
	SentimentRequest     = api.SentimentRequest
	SummarizeRequest     = api.SummarizeRequest
	RoastRequest         = api.RoastRequest
)

// Roast defaults used when RoastRequest leaves Type or Severity empty.
const (
	DefaultRoastType     = api.DefaultRoastType
	DefaultRoastSeverity = api.DefaultRoastSeverity
)

// String returns a pointer to v.
func String(v string) *string { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }
