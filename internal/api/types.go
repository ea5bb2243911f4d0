package api

// Optional fields are pointers (or nil-able slices) tagged omitempty so that
// a field the caller did not supply is absent from the body, never null.

// ModerateTextRequest represents the POST /api/v1/moderate/text request.
type ModerateTextRequest struct {
	Text string `json:"text"`
}

// ModerateImageRequest represents the POST /api/v1/moderate/image request.
// Image is a URL or base64-encoded image.
type ModerateImageRequest struct {
	Image  string  `json:"image"`
	Format *string `json:"format,omitempty"`
}

// RedactRequest represents the POST /api/v1/redact request.
type RedactRequest struct {
	Text     string   `json:"text"`
	Entities []string `json:"entities,omitempty"`
}

// ChatMessage is a single turn in a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents the POST /api/v1/ai/chat request.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Provider    *string       `json:"provider,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	GatewayMode *string       `json:"gateway_mode,omitempty"`
}

// SanitizeRequest represents the POST /api/v1/sanitize request.
type SanitizeRequest struct {
	Prompt string `json:"prompt"`
	Strict bool   `json:"strict"`
}

// ShortenRequest represents the POST /api/v1/shorten request.
type ShortenRequest struct {
	URL        string  `json:"url"`
	CustomCode *string `json:"customCode,omitempty"`
}

// ValidateRequest represents the POST /api/v1/validate request.
type ValidateRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Deep  *bool  `json:"deep,omitempty"`
}

// OCRRequest represents the POST /api/v1/ocr request.
type OCRRequest struct {
	Image    string  `json:"image"`
	Format   *string `json:"format,omitempty"`
	Language *string `json:"language,omitempty"`
}

// TranslateRequest represents the POST /api/v1/translate request.
type TranslateRequest struct {
	Text  string  `json:"text"`
	To    string  `json:"to"`
	From  *string `json:"from,omitempty"`
	Model *string `json:"model,omitempty"`
}

// ScreenshotRequest represents the POST /api/v1/screenshot request.
// WaitFor is in milliseconds.
type ScreenshotRequest struct {
	URL      string  `json:"url"`
	Format   *string `json:"format,omitempty"`
	Width    *int    `json:"width,omitempty"`
	Height   *int    `json:"height,omitempty"`
	FullPage *bool   `json:"fullPage,omitempty"`
	WaitFor  *int    `json:"waitFor,omitempty"`
}

// SentimentRequest represents the POST /api/v1/sentiment request.
type SentimentRequest struct {
	Text        string  `json:"text"`
	Granularity *string `json:"granularity,omitempty"`
}

// SummarizeRequest represents the POST /api/v1/summarize request.
// Either Text or URL is expected.
type SummarizeRequest struct {
	Text      *string `json:"text,omitempty"`
	URL       *string `json:"url,omitempty"`
	MaxLength *int    `json:"maxLength,omitempty"`
	Format    *string `json:"format,omitempty"`
}

// RoastRequest represents the POST /api/v1/roast request.
type RoastRequest struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
}
