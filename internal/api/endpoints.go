package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/toolkitapi/client-go/internal/apierrors"
)

// Roast defaults applied when the caller leaves the field empty.
const (
	DefaultRoastType     = "general"
	DefaultRoastSeverity = "brutal"
)

// ModerateText classifies text for harmful content.
func (c *Client) ModerateText(ctx context.Context, req ModerateTextRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/moderate/text", req)
}

// ModerateImage classifies an image for harmful content.
func (c *Client) ModerateImage(ctx context.Context, req ModerateImageRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/moderate/image", req)
}

// Redact removes personally identifiable information from text.
func (c *Client) Redact(ctx context.Context, req RedactRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/redact", req)
}

// Chat sends a chat completion through the AI gateway. The request is
// sent as given; gateway mode defaulting happens in the caller.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/ai/chat", req)
}

// GetCreditBalance returns the AI gateway credit balance.
func (c *Client) GetCreditBalance(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, "/api/v1/ai/manage/credits/balance", nil)
}

// GetCreditTransactions returns the AI gateway credit ledger.
func (c *Client) GetCreditTransactions(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, "/api/v1/ai/manage/credits/transactions", nil)
}

// Sanitize screens a prompt for injection attempts.
func (c *Client) Sanitize(ctx context.Context, req SanitizeRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/sanitize", req)
}

// Shorten creates a short URL.
func (c *Client) Shorten(ctx context.Context, req ShortenRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/shorten", req)
}

// GetShortURLStats returns click statistics for a short code.
func (c *Client) GetShortURLStats(ctx context.Context, code string) (json.RawMessage, error) {
	if code == "" {
		return nil, &apierrors.ValidationError{Field: "code", Message: "must not be empty"}
	}
	path := fmt.Sprintf("/api/v1/shorten/%s/stats", url.PathEscape(code))
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Validate checks a value (email, phone, URL, ...) of the given type.
func (c *Client) Validate(ctx context.Context, req ValidateRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/validate", req)
}

// OCR extracts text from an image.
func (c *Client) OCR(ctx context.Context, req OCRRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/ocr", req)
}

// Translate translates text into the target language.
func (c *Client) Translate(ctx context.Context, req TranslateRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/translate", req)
}

// Screenshot renders a web page.
func (c *Client) Screenshot(ctx context.Context, req ScreenshotRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/screenshot", req)
}

// Sentiment scores the sentiment of text.
func (c *Client) Sentiment(ctx context.Context, req SentimentRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/sentiment", req)
}

// Summarize summarizes text or the content at a URL.
func (c *Client) Summarize(ctx context.Context, req SummarizeRequest) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, "/api/v1/summarize", req)
}

// Roast generates a roast of the given text.
func (c *Client) Roast(ctx context.Context, req RoastRequest) (json.RawMessage, error) {
	if req.Type == "" {
		req.Type = DefaultRoastType
	}
	if req.Severity == "" {
		req.Severity = DefaultRoastSeverity
	}
	return c.Do(ctx, http.MethodPost, "/api/v1/roast", req)
}
