package toolkit

import (
	"context"
	"encoding/json"
)

// Shorten creates a short URL, optionally with a custom code.
func (c *Client) Shorten(ctx context.Context, req ShortenRequest) (json.RawMessage, error) {
	return c.apiClient.Shorten(ctx, req)
}

// GetShortURLStats returns statistics for a short code. An empty code is
// rejected with a *ValidationError.
func (c *Client) GetShortURLStats(ctx context.Context, code string) (json.RawMessage, error) {
	return c.apiClient.GetShortURLStats(ctx, code)
}

// Validate checks a value such as an email address or phone number.
func (c *Client) Validate(ctx context.Context, req ValidateRequest) (json.RawMessage, error) {
	return c.apiClient.Validate(ctx, req)
}

// OCR extracts text from an image.
func (c *Client) OCR(ctx context.Context, req OCRRequest) (json.RawMessage, error) {
	return c.apiClient.OCR(ctx, req)
}

// Translate translates text. The source language is detected when From is nil.
func (c *Client) Translate(ctx context.Context, req TranslateRequest) (json.RawMessage, error) {
	return c.apiClient.Translate(ctx, req)
}

// Screenshot captures a web page.
func (c *Client) Screenshot(ctx context.Context, req ScreenshotRequest) (json.RawMessage, error) {
	return c.apiClient.Screenshot(ctx, req)
}

// Summarize summarizes Text or the page at URL.
func (c *Client) Summarize(ctx context.Context, req SummarizeRequest) (json.RawMessage, error) {
	return c.apiClient.Summarize(ctx, req)
}

// Roast generates a roast. Type and Severity default to DefaultRoastType
// and DefaultRoastSeverity.
func (c *Client) Roast(ctx context.Context, req RoastRequest) (json.RawMessage, error) {
	return c.apiClient.Roast(ctx, req)
}
