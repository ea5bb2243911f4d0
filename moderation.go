package toolkit

import (
	"context"
	"encoding/json"
)

// ModerateText classifies text for harmful content.
func (c *Client) ModerateText(ctx context.Context, req ModerateTextRequest) (json.RawMessage, error) {
	return c.apiClient.ModerateText(ctx, req)
}

// ModerateImage classifies an image, given as a URL or base64 data.
func (c *Client) ModerateImage(ctx context.Context, req ModerateImageRequest) (json.RawMessage, error) {
	return c.apiClient.ModerateImage(ctx, req)
}

// Redact removes personally identifiable information from text. With no
// Entities every supported entity type is redacted.
func (c *Client) Redact(ctx context.Context, req RedactRequest) (json.RawMessage, error) {
	return c.apiClient.Redact(ctx, req)
}

// Sanitize screens an LLM prompt for injection attempts.
func (c *Client) Sanitize(ctx context.Context, req SanitizeRequest) (json.RawMessage, error) {
	return c.apiClient.Sanitize(ctx, req)
}

// Sentiment scores the sentiment of text.
func (c *Client) Sentiment(ctx context.Context, req SentimentRequest) (json.RawMessage, error) {
	return c.apiClient.Sentiment(ctx, req)
}
