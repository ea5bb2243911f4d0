package toolkit

import (
	"context"
	"encoding/json"
)

// Chat sends a chat completion through the AI gateway.
//
// If req.GatewayMode is nil the client's default gateway mode is sent
// instead; when no default is configured the field is omitted. An
// explicit req.GatewayMode always wins.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (json.RawMessage, error) {
	if req.GatewayMode == nil && c.defaultGatewayMode != "" {
		mode := c.defaultGatewayMode
		req.GatewayMode = &mode
	}
	return c.apiClient.Chat(ctx, req)
}

// GetCreditBalance returns the AI gateway credit balance.
func (c *Client) GetCreditBalance(ctx context.Context) (json.RawMessage, error) {
	return c.apiClient.GetCreditBalance(ctx)
}

// GetCreditTransactions returns the AI gateway credit transaction history.
func (c *Client) GetCreditTransactions(ctx context.Context) (json.RawMessage, error) {
	return c.apiClient.GetCreditTransactions(ctx)
}
