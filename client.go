package toolkit

import (
	"encoding/json"
	"fmt"

	"github.com/toolkitapi/client-go/internal/api"
)

// Client is the Toolkit API client. Its configuration is fixed by New and
// never mutated afterwards, so a single Client may be shared by any number
// of goroutines.
type Client struct {
	apiClient          *api.Client
	defaultGatewayMode string
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}
	if cfg.userAgent != "" {
		apiOpts = append(apiOpts, api.WithUserAgent(cfg.userAgent))
	}
	return api.New(apiKey, apiOpts...)
}

// New creates a new Toolkit client with the given API key. No request is
// made until an endpoint method is called.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient:          apiClient,
		defaultGatewayMode: cfg.defaultGatewayMode,
	}, nil
}

// BaseURL returns the API base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// DefaultGatewayMode returns the gateway mode Chat falls back to, or ""
// if none was configured.
func (c *Client) DefaultGatewayMode() GatewayMode {
	return c.defaultGatewayMode
}

// Decode unmarshals endpoint data into T. It is meant to wrap an endpoint
// call directly; an incoming error is returned unchanged.
//
//	type moderation struct{ Safe bool `json:"safe"` }
//	res, err := toolkit.Decode[moderation](client.ModerateText(ctx, req))
func Decode[T any](data json.RawMessage, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode data: %w", err)
	}
	return out, nil
}
