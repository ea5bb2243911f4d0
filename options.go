package toolkit

import (
	"log/slog"
	"net/http"

	"github.com/toolkitapi/client-go/internal/api"
)

// GatewayMode selects which credential and capacity pool serves an AI
// chat request.
type GatewayMode = string

// Known gateway modes.
const (
	// GatewayBYOK routes through the caller's own provider keys.
	GatewayBYOK GatewayMode = "byok"
	// GatewayPooled routes through shared vendor capacity billed in credits.
	GatewayPooled GatewayMode = "pooled"
	// GatewayDedicated routes through reserved capacity.
	GatewayDedicated GatewayMode = "dedicated"
)

// DefaultBaseURL is the production API host used when WithBaseURL is not given.
const DefaultBaseURL = api.DefaultBaseURL

const defaultBaseURL = DefaultBaseURL

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL            string
	httpClient         *http.Client
	logger             *slog.Logger
	userAgent          string
	defaultGatewayMode string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. Timeouts, proxies and
// connection pooling are taken from it as-is.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for request tracing at debug level.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithDefaultGatewayMode sets the gateway mode sent by Chat when a request
// does not specify one.
func WithDefaultGatewayMode(mode GatewayMode) Option {
	return func(c *clientConfig) {
		c.defaultGatewayMode = mode
	}
}
