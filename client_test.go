package toolkit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an httptest server that records the last request body and
// replies with a fixed envelope.
type fakeAPI struct {
	server   *httptest.Server
	status   int
	response string
	lastPath string
	lastBody map[string]any
}

func newFakeAPI(t *testing.T, status int, response string) *fakeAPI {
	t.Helper()
	f := &fakeAPI{status: status, response: response}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.lastPath = r.URL.Path
		f.lastBody = nil
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			assert.NoError(t, json.Unmarshal(raw, &f.lastBody))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		io.WriteString(w, f.response)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) client(t *testing.T, opts ...Option) *Client {
	t.Helper()
	client, err := New("test-key", append([]Option{WithBaseURL(f.server.URL)}, opts...)...)
	require.NoError(t, err)
	return client
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNew_ErrorsImplementMarker(t *testing.T) {
	_, err := New("")
	var sdkErr Error
	assert.True(t, errors.As(err, &sdkErr), "%T", err)

	_, err = New("test-key", WithBaseURL("http://[::1"))
	require.Error(t, err)
	_, ok := err.(Error)
	assert.True(t, ok, "%T", err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "baseURL", validationErr.Field)
}

func TestChat_UnencodableTemperature(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"success":true,"data":{}}`)

	_, err := api.client(t).Chat(context.Background(), ChatRequest{
		Model:       "m",
		Messages:    []ChatMessage{{Role: "user", Content: "hi"}},
		Temperature: Float64(math.NaN()),
	})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "%T", err)
	assert.Equal(t, "body", validationErr.Field)
	_, ok := err.(Error)
	assert.True(t, ok, "%T", err)
	assert.Empty(t, api.lastPath, "no request should be sent")
}

func TestNew_Defaults(t *testing.T) {
	client, err := New("test-key")
	require.NoError(t, err)

	assert.Equal(t, defaultBaseURL, client.BaseURL())
	assert.Empty(t, client.DefaultGatewayMode())
}

func TestNew_WithOptions(t *testing.T) {
	client, err := New("test-key",
		WithBaseURL("https://staging.example.com"),
		WithDefaultGatewayMode(GatewayBYOK),
	)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com", client.BaseURL())
	assert.Equal(t, GatewayBYOK, client.DefaultGatewayMode())
}

func TestModerateText_ReturnsDataUnchanged(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"success":true,"data":{"safe":true}}`)

	data, err := api.client(t).ModerateText(context.Background(), ModerateTextRequest{Text: "hello"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"safe":true}`, string(data))
	assert.Equal(t, map[string]any{"text": "hello"}, api.lastBody)
}

func TestChat_GatewayModeFallback(t *testing.T) {
	req := func() ChatRequest {
		return ChatRequest{Model: "gpt-4o-mini", Messages: []ChatMessage{{Role: "user", Content: "hi"}}}
	}

	t.Run("uses client default", func(t *testing.T) {
		api := newFakeAPI(t, http.StatusOK, `{"success":true,"data":{}}`)
		client := api.client(t, WithDefaultGatewayMode("byok"))

		_, err := client.Chat(context.Background(), req())
		require.NoError(t, err)
		assert.Equal(t, "byok", api.lastBody["gateway_mode"])
	})

	t.Run("explicit overrides default", func(t *testing.T) {
		api := newFakeAPI(t, http.StatusOK, `{"success":true,"data":{}}`)
		client := api.client(t, WithDefaultGatewayMode("byok"))

		r := req()
		r.GatewayMode = String("pooled")
		_, err := client.Chat(context.Background(), r)
		require.NoError(t, err)
		assert.Equal(t, "pooled", api.lastBody["gateway_mode"])
	})

	t.Run("omitted without default", func(t *testing.T) {
		api := newFakeAPI(t, http.StatusOK, `{"success":true,"data":{}}`)

		_, err := api.client(t).Chat(context.Background(), req())
		require.NoError(t, err)
		assert.NotContains(t, api.lastBody, "gateway_mode")
		assert.NotContains(t, api.lastBody, "gatewayMode")
	})

	t.Run("caller request is not mutated", func(t *testing.T) {
		api := newFakeAPI(t, http.StatusOK, `{"success":true,"data":{}}`)
		client := api.client(t, WithDefaultGatewayMode("byok"))

		r := req()
		_, err := client.Chat(context.Background(), r)
		require.NoError(t, err)
		assert.Nil(t, r.GatewayMode)
	})
}

func TestShorten_CustomCode(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"success":true,"data":{"code":"abc"}}`)
	client := api.client(t)

	_, err := client.Shorten(context.Background(), ShortenRequest{URL: "https://a.com"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"url": "https://a.com"}, api.lastBody)

	_, err = client.Shorten(context.Background(), ShortenRequest{URL: "https://a.com", CustomCode: String("x")})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"url": "https://a.com", "customCode": "x"}, api.lastBody)
}

func TestRenamedFields(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"success":true,"data":{}}`)
	client := api.client(t)
	ctx := context.Background()

	_, err := client.Screenshot(ctx, ScreenshotRequest{URL: "https://a.com", FullPage: Bool(true), WaitFor: Int(250)})
	require.NoError(t, err)
	assert.Equal(t, true, api.lastBody["fullPage"])
	assert.Equal(t, float64(250), api.lastBody["waitFor"])
	assert.NotContains(t, api.lastBody, "full_page")
	assert.NotContains(t, api.lastBody, "wait_for")

	_, err = client.Summarize(ctx, SummarizeRequest{Text: String("long text"), MaxLength: Int(50)})
	require.NoError(t, err)
	assert.Equal(t, float64(50), api.lastBody["maxLength"])
	assert.NotContains(t, api.lastBody, "max_length")
	assert.NotContains(t, api.lastBody, "url")

	_, err = client.Chat(ctx, ChatRequest{Model: "m", MaxTokens: Int(10), Temperature: Float64(0.2)})
	require.NoError(t, err)
	assert.Equal(t, float64(10), api.lastBody["max_tokens"])
	assert.Equal(t, 0.2, api.lastBody["temperature"])
}

func TestEveryEndpoint_VendorError(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK,
		`{"success":false,"error":{"code":"RATE_LIMITED","message":"slow down"}}`)
	client := api.client(t)

	calls := map[string]func(ctx context.Context) (json.RawMessage, error){
		"ModerateText": func(ctx context.Context) (json.RawMessage, error) {
			return client.ModerateText(ctx, ModerateTextRequest{Text: "x"})
		},
		"ModerateImage": func(ctx context.Context) (json.RawMessage, error) {
			return client.ModerateImage(ctx, ModerateImageRequest{Image: "x"})
		},
		"Redact": func(ctx context.Context) (json.RawMessage, error) {
			return client.Redact(ctx, RedactRequest{Text: "x"})
		},
		"Chat": func(ctx context.Context) (json.RawMessage, error) {
			return client.Chat(ctx, ChatRequest{Model: "m"})
		},
		"GetCreditBalance":      client.GetCreditBalance,
		"GetCreditTransactions": client.GetCreditTransactions,
		"Sanitize": func(ctx context.Context) (json.RawMessage, error) {
			return client.Sanitize(ctx, SanitizeRequest{Prompt: "x", Strict: true})
		},
		"Shorten": func(ctx context.Context) (json.RawMessage, error) {
			return client.Shorten(ctx, ShortenRequest{URL: "x"})
		},
		"GetShortURLStats": func(ctx context.Context) (json.RawMessage, error) {
			return client.GetShortURLStats(ctx, "abc")
		},
		"Validate": func(ctx context.Context) (json.RawMessage, error) {
			return client.Validate(ctx, ValidateRequest{Type: "email", Value: "x"})
		},
		"OCR": func(ctx context.Context) (json.RawMessage, error) {
			return client.OCR(ctx, OCRRequest{Image: "x"})
		},
		"Translate": func(ctx context.Context) (json.RawMessage, error) {
			return client.Translate(ctx, TranslateRequest{Text: "x", To: "en"})
		},
		"Screenshot": func(ctx context.Context) (json.RawMessage, error) {
			return client.Screenshot(ctx, ScreenshotRequest{URL: "x"})
		},
		"Sentiment": func(ctx context.Context) (json.RawMessage, error) {
			return client.Sentiment(ctx, SentimentRequest{Text: "x"})
		},
		"Summarize": func(ctx context.Context) (json.RawMessage, error) {
			return client.Summarize(ctx, SummarizeRequest{Text: String("x")})
		},
		"Roast": func(ctx context.Context) (json.RawMessage, error) {
			return client.Roast(ctx, RoastRequest{Text: "x"})
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			data, err := call(context.Background())
			assert.Nil(t, data)

			var vendorErr *VendorError
			require.True(t, errors.As(err, &vendorErr), "got %T: %v", err, err)
			assert.Equal(t, "RATE_LIMITED", vendorErr.Code)
			assert.Equal(t, "slow down", vendorErr.Message)
			assert.Contains(t, err.Error(), "RATE_LIMITED")
			assert.Contains(t, err.Error(), "slow down")
			assert.ErrorIs(t, err, ErrRateLimited)
			assert.ErrorIs(t, err, ErrVendor)
		})
	}
}

func TestConnectionRefused_IsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := New("test-key", WithBaseURL(url))
	require.NoError(t, err)

	data, err := client.ModerateText(context.Background(), ModerateTextRequest{Text: "x"})
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrVendor)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Zero(t, transportErr.StatusCode)

	var sdkErr Error
	assert.True(t, errors.As(err, &sdkErr))
}

func TestDecode(t *testing.T) {
	type moderation struct {
		Safe bool `json:"safe"`
	}

	api := newFakeAPI(t, http.StatusOK, `{"success":true,"data":{"safe":true}}`)
	res, err := Decode[moderation](api.client(t).ModerateText(context.Background(), ModerateTextRequest{Text: "x"}))
	require.NoError(t, err)
	assert.True(t, res.Safe)
}

func TestDecode_PassesErrorThrough(t *testing.T) {
	want := errors.New("boom")
	_, err := Decode[map[string]any](nil, want)
	assert.Same(t, want, err)
}

func TestDecode_EmptyData(t *testing.T) {
	res, err := Decode[map[string]any](nil, nil)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestDecode_Mismatch(t *testing.T) {
	_, err := Decode[[]string](json.RawMessage(`{"a":1}`), nil)
	assert.Error(t, err)
}
