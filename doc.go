// Package toolkit provides a Go client SDK for the Toolkit API: content
// moderation, PII redaction, an AI model gateway, URL shortening, OCR,
// translation, screenshots, sentiment, summarization and roasts.
//
// Every method maps to one HTTP endpoint. It sends the request with the
// client's API key as a bearer token and returns the data field of the
// response envelope verbatim as json.RawMessage. Use Decode to unmarshal
// it into your own type.
//
// Basic usage:
//
//	client, err := toolkit.New("your-api-key",
//	    toolkit.WithDefaultGatewayMode(toolkit.GatewayPooled),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := client.Shorten(ctx, toolkit.ShortenRequest{
//	    URL:        "https://example.com",
//	    CustomCode: toolkit.String("launch"),
//	})
//	var vendorErr *toolkit.VendorError
//	switch {
//	case errors.As(err, &vendorErr):
//	    fmt.Println("rejected:", vendorErr.Code, vendorErr.Message)
//	case errors.Is(err, toolkit.ErrTransport):
//	    fmt.Println("request did not complete:", err)
//	case err == nil:
//	    fmt.Println(string(data))
//	}
//
// Requests are not retried and the SDK sets no timeout of its own; use the
// context or WithHTTPClient to bound calls.
package toolkit
