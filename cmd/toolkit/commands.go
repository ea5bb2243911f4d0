package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	toolkit "github.com/toolkitapi/client-go"
)

// Optional flags are forwarded only when the user set them, so the request
// body omits everything else.

func optString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func optInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func optBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func optFloat64(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

// readImage resolves an --image value. "@path" is read from disk and
// "@-" from stdin, both base64 encoded; anything else is passed through.
func readImage(cmd *cobra.Command, value string) (string, error) {
	path, ok := strings.CutPrefix(value, "@")
	if !ok {
		return value, nil
	}

	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func newModerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moderate",
		Short: "Moderate text or images",
	}

	var text string
	textCmd := &cobra.Command{
		Use:   "text",
		Short: "Classify text for harmful content",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.ModerateText(ctx, toolkit.ModerateTextRequest{Text: text})
			})
		},
	}
	textCmd.Flags().StringVar(&text, "text", "", "text to moderate")
	_ = textCmd.MarkFlagRequired("text")

	var image string
	imageCmd := &cobra.Command{
		Use:   "image",
		Short: "Classify an image for harmful content",
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := readImage(cmd, image)
			if err != nil {
				return err
			}
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.ModerateImage(ctx, toolkit.ModerateImageRequest{
					Image:  img,
					Format: optString(cmd, "format"),
				})
			})
		},
	}
	imageCmd.Flags().StringVar(&image, "image", "", "image URL, or @file / @- for base64 upload")
	imageCmd.Flags().String("format", "", "image format")
	_ = imageCmd.MarkFlagRequired("image")

	cmd.AddCommand(textCmd, imageCmd)
	return cmd
}

func newRedactCmd(a *app) *cobra.Command {
	var (
		text     string
		entities []string
	)
	cmd := &cobra.Command{
		Use:   "redact",
		Short: "Redact personally identifiable information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.Redact(ctx, toolkit.RedactRequest{Text: text, Entities: entities})
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to redact")
	cmd.Flags().StringSliceVar(&entities, "entities", nil, "entity types to redact (default all)")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

// parseMessages turns role:content pairs into chat messages.
func parseMessages(system, prompt string, pairs []string) ([]toolkit.ChatMessage, error) {
	var msgs []toolkit.ChatMessage
	if system != "" {
		msgs = append(msgs, toolkit.ChatMessage{Role: "system", Content: system})
	}
	for _, pair := range pairs {
		role, content, ok := strings.Cut(pair, ":")
		if !ok || role == "" {
			return nil, fmt.Errorf("invalid --message %q: want role:content", pair)
		}
		msgs = append(msgs, toolkit.ChatMessage{Role: role, Content: content})
	}
	if prompt != "" {
		msgs = append(msgs, toolkit.ChatMessage{Role: "user", Content: prompt})
	}
	if len(msgs) == 0 {
		return nil, errors.New("at least one of --prompt or --message is required")
	}
	return msgs, nil
}

func newChatCmd(a *app) *cobra.Command {
	var (
		model, system, prompt string
		messages              []string
	)
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Send a chat completion through the AI gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := parseMessages(system, prompt, messages)
			if err != nil {
				return err
			}
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.Chat(ctx, toolkit.ChatRequest{
					Model:       model,
					Messages:    msgs,
					Provider:    optString(cmd, "provider"),
					Temperature: optFloat64(cmd, "temperature"),
					MaxTokens:   optInt(cmd, "max-tokens"),
					GatewayMode: optString(cmd, "gateway-mode"),
				})
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&model, "model", "", "model name")
	f.StringVar(&system, "system", "", "system message")
	f.StringVar(&prompt, "prompt", "", "user message appended last")
	f.StringArrayVar(&messages, "message", nil, "message as role:content (repeatable)")
	f.String("provider", "", "provider override")
	f.Float64("temperature", 0, "sampling temperature")
	f.Int("max-tokens", 0, "maximum tokens to generate")
	f.String("gateway-mode", "", "gateway mode (byok, pooled, dedicated)")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

func newCreditsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Inspect AI gateway credits",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "balance",
			Short: "Show the credit balance",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
					return c.GetCreditBalance(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "transactions",
			Short: "List credit transactions",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
					return c.GetCreditTransactions(ctx)
				})
			},
		},
	)
	return cmd
}

func newSanitizeCmd(a *app) *cobra.Command {
	var (
		prompt string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "sanitize",
		Short: "Screen a prompt for injection attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.Sanitize(ctx, toolkit.SanitizeRequest{Prompt: prompt, Strict: strict})
			})
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "", "prompt to sanitize")
	cmd.Flags().BoolVar(&strict, "strict", false, "use strict mode")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}

func newShortenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shorten",
		Short: "Create short URLs and read their statistics",
	}

	var url string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a short URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.Shorten(ctx, toolkit.ShortenRequest{
					URL:        url,
					CustomCode: optString(cmd, "custom-code"),
				})
			})
		},
	}
	createCmd.Flags().StringVar(&url, "url", "", "URL to shorten")
	createCmd.Flags().String("custom-code", "", "custom short code")
	_ = createCmd.MarkFlagRequired("url")

	statsCmd := &cobra.Command{
		Use:   "stats CODE",
		Short: "Show statistics for a short code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.GetShortURLStats(ctx, args[0])
			})
		},
	}

	cmd.AddCommand(createCmd, statsCmd)
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var typ, value string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an email address, phone number, URL or similar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.Validate(ctx, toolkit.ValidateRequest{
					Type:  typ,
					Value: value,
					Deep:  optBool(cmd, "deep"),
				})
			})
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "value type (email, phone, url, ...)")
	cmd.Flags().StringVar(&value, "value", "", "value to validate")
	cmd.Flags().Bool("deep", false, "run deep checks")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func newOCRCmd(a *app) *cobra.Command {
	var image string
	cmd := &cobra.Command{
		Use:   "ocr",
		Short: "Extract text from an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := readImage(cmd, image)
			if err != nil {
				return err
			}
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.OCR(ctx, toolkit.OCRRequest{
					Image:    img,
					Format:   optString(cmd, "format"),
					Language: optString(cmd, "language"),
				})
			})
		},
	}
	cmd.Flags().StringVar(&image, "image", "", "image URL, or @file / @- for base64 upload")
	cmd.Flags().String("format", "", "image format")
	cmd.Flags().String("language", "", "language hint")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}

func newTranslateCmd(a *app) *cobra.Command {
	var text, to string
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.Translate(ctx, toolkit.TranslateRequest{
					Text:  text,
					To:    to,
					From:  optString(cmd, "from"),
					Model: optString(cmd, "model"),
				})
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to translate")
	cmd.Flags().StringVar(&to, "to", "", "target language")
	cmd.Flags().String("from", "", "source language (detected when omitted)")
	cmd.Flags().String("model", "", "translation model")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newScreenshotCmd(a *app) *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "screenshot",
		Short: "Capture a web page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.Screenshot(ctx, toolkit.ScreenshotRequest{
					URL:      url,
					Format:   optString(cmd, "format"),
					Width:    optInt(cmd, "width"),
					Height:   optInt(cmd, "height"),
					FullPage: optBool(cmd, "full-page"),
					WaitFor:  optInt(cmd, "wait-for"),
				})
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&url, "url", "", "page URL")
	f.String("format", "", "image format (png, jpeg, ...)")
	f.Int("width", 0, "viewport width")
	f.Int("height", 0, "viewport height")
	f.Bool("full-page", false, "capture the full scrollable page")
	f.Int("wait-for", 0, "milliseconds to wait before capturing")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func newSentimentCmd(a *app) *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "sentiment",
		Short: "Score the sentiment of text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.Sentiment(ctx, toolkit.SentimentRequest{
					Text:        text,
					Granularity: optString(cmd, "granularity"),
				})
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to analyze")
	cmd.Flags().String("granularity", "", "granularity (document, sentence)")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newSummarizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize text or a web page",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := toolkit.SummarizeRequest{
				Text:      optString(cmd, "text"),
				URL:       optString(cmd, "url"),
				MaxLength: optInt(cmd, "max-length"),
				Format:    optString(cmd, "format"),
			}
			if req.Text == nil && req.URL == nil {
				return errors.New("one of --text or --url is required")
			}
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.Summarize(ctx, req)
			})
		},
	}
	f := cmd.Flags()
	f.String("text", "", "text to summarize")
	f.String("url", "", "page to summarize")
	f.Int("max-length", 0, "maximum summary length")
	f.String("format", "", "summary format (paragraph, bullets)")
	return cmd
}

func newRoastCmd(a *app) *cobra.Command {
	var text, typ, severity string
	cmd := &cobra.Command{
		Use:   "roast",
		Short: "Generate a roast",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error) {
				return c.Roast(ctx, toolkit.RoastRequest{Text: text, Type: typ, Severity: severity})
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to roast")
	cmd.Flags().StringVar(&typ, "type", toolkit.DefaultRoastType, "roast type")
	cmd.Flags().StringVar(&severity, "severity", toolkit.DefaultRoastSeverity, "roast severity")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "toolkit %s\n", version)
			return err
		},
	}
}
