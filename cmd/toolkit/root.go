// Command toolkit calls the Toolkit API from the command line.
//
// Configuration is read, in order of precedence, from flags, TOOLKIT_*
// environment variables (a .env file in the working directory is loaded
// first), and a YAML config file ($HOME/.toolkit.yaml by default).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	toolkit "github.com/toolkitapi/client-go"
	"github.com/toolkitapi/client-go/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// Exit codes.
const (
	exitError     = 1
	exitVendor    = 2
	exitTransport = 3
)

// Config holds the I/O streams used by the CLI.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// app carries per-invocation state shared by all commands.
type app struct {
	cfg    Config
	v      *viper.Viper
	logger *slog.Logger
}

func run(args []string, cfg Config) error {
	root := newRootCmd(cfg)
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg, v: viper.New()}

	var cfgFile, envFile string

	root := &cobra.Command{
		Use:           "toolkit",
		Short:         "Toolkit API command line client",
		Long:          "toolkit calls the Toolkit API: moderation, redaction, AI chat, URL shortening, OCR and more.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd, cfgFile, envFile)
		},
	}
	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.toolkit.yaml)")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading TOOLKIT_* variables")
	flags.String("api-key", "", "API key (env TOOLKIT_API_KEY)")
	flags.String("base-url", toolkit.DefaultBaseURL, "API base URL")
	flags.String("default-gateway-mode", "", "gateway mode used by chat when --gateway-mode is not given")
	flags.StringP("output", "o", "json", "output format (json, yaml)")
	flags.Duration("timeout", 0, "per-request timeout (0 means none)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	for _, name := range []string{
		"api-key", "base-url", "default-gateway-mode", "output", "timeout", "log-level", "log-format",
	} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newModerateCmd(a),
		newRedactCmd(a),
		newChatCmd(a),
		newCreditsCmd(a),
		newSanitizeCmd(a),
		newShortenCmd(a),
		newValidateCmd(a),
		newOCRCmd(a),
		newTranslateCmd(a),
		newScreenshotCmd(a),
		newSentimentCmd(a),
		newSummarizeCmd(a),
		newRoastCmd(a),
		newVersionCmd(a),
	)

	return root
}

// initConfig loads the dotenv file, environment and config file into viper.
func (a *app) initConfig(cmd *cobra.Command, cfgFile, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
			return fmt.Errorf("load env file: %w", err)
		}
	}

	a.v.SetEnvPrefix("TOOLKIT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".toolkit")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	a.logger = logging.New(logging.Config{
		Level:  a.v.GetString("log-level"),
		Format: a.v.GetString("log-format"),
	}, a.cfg.Stderr)
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "path", used)
	}
	return nil
}

// newClient builds a client from the resolved configuration.
func (a *app) newClient() (*toolkit.Client, error) {
	return toolkit.New(a.v.GetString("api-key"),
		toolkit.WithBaseURL(a.v.GetString("base-url")),
		toolkit.WithDefaultGatewayMode(a.v.GetString("default-gateway-mode")),
		toolkit.WithLogger(a.logger),
		toolkit.WithUserAgent("toolkit-cli/"+version),
	)
}

// call runs one endpoint and prints its data.
func (a *app) call(cmd *cobra.Command, fn func(ctx context.Context, c *toolkit.Client) (json.RawMessage, error)) error {
	client, err := a.newClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := a.v.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	data, err := fn(ctx, client)
	if err != nil {
		return err
	}
	a.logger.Info("call succeeded", "command", cmd.CommandPath(), "duration", time.Since(start))

	return writeData(cmd.OutOrStdout(), a.v.GetString("output"), data)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, toolkit.ErrVendor):
		return exitVendor
	case errors.Is(err, toolkit.ErrTransport):
		return exitTransport
	default:
		return exitError
	}
}
