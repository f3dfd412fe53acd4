/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/djotaku/lastfmeoystats/internal/chart"
	"github.com/djotaku/lastfmeoystats/internal/config"
	"github.com/djotaku/lastfmeoystats/internal/report"
	"github.com/djotaku/lastfmeoystats/internal/stats"
	"github.com/djotaku/lastfmeoystats/pkg/lastfm"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	secretsFile string
	outputDir   string
	logLevel    string
	logFile     string
	apiURL      string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lastfmeoystats",
	Short: "End of year last.fm listening statistics",
	Long: `lastfmeoystats builds end of year listening statistics from last.fm.

It fetches your top artists, albums, and tracks for the trailing twelve
months and for your full listening history, writes each ranked list to a
text file ready to paste into a blog post, and renders a bar chart image
for each list.

Credentials are read from secrets.json in the current directory (see
--secrets): a JSON object with "key", "secret", and "user" fields.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	RunE:    runReport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&secretsFile, "secrets", config.DefaultSecretsFile, "Path to the credentials file")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory to write lists and charts to")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Log file path (default: stderr)")
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "Override the last.fm API endpoint")
}

func runReport(cmd *cobra.Command, args []string) error {
	logger := setupLogger(logFile, logLevel)

	logger.Info().
		Str("version", version).
		Msg("Starting lastfmeoystats")

	creds, err := config.Load(secretsFile)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Could not find %s!\n", secretsFile)
		}
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	logger.Info().Str("user", creds.Username).Msg("Loaded credentials")

	clientCfg := lastfm.Config{
		APIKey:    creds.APIKey,
		APISecret: creds.APISecret,
		Logger:    apiLogger{logger: logger.With().Str("component", "lastfm").Logger()},
	}
	if apiURL != "" {
		clientCfg.BaseURL = apiURL
	}

	client, err := lastfm.NewClient(clientCfg)
	if err != nil {
		return fmt.Errorf("failed to create last.fm client: %w", err)
	}

	ctx := cmd.Context()

	user, err := stats.NewLastFM(client).ResolveUser(ctx, creds.Username)
	if err != nil {
		return err
	}

	logger.Info().
		Str("user", user.Name()).
		Int64("scrobbles", user.PlayCount()).
		Msg("Resolved last.fm user")

	generator := report.New(report.Config{
		User:      user,
		Renderer:  chart.New(),
		OutputDir: outputDir,
		Year:      time.Now().Year(),
		Logger:    logger.With().Str("component", "report").Logger(),
	})

	if err := generator.Run(ctx); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	logger.Info().Msg("Done")
	return nil
}

// setupLogger creates a logger with the specified configuration
func setupLogger(logFile, logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Set up output
	var output *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			output = os.Stderr
		} else {
			output = f
		}
	} else {
		output = os.Stderr
	}

	// Create logger
	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Use pretty console output if logging to stderr
	if output == os.Stderr {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return logger
}

// apiLogger adapts the CLI logger to the Last.fm client's logging hook.
type apiLogger struct {
	logger zerolog.Logger
}

func (l apiLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}
