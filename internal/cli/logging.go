package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

// RegisterLoggingFlags adds the log level and format flags to flags.
func RegisterLoggingFlags(flags *pflag.FlagSet) {
	flags.String(FlagLogLevel, zerolog.WarnLevel.String(), "log level (trace, debug, info, warn, error)")
	flags.String(FlagLogFormat, LogFormatText, "log format (text, json)")
}

// setupLogger attaches a logger configured from the persistent flags to the
// command context. Subcommands retrieve it with zerolog.Ctx.
func setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := cmd.Flags().GetString(FlagLogLevel)
	if err != nil {
		return fmt.Errorf("getting log-level flag failed: %w", err)
	}

	format, err := cmd.Flags().GetString(FlagLogFormat)
	if err != nil {
		return fmt.Errorf("getting log-format flag failed: %w", err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), format, level)
	if err != nil {
		return err
	}

	cmd.SetContext(logger.WithContext(cmd.Context()))

	return nil
}

func newLogger(w io.Writer, format, level string) (zerolog.Logger, error) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to parse log level: %w", err)
	}

	switch strings.ToLower(format) {
	case LogFormatText:
		w = newConsoleWriter(w)
	case LogFormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format: %s", format)
	}

	return zerolog.New(w).Level(logLevel).With().Timestamp().Logger(), nil
}

// newConsoleWriter formats log messages as plain text for the console.
func newConsoleWriter(w io.Writer) *zerolog.ConsoleWriter {
	return &zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
	}
}
