package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// defaultLogger is the default logger instance
	defaultLogger zerolog.Logger
)

// LogLevel represents the log level
type LogLevel string

const (
	// DebugLevel is for debug messages
	DebugLevel LogLevel = "debug"
	// InfoLevel is for informational messages
	InfoLevel LogLevel = "info"
	// WarnLevel is for warning messages
	WarnLevel LogLevel = "warn"
	// ErrorLevel is for error messages
	ErrorLevel LogLevel = "error"
	// FatalLevel is for fatal messages (panics after logging)
	FatalLevel LogLevel = "fatal"
)

// Config represents logger configuration
type Config struct {
	// Level is the log level
	Level LogLevel
	// Pretty enables pretty logging (human-readable format)
	Pretty bool
	// Output is the output writer (defaults to os.Stdout)
	Output io.Writer
}

// Configure configures the logger with the provided config
func Configure(config Config) {
	// Default values
	if config.Output == nil {
		config.Output = os.Stdout
	}

	// Set global time format
	zerolog.TimeFieldFormat = time.RFC3339

	// Set global log level
	switch config.Level {
	case DebugLevel:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case InfoLevel:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case WarnLevel:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case ErrorLevel:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case FatalLevel:
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Create writer
	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	// Set default logger
	defaultLogger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = defaultLogger
	zerolog.DefaultContextLogger = &defaultLogger
}

// ConfigureFromStrings configures the logger from the level and format
// strings of the application config. Format "text" selects console output.
func ConfigureFromStrings(level, format string) {
	Configure(Config{
		Level:  LogLevel(strings.ToLower(strings.TrimSpace(level))),
		Pretty: strings.EqualFold(strings.TrimSpace(format), "text"),
	})
}

// Default returns the configured logger
func Default() zerolog.Logger {
	return defaultLogger
}

// WithContext attaches l to ctx
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// Ctx returns the logger attached to ctx, or the default logger
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info logs an informational message
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// WithField adds a field to the logger
func WithField(key string, value interface{}) zerolog.Logger {
	return defaultLogger.With().Interface(key, value).Logger()
}

// init initializes the default logger
func init() {
	// Default configuration
	Configure(Config{
		Level:  InfoLevel,
		Pretty: true,
		Output: os.Stdout,
	})
}
