// Package logger exposes a global, sugared Zap logger for the whole module.
// It writes JSON to stdout, accepts the minimum level as a functional option,
// and mirrors every entry to an OpenTelemetry bridge core whenever a telemetry
// LoggerProvider has been registered.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/suitrack/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger is the shared SugaredLogger instance, set once by Init.
	logger *zap.SugaredLogger

	// initOnce guards the one-time setup performed by Init.
	initOnce sync.Once
)

// config holds the options applied during initialization.
type config struct {
	level string // minimum log level (debug, info, warn, error, panic, fatal)
}

// Option customizes the logger before it is built.
type Option func(*config)

// WithLevel sets the minimum level for the global logger, e.g. "debug" or "warn".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// Init builds the global logger. By default it emits JSON to stdout at the
// "info" level. When telemetry.LoggerProvider() reports a registered provider,
// an OTEL bridge core is attached so log records also reach the telemetry
// backend. Subsequent calls after the first successful one are no-ops.
//
// It returns an error only if the configured level cannot be parsed.
func Init(opts ...Option) error {
	cfg := config{level: "info"}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				level,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("", otelzap.WithLoggerProvider(lp)))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes buffered entries. Call it on shutdown.
func Sync() error {
	return logger.Sync()
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and terminates the process.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Fatalw(msg, keysAndValues...)
}
