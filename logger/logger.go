// Package logger configures log/slog for command-line tools and hands out
// loggers scoped to a context.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Default subsystem name, set by ConfigureLogging.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex serializes changes to the process-wide default loggers.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// ErrInvalidLogSetting is returned when a logging environment variable cannot be parsed.
var ErrInvalidLogSetting = errors.New("invalid log setting")

// ConfigureLoggingWithOptions installs a slog handler built from opts as the
// default for both log/slog and the legacy log package, and returns it.
// Concurrent calls are serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	handler = &annotatedErrorHandler{inner: handler}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Third party code may still use the log package.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// ConfigureLogging configures logging for app from the environment:
//
//	LOG_JSON          true for JSON output (default false)
//	LOG_LEVEL         minimum level, e.g. debug or warn (default info)
//	LEGACY_LOG_LEVEL  level given to the log package (default info)
//	LOG_OUTPUT        stdout or stderr (default stderr)
//
// Invalid values fall back to the default and are reported once logging is set up.
// Options are applied after the environment and win over it.
func ConfigureLogging(ctx context.Context, app string, opts ...Option) *slog.Logger {
	var problems []error

	options := Options{
		Subsystem:   app,
		JSON:        envBool("LOG_JSON", false, &problems),
		MinLevel:    envLevel("LOG_LEVEL", slog.LevelInfo, &problems),
		LegacyLevel: envLevel("LEGACY_LOG_LEVEL", slog.LevelInfo, &problems),
		Output:      envOutput("LOG_OUTPUT", &problems),
	}

	for _, o := range opts {
		o(&options)
	}

	logger := ConfigureLoggingWithOptions(options)

	for _, problem := range problems {
		Get(ctx).Warn("ignoring logging setting", "error", problem)
	}

	return logger
}

func envBool(name string, def bool, problems *[]error) bool {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return def
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		*problems = append(*problems, fmt.Errorf("%w: %s=%q", ErrInvalidLogSetting, name, raw))

		return def
	}

	return val
}

func envLevel(name string, def slog.Level, problems *[]error) slog.Level {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return def
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		*problems = append(*problems, fmt.Errorf("%w: %s=%q", ErrInvalidLogSetting, name, raw))

		return def
	}

	return lvl
}

func envOutput(name string, problems *[]error) io.Writer {
	raw, _ := os.LookupEnv(name)

	switch strings.ToLower(raw) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	default:
		*problems = append(*problems, fmt.Errorf("%w: %s=%q", ErrInvalidLogSetting, name, raw))

		return os.Stderr
	}
}

// WithMuted returns a context whose loggers discard everything when muted is true.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// WithLogger returns a context whose loggers are derived from logger instead
// of slog.Default. Tests use it to capture output per test.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("logger"), logger)
}

// WithSubsystem overrides the subsystem attached to loggers obtained from ctx.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), subsystem)
}

// GetSubsystem returns the subsystem of ctx, or the default set by ConfigureLogging.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if val, ok := ctx.Value(contextKey("subsystem")).(string); ok {
		return val
	}

	if val, ok := subsystem.Load().(string); ok {
		return val
	}

	return ""
}

// With returns a new context with the given key-value pairs added. Every logger
// obtained from it carries them.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		return ctx
	}

	if ctx == nil {
		ctx = context.Background()
	}

	existing := getValues(ctx)
	vals := make([]any, 0, len(existing)+len(values))
	vals = append(vals, existing...)
	vals = append(vals, values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(contextKey("loggerValues")).([]any)

	return vals
}

// Get returns the logger for the first non-nil context, or for context.Background.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c //nolint:fatcontext

			break
		}
	}

	if isMuted(realCtx) {
		return nullLogger
	}

	logger, ok := realCtx.Value(contextKey("logger")).(*slog.Logger)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	if sub := GetSubsystem(realCtx); sub != "" {
		logger = logger.With("subsystem", sub)
	}

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}

// nullHandler discards every record.
type nullHandler struct{}

func (n *nullHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(context.Context, slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs([]slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals
