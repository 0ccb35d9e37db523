// Package script runs command-line tools with flag parsing, logging set up from
// the environment, SIGINT-aware contexts and exit codes derived from errors.
package script

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/amp-labs/amp-tuple/logger"
)

// Exit codes used when the callback does not pick one.
const (
	codeFailure = 1
	codeUsage   = 2
)

// Option configures a Script.
type Option func(script *Script)

// Exit returns an error that makes the script exit with code without logging anything.
func Exit(code int) error {
	return &exitError{code: code}
}

// ExitWithError returns an error that makes the script log err and exit with code 1.
func ExitWithError(err error) error {
	return &exitError{err: err, code: codeFailure}
}

// ExitWithErrorMessage is ExitWithError with a formatted message.
func ExitWithErrorMessage(msg string, args ...any) error {
	return &exitError{
		err:  fmt.Errorf(msg, args...), //nolint:err113
		code: codeFailure,
	}
}

type exitError struct {
	err  error
	code int
}

func (e *exitError) Error() string {
	msg := "exit " + strconv.Itoa(e.code)

	if e.err != nil {
		return msg + ": " + e.err.Error()
	}

	return msg
}

func (e *exitError) Unwrap() error {
	return e.err
}

// LogLevel sets the minimum log level, overriding LOG_LEVEL.
func LogLevel(lvl slog.Level) Option {
	return func(script *Script) {
		script.loggerOpts = append(script.loggerOpts, func(options *logger.Options) {
			options.MinLevel = lvl
		})
	}
}

// LogOutput sends log output to writer, overriding LOG_OUTPUT.
func LogOutput(writer io.Writer) Option {
	return func(script *Script) {
		script.loggerOpts = append(script.loggerOpts, func(options *logger.Options) {
			options.Output = writer
		})
	}
}

// WithFlags makes the script parse its arguments into flags instead of the
// process-wide flag.CommandLine.
func WithFlags(flags *flag.FlagSet) Option {
	return func(script *Script) {
		script.flags = flags
	}
}

// Script is a runnable command-line tool.
type Script struct {
	name       string
	flags      *flag.FlagSet
	loggerOpts []logger.Option
}

// New creates a Script called name. Without WithFlags it parses flag.CommandLine.
func New(name string, opts ...Option) *Script {
	script := &Script{name: name}

	for _, opt := range opts {
		opt(script)
	}

	return script
}

// Run parses the process arguments, runs f and exits the process with the
// resulting code. The context passed to f is canceled on SIGINT.
func (s *Script) Run(f func(ctx context.Context) error) {
	os.Exit(s.run(os.Args[1:], f))
}

// run does everything Run does except exiting, and returns the exit code.
func (s *Script) run(args []string, callback func(ctx context.Context) error) int {
	flags := s.flags
	if flags == nil {
		flags = flag.CommandLine
	}

	if !flags.Parsed() {
		if err := flags.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}

			return codeUsage
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx = logger.WithSubsystem(ctx, s.name)
	_ = logger.ConfigureLogging(ctx, s.name, s.loggerOpts...)

	log := logger.Get(ctx)

	if callback == nil {
		log.Error("callback is nil")

		return codeFailure
	}

	err := callback(ctx)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		log.Error("error running script", "error", err)

		return codeFailure
	}

	if exitErr.code != 0 && exitErr.err != nil {
		log.Error("error running script", "error", exitErr.err)
	}

	return exitErr.code
}
