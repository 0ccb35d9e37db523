package script

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("something went wrong") //nolint:err113

	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{name: "exit code 0", err: Exit(0), code: 0, expected: "exit 0"},
		{name: "exit code 42", err: Exit(42), code: 42, expected: "exit 42"},
		{name: "with error", err: ExitWithError(cause), code: 1, expected: "exit 1: something went wrong"},
		{name: "with message", err: ExitWithErrorMessage("bad %s", "input"), code: 1, expected: "exit 1: bad input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Error(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())

			var exitErr *exitError

			require.ErrorAs(t, tt.err, &exitErr)
			assert.Equal(t, tt.code, exitErr.code)
		})
	}

	assert.ErrorIs(t, ExitWithError(cause), cause)
}

func newTestScript(buf *bytes.Buffer, flags *flag.FlagSet) *Script {
	return New("test-script", LogOutput(buf), WithFlags(flags))
}

func TestRun(t *testing.T) { //nolint:paralleltest
	tests := []struct {
		name     string
		callback func(ctx context.Context) error
		code     int
		logged   string
	}{
		{
			name:     "success",
			callback: func(context.Context) error { return nil },
			code:     0,
		},
		{
			name:     "plain error",
			callback: func(context.Context) error { return errors.New("plain failure") }, //nolint:err113
			code:     1,
			logged:   "plain failure",
		},
		{
			name:     "silent exit code",
			callback: func(context.Context) error { return Exit(3) },
			code:     3,
		},
		{
			name:     "exit with error",
			callback: func(context.Context) error { return ExitWithErrorMessage("config %q missing", "x.yaml") },
			code:     1,
			logged:   "x.yaml",
		},
		{
			name:   "nil callback",
			code:   1,
			logged: "callback is nil",
		},
	}

	for _, tt := range tests { //nolint:paralleltest
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			flags := flag.NewFlagSet("test-script", flag.ContinueOnError)

			code := newTestScript(&buf, flags).run(nil, tt.callback)

			assert.Equal(t, tt.code, code)

			if tt.logged != "" {
				assert.Contains(t, buf.String(), tt.logged)
			} else {
				assert.NotContains(t, buf.String(), "error running script")
			}
		})
	}
}

func TestRunParsesFlags(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	flags := flag.NewFlagSet("test-script", flag.ContinueOnError)
	out := flags.String("out", ".", "output directory")

	var seen string

	code := newTestScript(&buf, flags).run([]string{"-out", "gen"}, func(ctx context.Context) error {
		seen = *out

		require.NoError(t, ctx.Err())

		return nil
	})

	assert.Equal(t, 0, code)
	assert.Equal(t, "gen", seen)
}

func TestRunBadFlags(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	flags := flag.NewFlagSet("test-script", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	called := false

	code := newTestScript(&buf, flags).run([]string{"-nope"}, func(context.Context) error {
		called = true

		return nil
	})

	assert.Equal(t, 2, code)
	assert.False(t, called)
}
