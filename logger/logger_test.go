package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var rec map[string]any

		require.NoError(t, json.Unmarshal([]byte(line), &rec))

		out = append(out, rec)
	}

	return out
}

func TestConfigureLoggingWithOptions(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	Get().Info("should have the default subsystem")
	Get(WithSubsystem(t.Context(), "overridden")).Info("should have overridden subsystem")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "test", lines[0]["subsystem"])
	assert.Equal(t, "overridden", lines[1]["subsystem"])
}

func TestConfigureLoggingFromEnvironment(t *testing.T) { //nolint:paralleltest
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LEGACY_LOG_LEVEL", "loud")

	var buf bytes.Buffer

	ConfigureLogging(t.Context(), "env-test", func(o *Options) {
		o.Output = &buf
	})

	Get().Info("below the minimum level")
	Get().Warn("at the minimum level")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "ignoring logging setting", lines[0]["msg"])
	assert.Contains(t, lines[0]["error"], "LEGACY_LOG_LEVEL")
	assert.Equal(t, "at the minimum level", lines[1]["msg"])
	assert.Equal(t, "env-test", lines[1]["subsystem"])
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := WithLogger(t.Context(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = WithSubsystem(ctx, "scoped")
	ctx = With(ctx, "file", "tuples_gen.go")
	ctx = With(ctx, "degree", 3)

	Get(ctx).Info("wrote file")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "scoped", lines[0]["subsystem"])
	assert.Equal(t, "tuples_gen.go", lines[0]["file"])
	assert.InDelta(t, 3, lines[0]["degree"], 0)
}

func TestWithDoesNotAliasParent(t *testing.T) {
	t.Parallel()

	parent := With(t.Context(), "a", 1)
	left := With(parent, "b", 2)
	right := With(parent, "c", 3)

	assert.Equal(t, []any{"a", 1}, getValues(parent))
	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
}

func TestWithMuted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := WithLogger(t.Context(), slog.New(slog.NewTextHandler(&buf, nil)))

	Get(WithMuted(ctx, true)).Error("nobody hears this")
	assert.Empty(t, buf.String())

	Get(WithMuted(ctx, false)).Info("but this is heard")
	assert.Contains(t, buf.String(), "but this is heard")
}

func TestAnnotateError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, AnnotateError(nil, "k", "v"))

	base := errors.New("boom") //nolint:err113
	inner := AnnotateError(base, "template", "tuples.go.tmpl")
	outer := AnnotateError(inner, "file", "tuples_gen.go")

	require.ErrorIs(t, outer, base)
	assert.Equal(t, "boom", outer.Error())

	attrs := Attrs(outer)
	require.Len(t, attrs, 2)
	assert.Equal(t, "file", attrs[0].Key)
	assert.Equal(t, "template", attrs[1].Key)

	var buf bytes.Buffer

	logger := slog.New(&annotatedErrorHandler{inner: slog.NewJSONHandler(&buf, nil)})
	logger.Error("generation failed", "error", outer)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "boom", lines[0]["error"])
	assert.Equal(t, "tuples_gen.go", lines[0]["file"])
	assert.Equal(t, "tuples.go.tmpl", lines[0]["template"])
}

func TestPlainErrorsAreKept(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(&annotatedErrorHandler{inner: slog.NewJSONHandler(&buf, nil)})
	logger.Error("failed", "error", errors.New("plain")) //nolint:err113

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "plain", lines[0]["error"])
}
