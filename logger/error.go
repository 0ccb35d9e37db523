package logger

import (
	"context"
	"errors"
	"log/slog"
)

// AnnotateError attaches slog key-value pairs to err. When the error is logged
// through a logger configured by this package, the pairs are lifted into the
// record next to it:
//
//	return logger.AnnotateError(err, "file", name)
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	return &annotatedError{err: err, attrs: argsToAttrs(args)}
}

func argsToAttrs(args []any) []slog.Attr {
	var rec slog.Record

	rec.Add(args...)

	attrs := make([]slog.Attr, 0, rec.NumAttrs())

	rec.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return attrs
}

type annotatedError struct {
	err   error
	attrs []slog.Attr
}

func (a *annotatedError) Error() string {
	return a.err.Error()
}

func (a *annotatedError) Unwrap() error {
	return a.err
}

// Attrs returns the attributes of every annotated error in the chain of err,
// outermost first.
func Attrs(err error) []slog.Attr {
	var out []slog.Attr

	for err != nil {
		var annotated *annotatedError
		if !errors.As(err, &annotated) {
			break
		}

		out = append(out, annotated.attrs...)
		err = annotated.err
	}

	return out
}

// annotatedErrorHandler lifts the attributes of annotated errors into the record.
type annotatedErrorHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*annotatedErrorHandler)(nil)

func (h *annotatedErrorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *annotatedErrorHandler) Handle(ctx context.Context, record slog.Record) error {
	var extra []slog.Attr

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			extra = append(extra, Attrs(err)...)
		}

		return true
	})

	if len(extra) == 0 {
		return h.inner.Handle(ctx, record)
	}

	out := record.Clone()
	out.AddAttrs(extra...)

	return h.inner.Handle(ctx, out)
}

func (h *annotatedErrorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &annotatedErrorHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *annotatedErrorHandler) WithGroup(name string) slog.Handler {
	return &annotatedErrorHandler{inner: h.inner.WithGroup(name)}
}
