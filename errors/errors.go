// Package errors provides helpers for accumulating validation failures.
package errors

import (
	"errors"
	"fmt"
)

// Collection accumulates problems so that all of them can be reported at once.
// It is not safe for concurrent use.
//
//	errs := errors.NewCollection(ErrInvalidConfig)
//	errs.Addf("max degree must be at least 1, got %d", n)
//	return errs.GetError()
type Collection struct {
	kind   error
	errors []error
}

// NewCollection returns a collection whose Addf errors all wrap kind, so that
// errors.Is(collection.GetError(), kind) holds. kind may be nil.
func NewCollection(kind error) *Collection {
	return &Collection{kind: kind}
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf appends a formatted error wrapping the collection's kind.
func (c *Collection) Addf(format string, args ...any) {
	if c.kind == nil {
		c.errors = append(c.errors, fmt.Errorf(format, args...)) //nolint:err113

		return
	}

	c.errors = append(c.errors, fmt.Errorf("%w: "+format, append([]any{c.kind}, args...)...)) //nolint:err113
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there
// is exactly one, and everything joined with errors.Join otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
