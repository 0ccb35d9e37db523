package tuple

// Unbounded is the variable-degree fallback used for more than MaxDegree
// elements. It behaves like every fixed-degree tuple (bounds, equality, hashing,
// rendering) but never equals one, even at the same length, because its kind
// differs.
type Unbounded struct {
	base
}

// NewUnbounded creates a strict tuple of any length from values. The slice is
// copied. It fails with ErrNullElement if any value is nil.
func NewUnbounded(values []any, opts ...Option) (Unbounded, error) {
	b, err := newBase(kindUnbounded, opts, values...)
	if err != nil {
		return Unbounded{}, err
	}

	return Unbounded{base: b}, nil
}

// NewNullableUnbounded creates a nullable tuple of any length from values.
// The slice is copied.
func NewNullableUnbounded(values []any, opts ...Option) Unbounded {
	return Unbounded{base: newNullableBase(kindNullableUnbounded, opts, values...)}
}
