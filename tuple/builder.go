package tuple

// EmptyBuilder is the initial state of the incremental builder. It holds no
// elements; AddFirst moves on to a SingleBuilder.
//
// Builder states are immutable values: every Add function returns a new state,
// so several tuples can be built from a common prefix.
//
//	prefix := tuple.AddSecond(tuple.AddFirst(tuple.NewBuilder(), "Jordan"), 23)
//	long := tuple.AddThird(prefix, true)
type EmptyBuilder struct{}

// NewBuilder returns the initial builder state.
func NewBuilder() EmptyBuilder {
	return EmptyBuilder{}
}

// Build returns the empty tuple.
func (EmptyBuilder) Build(opts ...Option) Tuple0 {
	return Of0(opts...)
}

// appendValue returns a fresh slice holding values followed by value.
func appendValue(values []any, value any) []any {
	out := make([]any, len(values), len(values)+1)
	copy(out, values)

	return append(out, value)
}
