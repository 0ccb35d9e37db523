package tuple

// Accessor reads one position of a tuple with a statically known type.
// The generated FirstAccessor ... TwentiethAccessor types implement it for
// every degree interface that has the matching getter.
type Accessor[T, R any] interface {
	// Index returns the position this accessor reads.
	Index() int

	// Apply returns the element of t at Index.
	Apply(t T) R
}
