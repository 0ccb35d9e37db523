package tuple

import (
	"hash"
	"iter"
	"slices"

	"github.com/amp-labs/amp-tuple/zero"
)

// Tuple is the degree-agnostic view of every tuple in this package. It is what
// generic code (e.g. a projection layer consuming search results) works with
// when it does not know the arity statically.
type Tuple interface {
	// Size returns the degree of the tuple. It never changes.
	Size() int

	// Get returns the element at the given index. It fails with ErrIndexOutOfRange
	// when index is outside [0, Size()).
	Get(index int) (any, error)

	// Stream yields the elements in index order. For nullable tuples absent
	// elements are yielded as nil.
	Stream() iter.Seq[any]

	// Labels returns a copy of the labels supplied at construction, or nil.
	Labels() []string

	// LabelledMap returns a map from each label to the element at the same position.
	LabelledMap() map[string]any

	// Kind returns the name of the tuple's family, e.g. "Triple" or "NullableTriple".
	Kind() string

	// Equals reports whether other is a tuple of the same kind holding equal
	// elements in the same order.
	Equals(other any) bool

	// HashCode returns an order-sensitive hash of the elements.
	HashCode() uint64

	// UpdateHash writes the elements to h, making tuples hashing.Hashable.
	UpdateHash(h hash.Hash) error

	// String renders the tuple as "<Kind> (<v0>, <v1>, ...)".
	String() string
}

// kind identifies a tuple family. Two tuples can only be equal if their kinds are.
type kind struct {
	name     string
	degree   int // -1 for the unbounded kinds
	nullable bool
}

var (
	kindEmpty             = kind{name: "Empty"}
	kindUnbounded         = kind{name: "Tuple", degree: -1}
	kindNullableUnbounded = kind{name: "NullableTuple", degree: -1, nullable: true}
)

// kinded is implemented by every tuple type in this package, including views.
type kinded interface {
	tupleKind() kind
}

// Option configures a tuple at construction time.
type Option func(*options)

type options struct {
	labels []string
}

// WithLabels attaches a human-readable name to each position, in order.
// Labels show up in Labels and LabelledMap; they take no part in equality or hashing.
func WithLabels(labels ...string) Option {
	return func(o *options) {
		o.labels = labels
	}
}

func collectOptions(opts []Option) options {
	var o options

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if len(o.labels) == 0 {
		o.labels = nil
	} else {
		o.labels = slices.Clone(o.labels)
	}

	return o
}

// Must returns t, or panics if err is non-nil. It is meant for tuples built
// from literals that are known to be valid:
//
//	pair := tuple.Must(tuple.Of2("Jordan", 23))
func Must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}

	return t
}

// StreamOf yields the elements of t that are of type T, in index order.
// Nil elements (absent elements of nullable tuples) are skipped.
// The returned sequence may be ranged over any number of times.
func StreamOf[T any](t Tuple) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range t.Stream() {
			if zero.IsNil(value) {
				continue
			}

			typed, ok := value.(T)
			if !ok {
				continue
			}

			if !yield(typed) {
				return
			}
		}
	}
}

// asTuple erases the concrete type of a constructor result, making sure a
// failed construction yields a nil Tuple rather than a zero-valued one.
func asTuple(t Tuple, err error) (Tuple, error) {
	if err != nil {
		return nil, err
	}

	return t, nil
}
