package tuple

import (
	"fmt"
	"hash"
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/amp-tuple/compare"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/optional"
	"github.com/amp-labs/amp-tuple/zero"
)

// base is the shared storage behind every concrete tuple. It owns the
// nullability check, bounds checking, equality, hashing and rendering, so the
// generated per-degree types only add typed getters on top of it.
//
// The values slice is never handed out and never modified after construction.
type base struct {
	kind   kind
	values []any
	labels []string
}

// newBase copies values into a new base of the given kind. Strict kinds reject
// nil elements; construction is all or nothing.
func newBase(k kind, opts []Option, values ...any) (base, error) {
	if !k.nullable {
		for i, value := range values {
			if zero.IsNil(value) {
				return base{}, nullElement(k.name, i)
			}
		}
	}

	return base{
		kind:   k,
		values: slices.Clone(values),
		labels: collectOptions(opts).labels,
	}, nil
}

// newNullableBase is newBase for kinds that accept nil, which cannot fail.
// Typed nils are stored as untyped nil, so absence compares and hashes the
// same whatever the static type of the element.
func newNullableBase(k kind, opts []Option, values ...any) base {
	stored := slices.Clone(values)

	for i, value := range stored {
		if zero.IsNil(value) {
			stored[i] = nil
		}
	}

	return base{
		kind:   k,
		values: stored,
		labels: collectOptions(opts).labels,
	}
}

func (b base) tupleKind() kind {
	return b.kind
}

func (b base) tupleValues() []any {
	return b.values
}

// Size returns the number of elements in the tuple.
func (b base) Size() int {
	return len(b.values)
}

// Get returns the element at index, or ErrIndexOutOfRange.
func (b base) Get(index int) (any, error) {
	if index < 0 || index >= len(b.values) {
		return nil, indexOutOfRange(index, len(b.values))
	}

	return b.values[index], nil
}

// Stream yields every element in index order.
func (b base) Stream() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, value := range b.values {
			if !yield(value) {
				return
			}
		}
	}
}

// Labels returns a copy of the tuple's labels, or nil if it has none.
func (b base) Labels() []string {
	return slices.Clone(b.labels)
}

// LabelledMap maps each label to the element at the same position. Positions
// without a label are left out, and a repeated label keeps the later element.
func (b base) LabelledMap() map[string]any {
	return labelledMap(b.labels, b.values)
}

// Kind returns the name of the tuple's family.
func (b base) Kind() string {
	return b.kind.name
}

// Equals reports whether other is a tuple of the same kind with equal elements.
func (b base) Equals(other any) bool {
	return equalTuple(b.kind, b.values, other)
}

// HashCode returns an order-sensitive hash of the elements. Kind and labels are
// not part of it.
func (b base) HashCode() uint64 {
	return hashing.Sum64(b.values...)
}

// UpdateHash writes every element to h in order.
func (b base) UpdateHash(h hash.Hash) error {
	for _, value := range b.values {
		if err := hashing.WriteValue(h, value); err != nil {
			return err
		}
	}

	return nil
}

// String renders the tuple as "<Kind> (<v0>, <v1>, ...)" with nil shown as null.
func (b base) String() string {
	return render(b.kind.name, b.values)
}

// element returns the value at index as a T. A missing or nil value yields the
// zero value of T, which only happens for the zero value of a tuple type.
func element[T any](values []any, index int) T {
	if index >= len(values) {
		return zero.Value[T]()
	}

	typed, ok := values[index].(T)
	if !ok {
		return zero.Value[T]()
	}

	return typed
}

// nullableElement returns the value at index wrapped in an optional.Value.
func nullableElement[T any](values []any, index int) optional.Value[T] {
	if index >= len(values) {
		return optional.None[T]()
	}

	return optional.FromAny[T](values[index])
}

func equalTuple(k kind, values []any, other any) bool {
	if zero.IsNil(other) {
		return false
	}

	otherKind, ok := other.(kinded)
	if !ok || otherKind.tupleKind() != k {
		return false
	}

	return compare.AllEqual(values, valuesOf(other))
}

// valuesOf returns the elements of any tuple in this package. Concrete tuples
// expose their storage directly; views are read through Stream.
func valuesOf(t any) []any {
	if stored, ok := t.(interface{ tupleValues() []any }); ok {
		return stored.tupleValues()
	}

	streamed, ok := t.(Tuple)
	if !ok {
		return nil
	}

	return slices.Collect(streamed.Stream())
}

func labelledMap(labels []string, values []any) map[string]any {
	out := make(map[string]any, min(len(labels), len(values)))

	for i, label := range labels {
		if i >= len(values) {
			break
		}

		out[label] = values[i]
	}

	return out
}

func render(name string, values []any) string {
	var sb strings.Builder

	sb.WriteString(name)
	sb.WriteString(" (")

	for i, value := range values {
		if i > 0 {
			sb.WriteString(", ")
		}

		if zero.IsNil(value) {
			sb.WriteString("null")
		} else {
			fmt.Fprintf(&sb, "%v", value)
		}
	}

	sb.WriteString(")")

	return sb.String()
}
