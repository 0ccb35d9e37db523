package tuple

import (
	"hash"
	"iter"
	"slices"

	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/zero"
)

// view adapts an ad hoc implementation of a degree interface into a Tuple.
// It holds no values of its own: every read goes through the wrapped type's
// getters via the generated index switch, so a view of a mutable type reflects
// its current state.
type view struct {
	kind kind
	get  func(index int) any
}

func (v view) tupleKind() kind {
	return v.kind
}

// Size returns the degree of the viewed family.
func (v view) Size() int {
	return v.kind.degree
}

// Get dispatches to the named getter for index, or fails with ErrIndexOutOfRange.
func (v view) Get(index int) (any, error) {
	if index < 0 || index >= v.kind.degree {
		return nil, indexOutOfRange(index, v.kind.degree)
	}

	return v.at(index), nil
}

// Stream yields the result of every getter in index order.
func (v view) Stream() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range v.kind.degree {
			if !yield(v.at(i)) {
				return
			}
		}
	}
}

// Labels always returns nil; ad hoc implementations carry no labels.
func (v view) Labels() []string {
	return nil
}

// LabelledMap always returns an empty map.
func (v view) LabelledMap() map[string]any {
	return map[string]any{}
}

// Kind returns the name of the viewed family.
func (v view) Kind() string {
	return v.kind.name
}

// Equals compares the viewed values with other, which must be of the same kind.
func (v view) Equals(other any) bool {
	return equalTuple(v.kind, v.snapshot(), other)
}

// HashCode hashes the viewed values exactly like a concrete tuple would.
func (v view) HashCode() uint64 {
	return hashing.Sum64(v.snapshot()...)
}

// UpdateHash writes the viewed values to h.
func (v view) UpdateHash(h hash.Hash) error {
	for _, value := range v.snapshot() {
		if err := hashing.WriteValue(h, value); err != nil {
			return err
		}
	}

	return nil
}

func (v view) String() string {
	return render(v.kind.name, v.snapshot())
}

// at reads index through the getters. A nil result, typed or not, reads as nil.
func (v view) at(index int) any {
	value := v.get(index)
	if zero.IsNil(value) {
		return nil
	}

	return value
}

func (v view) snapshot() []any {
	return slices.Collect(v.Stream())
}
