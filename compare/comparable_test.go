package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type caseless string

func (c caseless) Equals(other any) bool {
	o, ok := other.(caseless)

	return ok && strings.EqualFold(string(c), string(o))
}

type intBox int

func (b intBox) Equals(other intBox) bool {
	return b == other
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Equals[intBox](intBox(1), intBox(1)))
	assert.False(t, Equals[intBox](intBox(1), intBox(2)))
}

func TestAnyEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{name: "both nil", a: nil, b: nil, expected: true},
		{name: "left nil", a: nil, b: 1, expected: false},
		{name: "right nil", a: 1, b: nil, expected: false},
		{name: "equal ints", a: 42, b: 42, expected: true},
		{name: "different ints", a: 42, b: 43, expected: false},
		{name: "different numeric types", a: 42, b: int64(42), expected: false},
		{name: "equal slices", a: []int{1, 2}, b: []int{1, 2}, expected: true},
		{name: "equal maps", a: map[string]int{"a": 1}, b: map[string]int{"a": 1}, expected: true},
		{name: "comparable wins", a: caseless("Jordan"), b: caseless("JORDAN"), expected: true},
		{name: "comparable rejects", a: caseless("Jordan"), b: "Jordan", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, AnyEquals(tt.a, tt.b))
		})
	}
}

func TestAllEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, AllEqual(nil, []any{}))
	assert.True(t, AllEqual([]any{0, 1, 42}, []any{0, 1, 42}))
	assert.False(t, AllEqual([]any{0, 1, 42}, []any{0, 42, 1}))
	assert.False(t, AllEqual([]any{0, 1}, []any{0, 1, 42}))
	assert.True(t, AllEqual([]any{nil, "x"}, []any{nil, "x"}))
}
