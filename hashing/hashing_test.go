package hashing

import (
	"errors"
	"hash"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

var errBroken = errors.New("broken")

type text string

func (s text) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

type brokenHashable struct{}

func (brokenHashable) UpdateHash(hash.Hash) error {
	return errBroken
}

type point struct {
	X, Y int
}

type holder struct {
	Value *int
	Scale float64
}

type label string

type node struct {
	Name string
	Next *node
}

func TestXXH3(t *testing.T) {
	t.Parallel()

	first, err := XXH3(text("hello"))
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := XXH3(text("hello"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := XXH3(text("world"))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestXXHash64(t *testing.T) {
	t.Parallel()

	first, err := XXHash64(text("hello"))
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := XXHash64(text("hello"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = XXHash64(brokenHashable{})
	require.ErrorIs(t, err, errBroken)
}

func TestSum64(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Sum64(0, 1, 42), Sum64(0, 1, 42))
		assert.Equal(t, Sum64(point{1, 2}), Sum64(point{1, 2}))
		assert.Equal(t, Sum64([]int{1, 2}), Sum64([]int{1, 2}))
	})

	t.Run("order sensitive", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, Sum64(0, 1, 42), Sum64(42, 1, 0))
	})

	t.Run("type sensitive", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, Sum64(1), Sum64("1"))
		assert.NotEqual(t, Sum64(1), Sum64(uint(1)))
		assert.NotEqual(t, Sum64(nil), Sum64(""))
	})

	t.Run("no run-together", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, Sum64("ab", "c"), Sum64("a", "bc"))
	})

	t.Run("empty sequence", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Sum64(), Sum64())
	})

	t.Run("broken hashable falls back", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, Sum64(brokenHashable{}), Sum64(brokenHashable{}))
	})
}

func TestSum64AgreesWithDeepEqual(t *testing.T) {
	t.Parallel()

	one, otherOne := 1, 1
	negativeZero := math.Copysign(0, -1)

	tests := []struct {
		name string
		a, b any
	}{
		{name: "pointers to equal values", a: &one, b: &otherOne},
		{name: "signed zero", a: 0.0, b: negativeZero},
		{name: "signed zero float32", a: float32(0), b: float32(negativeZero)},
		{name: "signed zero complex", a: complex(0, 1), b: complex(negativeZero, 1)},
		{name: "struct fields", a: holder{Value: &one}, b: holder{Value: &otherOne, Scale: negativeZero}},
		{name: "map order", a: map[string]int{"a": 1, "b": 2, "c": 3}, b: map[string]int{"c": 3, "a": 1, "b": 2}},
		{name: "named string", a: label("x"), b: label("x")},
		{name: "nested slices", a: [][]int{{1}, {2, 3}}, b: [][]int{{1}, {2, 3}}},
		{name: "arrays", a: [2]float64{0, 1}, b: [2]float64{negativeZero, 1}},
		{name: "interfaces", a: []any{&one, "s"}, b: []any{&otherOne, "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.True(t, reflect.DeepEqual(tt.a, tt.b))
			assert.Equal(t, Sum64(tt.a), Sum64(tt.b))
		})
	}
}

func TestSum64FollowsPointers(t *testing.T) {
	t.Parallel()

	one, two := 1, 2

	assert.NotEqual(t, Sum64(&one), Sum64(&two))
	assert.NotEqual(t, Sum64(holder{Value: &one}), Sum64(holder{Value: &two}))
	assert.NotEqual(t, Sum64(map[string]int{"a": 1}), Sum64(map[string]int{"a": 2}))
	assert.NotEqual(t, Sum64(label("x")), Sum64(label("y")))
}

func TestSum64Cycles(t *testing.T) {
	t.Parallel()

	loop := &node{Name: "a"}
	loop.Next = loop

	assert.Equal(t, Sum64(loop), Sum64(loop))
	assert.NotEqual(t, Sum64(loop), Sum64(&node{Name: "a"}))
}

func TestWriteValue(t *testing.T) {
	t.Parallel()

	values := []any{
		nil, true, false,
		int(1), int8(1), int16(1), int32(1), int64(1),
		uint(1), uint8(1), uint16(1), uint32(1), uint64(1),
		float32(1.5), 1.5, "s", []byte("b"), text("h"), point{1, 2},
		complex(1, 2), label("l"), &point{1, 2}, map[int]string{1: "a"},
		[]any{nil, 1}, [1]int{1}, make(chan int), func() {},
	}

	for _, value := range values {
		require.NoError(t, WriteValue(testHash(), value))
	}

	require.ErrorIs(t, WriteValue(testHash(), brokenHashable{}), errBroken)
}

func testHash() hash.Hash {
	return xxh3.New()
}
