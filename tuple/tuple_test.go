package tuple

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var familyNames = []string{ //nolint:gochecknoglobals
	"Empty", "Single", "Pair", "Triple", "Quad", "Quintuple", "Hextuple", "Septuple",
	"Octuple", "Nonuple", "Decuple", "Undecuple", "Duodecuple", "Tredecuple",
	"Quattuordecuple", "Quindecuple", "Sexdecuple", "Septendecuple", "Octodecuple",
	"Novemdecuple", "Vigintuple",
}

func sequence(n int) ([]string, []any) {
	labels := make([]string, n)
	elements := make([]any, n)

	for i := range n {
		labels[i] = fmt.Sprintf("l%d", i)
		elements[i] = i
	}

	return labels, elements
}

func TestOfArray(t *testing.T) {
	t.Parallel()

	for n := 0; n <= MaxDegree+1; n++ {
		t.Run(fmt.Sprintf("degree %d", n), func(t *testing.T) {
			t.Parallel()

			labels, elements := sequence(n)

			tup, err := OfArray(labels, elements)
			require.NoError(t, err)

			assert.Equal(t, n, tup.Size())

			for i := range n {
				got, err := tup.Get(i)
				require.NoError(t, err)
				assert.Equal(t, i, got)
			}

			for _, index := range []int{-1, n} {
				_, err := tup.Get(index)
				require.ErrorIs(t, err, ErrIndexOutOfRange)
				assert.ErrorContains(t, err,
					fmt.Sprintf("index %d is illegal. The degree of this Tuple is %d.", index, n))
			}

			assert.Equal(t, elements, nonNilSlice(slices.Collect(tup.Stream())))
			assert.Equal(t, elements, nonNilSlice(slices.Collect(StreamOf[any](tup))))

			if n <= MaxDegree {
				assert.Equal(t, familyNames[n], tup.Kind())
			} else {
				assert.Equal(t, "Tuple", tup.Kind())
				assert.IsType(t, Unbounded{}, tup)
			}

			if n > 0 {
				assert.Equal(t, labels, tup.Labels())
				assert.Len(t, tup.LabelledMap(), n)
				assert.Equal(t, n-1, tup.LabelledMap()[labels[n-1]])
			}
		})
	}
}

func nonNilSlice(values []any) []any {
	if values == nil {
		return []any{}
	}

	return values
}

func TestOfArrayTypes(t *testing.T) {
	t.Parallel()

	tup, err := OfArray(nil, []any{"a", 1, true})
	require.NoError(t, err)

	triple, ok := tup.(Tuple3[any, any, any])
	require.True(t, ok)
	assert.Equal(t, "a", triple.First())
	assert.Equal(t, 1, triple.Second())
	assert.Equal(t, true, triple.Third())

	empty, err := OfArray(nil, nil)
	require.NoError(t, err)
	assert.IsType(t, Tuple0{}, empty)
	assert.Equal(t, "Empty", empty.Kind())
}

func TestOfArrayRejectsNil(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, MaxDegree, MaxDegree + 1} {
		_, elements := sequence(n)
		elements[n-1] = nil

		tup, err := OfArray(nil, elements)
		require.ErrorIs(t, err, ErrNullElement, "degree %d", n)
		assert.Nil(t, tup)
	}
}

func TestGetOutOfRange(t *testing.T) {
	t.Parallel()

	triple := Must(Of3(0, 1, 42))

	for _, index := range []int{-1, 3, 100} {
		_, err := triple.Get(index)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorContains(t, err, fmt.Sprintf("index %d is illegal. The degree of this Tuple is 3.", index))
	}

	for _, index := range []int{-1, 0} {
		_, err := Of0().Get(index)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}

	unbounded := Must(NewUnbounded([]any{0, 1, 42}))

	for _, index := range []int{-1, 3} {
		_, err := unbounded.Get(index)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorContains(t, err, fmt.Sprintf("index %d is illegal. The degree of this Tuple is 3.", index))
	}

	nullable := NullableOf2[string, *int]("a", nil)

	for _, index := range []int{-1, 2} {
		_, err := nullable.Get(index)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestStrictTuplesRejectNil(t *testing.T) {
	t.Parallel()

	var missing *int

	_, err := Of3(0, missing, 2)
	require.ErrorIs(t, err, ErrNullElement)
	assert.ErrorContains(t, err, "Triple cannot hold null values.")
	assert.ErrorContains(t, err, "Element 1 is nil.")

	_, err = Of1[any](nil)
	require.ErrorIs(t, err, ErrNullElement)

	_, err = Of2("key", []string(nil))
	require.ErrorIs(t, err, ErrNullElement)

	_, err = NewUnbounded([]any{1, nil})
	require.ErrorIs(t, err, ErrNullElement)

	assert.Panics(t, func() {
		Must(Of2[any, any](nil, 1))
	})
}

func TestEquality(t *testing.T) {
	t.Parallel()

	a := Must(Of3(0, 1, 42))
	b := Must(Of3(0, 1, 42))

	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.True(t, a.Equals(a))
	assert.Equal(t, a.HashCode(), b.HashCode())

	tests := []struct {
		name  string
		other any
	}{
		{name: "nil", other: nil},
		{name: "unrelated type", other: "Triple (0, 1, 42)"},
		{name: "different element", other: Must(Of3(0, 1, 43))},
		{name: "different order", other: Must(Of3(1, 0, 42))},
		{name: "different degree", other: Must(Of2(0, 1))},
		{name: "nullable counterpart", other: NullableOf3(0, 1, 42)},
		{name: "unbounded of same length", other: Must(NewUnbounded([]any{0, 1, 42}))},
		{name: "element of other type", other: Must(Of3(0, 1, int64(42)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.False(t, a.Equals(tt.other))
		})
	}
}

func TestEqualityIgnoresLabels(t *testing.T) {
	t.Parallel()

	plain := Must(Of2("Jordan", 23))
	labelled := Must(Of2("Jordan", 23, WithLabels("lastName", "number")))

	assert.True(t, plain.Equals(labelled))
	assert.Equal(t, plain.HashCode(), labelled.HashCode())
}

func TestHashCode(t *testing.T) {
	t.Parallel()

	base := Must(Of3(0, 1, 42)).HashCode()

	assert.NotEqual(t, base, Must(Of3(42, 1, 0)).HashCode())
	assert.NotEqual(t, base, Must(Of3(0, 1, "42")).HashCode())
	assert.Equal(t, base, Must(Of3(0, 1, 42)).HashCode())

	var missing *string

	assert.Equal(t, NullableOf2("a", missing).HashCode(), NullableOfArray(nil, []any{"a", nil}).HashCode())
	assert.True(t, NullableOf2("a", missing).Equals(NullableOfArray(nil, []any{"a", nil})))
}

type owner struct {
	Name string
	Pet  *string
}

func TestHashCodeAgreesWithEquals(t *testing.T) {
	t.Parallel()

	one, otherOne := 1, 1
	rex, otherRex := "rex", "rex"

	tests := []struct {
		name        string
		left, right Tuple
	}{
		{
			name:  "pointers to equal values",
			left:  Must(Of1(&one)),
			right: Must(Of1(&otherOne)),
		},
		{
			name:  "signed zero",
			left:  Must(Of1(0.0)),
			right: Must(Of1(math.Copysign(0, -1))),
		},
		{
			name:  "struct holding pointers",
			left:  Must(Of2("a", owner{Name: "sam", Pet: &rex})),
			right: Must(Of2("a", owner{Name: "sam", Pet: &otherRex})),
		},
		{
			name:  "maps",
			left:  Must(Of1(map[string]int{"a": 1, "b": 2, "c": 3})),
			right: Must(Of1(map[string]int{"c": 3, "b": 2, "a": 1})),
		},
		{
			name:  "slices of floats",
			left:  Must(Of1([]float64{0, 1})),
			right: Must(Of1([]float64{math.Copysign(0, -1), 1})),
		},
		{
			name:  "nullable pointers",
			left:  NullableOf2[*int, *int](&one, nil),
			right: NullableOf2[*int, *int](&otherOne, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.True(t, tt.left.Equals(tt.right))
			assert.Equal(t, tt.left.HashCode(), tt.right.HashCode())
		})
	}

	two := 2
	assert.NotEqual(t, Must(Of1(&one)).HashCode(), Must(Of1(&two)).HashCode())
}

func TestNestedTuples(t *testing.T) {
	t.Parallel()

	outer := Must(Of2("point", Must(Of2(1, 2))))
	same := Must(Of2("point", Must(Of2(1, 2))))
	other := Must(Of2("point", Must(Of2(2, 1))))

	assert.True(t, outer.Equals(same))
	assert.Equal(t, outer.HashCode(), same.HashCode())
	assert.False(t, outer.Equals(other))
	assert.NotEqual(t, outer.HashCode(), other.HashCode())
	assert.Equal(t, "Pair (point, Pair (1, 2))", outer.String())
}

func TestLabels(t *testing.T) {
	t.Parallel()

	player := Must(Of2("Jordan", 23, WithLabels("lastName", "number")))

	assert.Equal(t, "Jordan", player.First())
	assert.Equal(t, 23, player.Second())
	assert.Equal(t, []string{"lastName", "number"}, player.Labels())
	assert.Equal(t, map[string]any{"lastName": "Jordan", "number": 23}, player.LabelledMap())

	labels := player.Labels()
	labels[0] = "changed"
	assert.Equal(t, []string{"lastName", "number"}, player.Labels())

	partial := Must(Of3("a", "b", "c", WithLabels("first")))
	assert.Equal(t, map[string]any{"first": "a"}, partial.LabelledMap())

	duplicate := Must(Of2("a", "b", WithLabels("x", "x")))
	assert.Equal(t, map[string]any{"x": "b"}, duplicate.LabelledMap())

	unlabelled := Must(Of1("a"))
	assert.Nil(t, unlabelled.Labels())
	assert.Empty(t, unlabelled.LabelledMap())
}

func TestLabelsAreCopied(t *testing.T) {
	t.Parallel()

	labels := []string{"a", "b"}
	pair := Must(Of2(1, 2, WithLabels(labels...)))

	labels[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, pair.Labels())
}

func TestString(t *testing.T) {
	t.Parallel()

	var missing *int

	tests := []struct {
		name     string
		tuple    Tuple
		expected string
	}{
		{name: "empty", tuple: Of0(), expected: "Empty ()"},
		{name: "single", tuple: Must(Of1("x")), expected: "Single (x)"},
		{name: "triple", tuple: Must(Of3(0, 1, 42)), expected: "Triple (0, 1, 42)"},
		{name: "nullable", tuple: NullableOf2(missing, "b"), expected: "NullablePair (null, b)"},
		{name: "unbounded", tuple: Must(NewUnbounded([]any{1, 2})), expected: "Tuple (1, 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.tuple.String())
		})
	}
}

func TestStreamOf(t *testing.T) {
	t.Parallel()

	mixed := NullableOf4[any, any, any, any]("a", 1, nil, "b")

	assert.Equal(t, []string{"a", "b"}, slices.Collect(StreamOf[string](mixed)))
	assert.Equal(t, []int{1}, slices.Collect(StreamOf[int](mixed)))
	assert.Equal(t, []any{"a", 1, nil, "b"}, slices.Collect(mixed.Stream()))

	// Sequences can be ranged over more than once and stopped early.
	seq := StreamOf[string](mixed)
	for range 2 {
		for value := range seq {
			assert.Equal(t, "a", value)

			break
		}
	}
}

func TestNullableTuples(t *testing.T) {
	t.Parallel()

	var missing *string

	name := "Jordan"
	pair := NullableOf2(&name, missing)

	first, ok := pair.First().Get()
	require.True(t, ok)
	assert.Equal(t, "Jordan", *first)
	assert.True(t, pair.Second().Empty())

	got, err := pair.Get(1)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, "NullablePair", pair.Kind())
	assert.Equal(t, 2, pair.Size())

	tup := NullableOfArray([]string{"a"}, []any{nil, 2, nil})
	assert.Equal(t, "NullableTriple", tup.Kind())
	assert.Equal(t, map[string]any{"a": nil}, tup.LabelledMap())

	long := NullableOfArray(nil, make([]any, MaxDegree+1))
	assert.Equal(t, "NullableTuple", long.Kind())
	assert.Equal(t, MaxDegree+1, long.Size())
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var triple Tuple3[int, string, bool]

	assert.Equal(t, 0, triple.Size())
	assert.Equal(t, 0, triple.First())
	assert.Empty(t, triple.Second())
	assert.False(t, triple.Third())

	var nullable NullableTuple2[int, string]

	assert.True(t, nullable.First().Empty())

	var empty Tuple0

	assert.Equal(t, "Empty", empty.Kind())
	assert.Equal(t, "Empty ()", empty.String())
	assert.True(t, empty.Equals(Of0()))
	assert.True(t, Of0().Equals(empty))
	assert.Equal(t, Of0().HashCode(), empty.HashCode())
}

func TestImmutability(t *testing.T) {
	t.Parallel()

	elements := []any{"a", "b"}
	pair, err := OfArray(nil, elements)
	require.NoError(t, err)

	elements[0] = "changed"

	got, err := pair.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}
