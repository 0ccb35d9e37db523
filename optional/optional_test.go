package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := Some(42)
	assert.True(t, opt.NonEmpty())
	assert.False(t, opt.Empty())

	val, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := None[int]()
	assert.False(t, opt.NonEmpty())
	assert.True(t, opt.Empty())

	val, ok := opt.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val) // zero value
}

func TestOfNillable(t *testing.T) {
	t.Parallel()

	var nilPtr *int

	assert.True(t, OfNillable(nilPtr).Empty())
	assert.True(t, OfNillable[[]string](nil).Empty())
	assert.True(t, OfNillable(0).NonEmpty())

	value := 7
	assert.Equal(t, &value, OfNillable(&value).GetOrPanic())
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("Jordan"), FromAny[string]("Jordan"))
	assert.Equal(t, None[string](), FromAny[string](23))
	assert.Equal(t, None[string](), FromAny[string](nil))
	assert.Equal(t, Some[any](23), FromAny[any](23))
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	t.Run("Some", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 42, Some(42).GetOrPanic())
	})

	t.Run("None", func(t *testing.T) {
		t.Parallel()

		opt := None[int]()

		assert.Panics(t, func() {
			opt.GetOrPanic()
		})
	})
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Some(42).GetOrElse(99))
	assert.Equal(t, 99, None[int]().GetOrElse(99))
}

func TestAny(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Some(42).Any())
	assert.Nil(t, None[int]().Any())
}

func TestAll(t *testing.T) {
	t.Parallel()

	var got []int

	for v := range Some(1).All() {
		got = append(got, v)
	}

	for v := range None[int]().All() {
		got = append(got, v)
	}

	assert.Equal(t, []int{1}, got)
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	assert.True(t, Some(1).Equals(Some(1), eq))
	assert.False(t, Some(1).Equals(Some(2), eq))
	assert.False(t, Some(1).Equals(None[int](), eq))
	assert.True(t, None[int]().Equals(None[int](), eq))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(42)", Some(42).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(i int) int { return i * 2 }

	assert.Equal(t, Some(12), Map(Some(6), double))
	assert.Equal(t, None[int](), Map(None[int](), double))
}
