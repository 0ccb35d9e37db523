package tuple

import (
	"fmt"
	"testing"

	"github.com/amp-labs/amp-tuple/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// point satisfies Triple without going through the factory.
type point struct {
	x, y, z int
}

func (p point) First() int  { return p.x }
func (p point) Second() int { return p.y }
func (p point) Third() int  { return p.z }

// reading satisfies NullablePair.
type reading struct {
	sensor string
	value  *float64
}

func (r reading) First() optional.Value[string] { return optional.Some(r.sensor) }

func (r reading) Second() optional.Value[float64] {
	if r.value == nil {
		return optional.None[float64]()
	}

	return optional.Some(*r.value)
}

func TestView(t *testing.T) {
	t.Parallel()

	var triple Triple[int, int, int] = point{x: 0, y: 1, z: 42}

	adapted := View3(triple)

	assert.Equal(t, 3, adapted.Size())
	assert.Equal(t, "Triple", adapted.Kind())

	for i, expected := range []int{0, 1, 42} {
		got, err := adapted.Get(i)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	for _, index := range []int{-1, 3} {
		_, err := adapted.Get(index)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorContains(t, err, fmt.Sprintf("index %d is illegal. The degree of this Tuple is 3.", index))
	}

	assert.Nil(t, adapted.Labels())
	assert.Empty(t, adapted.LabelledMap())
	assert.Equal(t, "Triple (0, 1, 42)", adapted.String())
}

func TestViewEqualsConcreteTuple(t *testing.T) {
	t.Parallel()

	adapted := View3[int, int, int](point{x: 0, y: 1, z: 42})
	concrete := Must(Of3(0, 1, 42))

	assert.True(t, adapted.Equals(concrete))
	assert.True(t, concrete.Equals(adapted))
	assert.Equal(t, concrete.HashCode(), adapted.HashCode())

	assert.False(t, adapted.Equals(Must(Of3(0, 1, 43))))
	assert.False(t, adapted.Equals(nil))
}

func TestNullableView(t *testing.T) {
	t.Parallel()

	value := 21.5

	present := NullableView2[string, float64](reading{sensor: "t1", value: &value})
	absent := NullableView2[string, float64](reading{sensor: "t1"})

	got, err := present.Get(1)
	require.NoError(t, err)
	assert.InDelta(t, 21.5, got, 0)

	got, err = absent.Get(1)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, "NullablePair", absent.Kind())
	assert.Equal(t, "NullablePair (t1, null)", absent.String())
	assert.True(t, absent.Equals(NullableOf2[string, *float64]("t1", nil)))
}

func TestConcreteTuplesSatisfyDegreeInterfaces(t *testing.T) {
	t.Parallel()

	var (
		single Single[string]                   = Must(Of1("a"))
		pair   Pair[string, int]                = Must(Of2("a", 1))
		triple NullableTriple[string, int, any] = NullableOf3[string, int, any]("a", 1, nil)
	)

	assert.Equal(t, "a", single.First())
	assert.Equal(t, 1, pair.Second())
	assert.True(t, triple.Third().Empty())
}
