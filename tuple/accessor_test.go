package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type anyVigintuple = Vigintuple[
	any, any, any, any, any, any, any, any, any, any,
	any, any, any, any, any, any, any, any, any, any,
]

func TestTripleAccessors(t *testing.T) {
	t.Parallel()

	triple := Must(Of3("a", 1, true))

	first := TripleFirstGetter[string, int, bool]()
	second := TripleSecondGetter[string, int, bool]()
	third := TripleThirdGetter[string, int, bool]()

	assert.Equal(t, 0, first.Index())
	assert.Equal(t, 1, second.Index())
	assert.Equal(t, 2, third.Index())

	assert.Equal(t, "a", first.Apply(triple))
	assert.Equal(t, 1, second.Apply(triple))
	assert.True(t, third.Apply(triple))

	// Accessors work on ad hoc implementations too.
	assert.Equal(t, 42, TripleThirdGetter[int, int, int]().Apply(point{z: 42}))
}

func TestAccessorsMatchGet(t *testing.T) {
	t.Parallel()

	_, elements := sequence(MaxDegree)

	tup, err := OfArray(nil, elements)
	require.NoError(t, err)

	vigintuple, ok := tup.(anyVigintuple)
	require.True(t, ok)

	accessors := []Accessor[anyVigintuple, any]{
		FirstAccessor[anyVigintuple, any]{},
		SecondAccessor[anyVigintuple, any]{},
		ThirdAccessor[anyVigintuple, any]{},
		FourthAccessor[anyVigintuple, any]{},
		FifthAccessor[anyVigintuple, any]{},
		SixthAccessor[anyVigintuple, any]{},
		SeventhAccessor[anyVigintuple, any]{},
		EighthAccessor[anyVigintuple, any]{},
		NinthAccessor[anyVigintuple, any]{},
		TenthAccessor[anyVigintuple, any]{},
		EleventhAccessor[anyVigintuple, any]{},
		TwelfthAccessor[anyVigintuple, any]{},
		ThirteenthAccessor[anyVigintuple, any]{},
		FourteenthAccessor[anyVigintuple, any]{},
		FifteenthAccessor[anyVigintuple, any]{},
		SixteenthAccessor[anyVigintuple, any]{},
		SeventeenthAccessor[anyVigintuple, any]{},
		EighteenthAccessor[anyVigintuple, any]{},
		NineteenthAccessor[anyVigintuple, any]{},
		TwentiethAccessor[anyVigintuple, any]{},
	}

	require.Len(t, accessors, MaxDegree)

	for i, accessor := range accessors {
		assert.Equal(t, i, accessor.Index())

		got, err := tup.Get(accessor.Index())
		require.NoError(t, err)
		assert.Equal(t, got, accessor.Apply(vigintuple))
	}

	last := VigintupleTwentiethGetter[
		any, any, any, any, any, any, any, any, any, any,
		any, any, any, any, any, any, any, any, any, any,
	]()
	assert.Equal(t, MaxDegree-1, last.Apply(vigintuple))
}

func TestNullableAccessors(t *testing.T) {
	t.Parallel()

	pair := NullableOf2[string, *int]("a", nil)

	first := NullablePairFirstGetter[string, *int]().Apply(pair)
	second := NullablePairSecondGetter[string, *int]().Apply(pair)

	assert.Equal(t, "a", first.GetOrElse(""))
	assert.True(t, second.Empty())
}
