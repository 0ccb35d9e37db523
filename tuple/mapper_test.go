package tuple

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type player struct {
	name   string
	number int
	team   *string
}

func playerName(p player) string  { return p.name }
func playerNumber(p player) int   { return p.number }
func playerTeam(p player) *string { return p.team }

func double(x int) int {
	return x * 2
}

func TestMapper(t *testing.T) {
	t.Parallel()

	mapper := MapperOf5(double, double, double, double, double)

	assert.Equal(t, 5, mapper.Degree())

	tup, err := mapper.Apply(6)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 12, 12, 12, 12}, slices.Collect(StreamOf[int](tup)))
	assert.Equal(t, "Quintuple", tup.Kind())

	// The same mapper serves any number of sources.
	again, err := mapper.Apply(1)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Fifth())
}

func TestMapperGet(t *testing.T) {
	t.Parallel()

	mapper := MapperOf2(playerName, playerNumber)

	extractor, err := mapper.Get(1)
	require.NoError(t, err)

	number, ok := extractor.(func(player) int)
	require.True(t, ok)
	assert.Equal(t, 23, number(player{number: 23}))

	assert.Equal(t, "Jordan", mapper.First()(player{name: "Jordan"}))

	_, err = mapper.Get(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorContains(t, err, "The degree of this Mapper is 2.")

	_, err = mapper.Get(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMapperIsATupleOfFunctions(t *testing.T) {
	t.Parallel()

	var fns Pair[func(player) string, func(player) int] = MapperOf2(playerName, playerNumber)

	assert.Equal(t, 7, fns.Second()(player{number: 7}))
}

func TestMapperInterface(t *testing.T) {
	t.Parallel()

	mappers := []Mapper[player]{
		MapperOf0[player](),
		MapperOf1(playerName),
		MapperOf2(playerName, playerNumber),
		NullableMapperOf3(playerName, playerNumber, playerTeam),
	}

	source := player{name: "Jordan", number: 23}

	for degree, mapper := range mappers {
		assert.Equal(t, degree, mapper.Degree())

		tup, err := mapper.Map(source)
		require.NoError(t, err)
		assert.Equal(t, degree, tup.Size())
	}
}

func TestMapperRejectsNilResults(t *testing.T) {
	t.Parallel()

	mapper := MapperOf3(playerName, playerNumber, playerTeam)

	_, err := mapper.Apply(player{name: "Jordan", number: 23})
	require.ErrorIs(t, err, ErrNullElement)
	assert.ErrorContains(t, err, "Triple cannot hold null values.")

	tup, err := mapper.Map(player{name: "Jordan", number: 23})
	require.ErrorIs(t, err, ErrNullElement)
	assert.Nil(t, tup)

	team := "Bulls"

	triple, err := mapper.Apply(player{name: "Jordan", number: 23, team: &team})
	require.NoError(t, err)
	assert.Equal(t, "Bulls", *triple.Third())
}

func TestNullableMapper(t *testing.T) {
	t.Parallel()

	mapper := NullableMapperOf3(playerName, playerNumber, playerTeam)

	assert.Equal(t, 3, mapper.Degree())

	triple := mapper.Apply(player{name: "Jordan", number: 23})

	assert.Equal(t, "NullableTriple", triple.Kind())
	assert.Equal(t, "Jordan", triple.First().GetOrElse(""))
	assert.True(t, triple.Third().Empty())

	_, err := mapper.Get(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestToTuple(t *testing.T) {
	t.Parallel()

	toPair := ToTuple2(playerName, playerNumber)

	pair, err := toPair(player{name: "Pippen", number: 33})
	require.NoError(t, err)
	assert.True(t, pair.Equals(Must(Of2("Pippen", 33))))

	empty := ToTuple0[player]()(player{})
	assert.Equal(t, 0, empty.Size())
}

func TestMapperPanicsOnNilExtractor(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "nil extractor: extractor 1 of Mapper2 is nil", func() {
		MapperOf2[player, string, int](playerName, nil)
	})

	assert.PanicsWithError(t, "nil extractor: extractor 0 of NullableMapper1 is nil", func() {
		NullableMapperOf1[player, string](nil)
	})

	assert.PanicsWithError(t, "nil extractor: extractor 0 of Mapper3 is nil", func() {
		ToTuple3[player, string, int, *string](nil, playerNumber, playerTeam)
	})
}

func TestMapper0(t *testing.T) {
	t.Parallel()

	mapper := MapperOf0[int]()

	_, err := mapper.Get(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	tup, err := mapper.Map(1)
	require.NoError(t, err)
	assert.Equal(t, "Empty", tup.Kind())
}
