package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Parallel()

	b := AddThird(AddSecond(AddFirst(NewBuilder(), "Jordan"), 23), true)

	triple, err := b.Build(WithLabels("name", "number", "retired"))
	require.NoError(t, err)

	assert.Equal(t, "Jordan", triple.First())
	assert.Equal(t, 23, triple.Second())
	assert.True(t, triple.Third())
	assert.Equal(t, "Triple", triple.Kind())
	assert.Equal(t, []string{"name", "number", "retired"}, triple.Labels())
	assert.True(t, triple.Equals(Must(Of3("Jordan", 23, true))))
}

func TestEmptyBuilder(t *testing.T) {
	t.Parallel()

	empty := NewBuilder().Build()

	assert.Equal(t, 0, empty.Size())
	assert.Equal(t, "Empty", empty.Kind())
}

func TestBuilderForksDoNotAlias(t *testing.T) {
	t.Parallel()

	prefix := AddSecond(AddFirst(NewBuilder(), "a"), "b")

	left := Must(AddThird(prefix, "left").Build())
	right := Must(AddThird(prefix, "right").Build())
	pair := Must(prefix.Build())

	assert.Equal(t, "left", left.Third())
	assert.Equal(t, "right", right.Third())
	assert.Equal(t, 2, pair.Size())
	assert.Equal(t, "Pair (a, b)", pair.String())
}

func TestBuilderNullElements(t *testing.T) {
	t.Parallel()

	var missing *int

	b := AddSecond(AddFirst(NewBuilder(), "a"), missing)

	_, err := b.Build()
	require.ErrorIs(t, err, ErrNullElement)
	assert.ErrorContains(t, err, "Pair cannot hold null values.")

	nullable := b.BuildNullable()
	assert.Equal(t, "NullablePair", nullable.Kind())
	assert.True(t, nullable.Second().Empty())
	assert.Equal(t, "a", nullable.First().GetOrElse(""))
}

func TestBuilderUpToMaxDegree(t *testing.T) {
	t.Parallel()

	b1 := AddFirst(NewBuilder(), 0)
	b2 := AddSecond(b1, 1)
	b3 := AddThird(b2, 2)
	b4 := AddFourth(b3, 3)
	b5 := AddFifth(b4, 4)
	b6 := AddSixth(b5, 5)
	b7 := AddSeventh(b6, 6)
	b8 := AddEighth(b7, 7)
	b9 := AddNinth(b8, 8)
	b10 := AddTenth(b9, 9)
	b11 := AddEleventh(b10, 10)
	b12 := AddTwelfth(b11, 11)
	b13 := AddThirteenth(b12, 12)
	b14 := AddFourteenth(b13, 13)
	b15 := AddFifteenth(b14, 14)
	b16 := AddSixteenth(b15, 15)
	b17 := AddSeventeenth(b16, 16)
	b18 := AddEighteenth(b17, 17)
	b19 := AddNineteenth(b18, 18)
	b20 := AddTwentieth(b19, 19)

	vigintuple, err := b20.Build()
	require.NoError(t, err)

	assert.Equal(t, MaxDegree, vigintuple.Size())
	assert.Equal(t, "Vigintuple", vigintuple.Kind())
	assert.Equal(t, 0, vigintuple.First())
	assert.Equal(t, 19, vigintuple.Twentieth())

	_, elements := sequence(MaxDegree)
	fromArray := Must(OfArray(nil, elements))

	assert.True(t, vigintuple.Equals(fromArray))
	assert.Equal(t, fromArray.HashCode(), vigintuple.HashCode())

	nine := Must(b9.Build())
	assert.Equal(t, "Nonuple", nine.Kind())
	assert.Equal(t, 8, nine.Ninth())
}
