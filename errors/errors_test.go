package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test kind")

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("empty collection has no error", func(t *testing.T) {
		t.Parallel()

		c := NewCollection(errTest)

		assert.False(t, c.HasError())
		assert.Equal(t, 0, c.Len())
		assert.NoError(t, c.GetError())
	})

	t.Run("nil errors are ignored", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		err := errors.New("only") //nolint:err113

		c := &Collection{}
		c.Add(err)

		assert.Equal(t, 1, c.Len())
		assert.Same(t, err, c.GetError()) //nolint:testifylint
	})

	t.Run("several errors are joined", func(t *testing.T) {
		t.Parallel()

		first := errors.New("first") //nolint:err113

		c := NewCollection(errTest)
		c.Add(first)
		c.Addf("degree %d is %s", 3, "wrong")

		err := c.GetError()
		require.Error(t, err)
		assert.Equal(t, 2, c.Len())
		require.ErrorIs(t, err, first)
		require.ErrorIs(t, err, errTest)
		assert.Equal(t, "first\ntest kind: degree 3 is wrong", err.Error())
	})
}

func TestAddfWithoutKind(t *testing.T) {
	t.Parallel()

	c := NewCollection(nil)
	c.Addf("plain %q", "message")

	err := c.GetError()
	require.Error(t, err)
	assert.Equal(t, `plain "message"`, err.Error())
	assert.NotErrorIs(t, err, errTest)
}
