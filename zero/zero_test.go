package zero_test

import (
	"testing"

	"github.com/amp-labs/amp-tuple/zero"
	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	Field1 string
	Field2 int
}

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, zero.Value[int]())
	assert.Empty(t, zero.Value[string]())
	assert.Nil(t, zero.Value[*testStruct]())
	assert.Equal(t, testStruct{}, zero.Value[testStruct]())
	assert.Nil(t, zero.Value[[]string]())
	assert.NoError(t, zero.Value[error]())
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, zero.IsZero(0))
	assert.False(t, zero.IsZero(42))
	assert.True(t, zero.IsZero(""))
	assert.False(t, zero.IsZero("hello"))
	assert.True(t, zero.IsZero[*testStruct](nil))
	assert.True(t, zero.IsZero(testStruct{}))
	assert.False(t, zero.IsZero(testStruct{Field2: 1}))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		nilPtr   *testStruct
		nilMap   map[string]int
		nilSlice []int
		nilFunc  func()
		nilChan  chan int
		nilErr   error
	)

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "untyped nil", value: nil, expected: true},
		{name: "nil pointer", value: nilPtr, expected: true},
		{name: "nil map", value: nilMap, expected: true},
		{name: "nil slice", value: nilSlice, expected: true},
		{name: "nil func", value: nilFunc, expected: true},
		{name: "nil chan", value: nilChan, expected: true},
		{name: "nil error", value: nilErr, expected: true},
		{name: "zero int", value: 0, expected: false},
		{name: "empty string", value: "", expected: false},
		{name: "zero struct", value: testStruct{}, expected: false},
		{name: "non-nil pointer", value: &testStruct{}, expected: false},
		{name: "empty slice", value: []int{}, expected: false},
		{name: "false", value: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, zero.IsNil(tt.value))
		})
	}
}
