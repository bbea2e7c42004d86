package box

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_ZeroValue(t *testing.T) {
	var b Box[int]

	assert.Equal(t, Empty, b.State())
	assert.True(t, b.IsEmpty())
	assert.False(t, b.HasValue())
	assert.False(t, b.HasError())
	assert.False(t, b.HasPanic())
}

func TestBox_SetValue(t *testing.T) {
	var b Box[string]

	b.SetValue("hello")
	assert.Equal(t, Value, b.State())
	assert.True(t, b.HasValue())
	assert.Equal(t, "hello", b.Value())
	assert.NoError(t, b.Err())
}

func TestBox_SetError(t *testing.T) {
	var b Box[int]
	errBoom := errors.New("boom")

	b.SetError(errBoom)
	assert.Equal(t, Error, b.State())
	assert.True(t, b.HasError())
	assert.ErrorIs(t, b.Err(), errBoom)
	assert.Zero(t, b.Value())
}

func TestBox_SetPanic(t *testing.T) {
	var b Box[int]

	b.SetPanic("bad")
	assert.Equal(t, Panicked, b.State())
	assert.True(t, b.HasPanic())
	assert.Equal(t, "bad", b.Panic())
}

func TestBox_Overwrite(t *testing.T) {
	var b Box[int]

	b.SetValue(1)
	b.SetError(errors.New("boom"))
	assert.True(t, b.HasError())
	assert.Zero(t, b.Value())

	b.SetValue(2)
	assert.True(t, b.HasValue())
	assert.NoError(t, b.Err())
	assert.Equal(t, 2, b.Value())
}

func TestBox_Clear(t *testing.T) {
	var b Box[int]

	b.SetValue(42)
	b.Clear()
	assert.True(t, b.IsEmpty())
	assert.Zero(t, b.Value())
}

func TestBox_MoveFrom(t *testing.T) {
	var src, dst Box[int]

	src.SetValue(7)
	dst.MoveFrom(&src)

	require.True(t, dst.HasValue())
	assert.Equal(t, 7, dst.Value())
	assert.True(t, src.IsEmpty())
	assert.Zero(t, src.Value())
}

func TestBox_MoveFrom_Empty(t *testing.T) {
	var src, dst Box[int]

	dst.SetValue(9)
	dst.MoveFrom(&src)
	assert.True(t, dst.IsEmpty())
	assert.True(t, src.IsEmpty())
}

func TestBox_Swap(t *testing.T) {
	var a, b Box[int]
	errBoom := errors.New("boom")

	a.SetValue(1)
	b.SetError(errBoom)

	a.Swap(&b)
	assert.True(t, a.HasError())
	assert.ErrorIs(t, a.Err(), errBoom)
	assert.True(t, b.HasValue())
	assert.Equal(t, 1, b.Value())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "value", Value.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "panicked", Panicked.String())
	assert.Equal(t, "unknown", State(99).String())
}
