package future

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromise_Future_AlreadyRetrieved(t *testing.T) {
	p := NewPromise[int]()

	f, err := p.Future()
	require.NoError(t, err)
	require.NotNil(t, f)

	_, err = p.Future()
	assert.ErrorIs(t, err, ErrAlreadyRetrieved)
}

func TestPromise_Future_AfterDetach(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)
	require.NoError(t, p.SetValue(1))

	// Completion through the link detached the promise.
	_, err = p.Future()
	assert.ErrorIs(t, err, ErrAlreadyRetrieved)

	v, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestPromise_Set_AlreadySet(t *testing.T) {
	t.Run("before future", func(t *testing.T) {
		p := NewPromise[int]()
		require.NoError(t, p.SetValue(1))
		assert.ErrorIs(t, p.SetValue(2), ErrAlreadySet)
	})

	t.Run("after future linked", func(t *testing.T) {
		p := NewPromise[int]()
		_, err := p.Future()
		require.NoError(t, err)
		require.NoError(t, p.SetValue(1))
		assert.ErrorIs(t, p.SetValue(2), ErrAlreadySet)
	})

	t.Run("mixed channels", func(t *testing.T) {
		p := NewPromise[int]()
		require.NoError(t, p.SetError(errors.New("boom")))
		assert.ErrorIs(t, p.SetValue(1), ErrAlreadySet)
		assert.ErrorIs(t, p.SetPanic("bad"), ErrAlreadySet)
	})

	t.Run("after destroy", func(t *testing.T) {
		p := NewPromise[int]()
		p.Destroy()
		assert.ErrorIs(t, p.SetValue(1), ErrAlreadySet)
	})
}

func TestPromise_SetBeforeFuture(t *testing.T) {
	p := NewPromise[int]()
	require.NoError(t, p.SetValue(42))
	assert.False(t, p.HasFuture())

	f, err := p.Future()
	require.NoError(t, err)

	// The future took the stored result; it is complete and self-sufficient.
	assert.True(t, f.IsReady())
	assert.True(t, f.Valid())
	v, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	assert.True(t, p.HasFuture())
}

func TestPromise_HasFuture(t *testing.T) {
	p := NewPromise[int]()
	assert.False(t, p.HasFuture())

	_, err := p.Future()
	require.NoError(t, err)
	assert.True(t, p.HasFuture())

	require.NoError(t, p.SetValue(1))
	assert.True(t, p.HasFuture())
}

func TestPromise_SetError(t *testing.T) {
	p := NewPromise[string]()
	f, err := p.Future()
	require.NoError(t, err)

	errBoom := errors.New("boom")
	require.NoError(t, p.SetError(errBoom))

	require.NoError(t, f.Wait())
	assert.True(t, f.HasError())
	_, err = f.Get()
	assert.ErrorIs(t, err, errBoom)
}

func TestPromise_SetPanic(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)

	require.NoError(t, p.SetPanic("bad"))

	assert.True(t, f.HasPanic())
	rec, err := f.GetPanic()
	require.NoError(t, err)
	assert.Equal(t, "bad", rec)
}

func TestPromise_EmplaceValue(t *testing.T) {
	p := NewPromise[[]int]()
	f, err := p.Future()
	require.NoError(t, err)

	require.NoError(t, p.EmplaceValue(func() []int {
		return []int{1, 2, 3}
	}))
	assert.ErrorIs(t, p.EmplaceValue(func() []int { return nil }), ErrAlreadySet)

	v, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v)
}

func TestPromise_Destroy_BreaksFuture(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)

	p.Destroy()

	assert.True(t, f.Valid())
	assert.ErrorIs(t, f.Wait(), ErrBrokenPromise)
	_, err = f.Get()
	assert.ErrorIs(t, err, ErrBrokenPromise)
}

func TestPromise_Destroy_ReadyFutureStaysReady(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)
	require.NoError(t, p.SetValue(7))

	p.Destroy()

	v, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestPromise_Destroy_DropsPendingResult(t *testing.T) {
	p := NewPromise[int]()
	require.NoError(t, p.SetValue(1))

	p.Destroy()

	_, err := p.Future()
	assert.ErrorIs(t, err, ErrAlreadyRetrieved)
}

func TestPromise_Destroy_Idempotent(t *testing.T) {
	p := NewPromise[int]()
	f, err := p.Future()
	require.NoError(t, err)

	p.Destroy()
	p.Destroy()

	assert.ErrorIs(t, f.Wait(), ErrBrokenPromise)
}

func TestPromise_MoveFrom_RepointsFuture(t *testing.T) {
	p1 := NewPromise[int]()
	f, err := p1.Future()
	require.NoError(t, err)

	p2 := NewPromise[int]()
	p2.MoveFrom(p1)

	// The linked future now belongs to p2.
	require.NoError(t, p2.SetValue(42))
	v, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// The moved-from promise behaves as a fresh unlinked promise.
	assert.False(t, p1.HasFuture())
	require.NoError(t, p1.SetValue(99))
}

func TestPromise_MoveFrom_PendingResult(t *testing.T) {
	p1 := NewPromise[int]()
	require.NoError(t, p1.SetValue(5))

	p2 := NewPromise[int]()
	p2.MoveFrom(p1)

	f, err := p2.Future()
	require.NoError(t, err)
	v, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestPromise_Swap_ExchangesFutures(t *testing.T) {
	p1 := NewPromise[int]()
	f1, err := p1.Future()
	require.NoError(t, err)
	p2 := NewPromise[int]()
	f2, err := p2.Future()
	require.NoError(t, err)

	p1.Swap(p2)

	// p1 now completes f2 and p2 completes f1.
	require.NoError(t, p1.SetValue(1))
	require.NoError(t, p2.SetValue(2))

	v2, err := f2.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v2)
	v1, err := f1.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v1)
}

func TestPromise_Swap_LinkedWithUnlinked(t *testing.T) {
	p1 := NewPromise[int]()
	f1, err := p1.Future()
	require.NoError(t, err)
	p2 := NewPromise[int]()

	p1.Swap(p2)

	require.NoError(t, p2.SetValue(3))
	v, err := f1.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	assert.False(t, p1.HasFuture())
}
