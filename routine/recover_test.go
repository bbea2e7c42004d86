package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSafe_NoPanic(t *testing.T) {
	called := false
	RunSafe(func() {
		called = true
	}, func(r interface{}) {
		t.Fatal("cleanup should not run")
	})
	assert.True(t, called)
}

func TestRunSafe_Panic(t *testing.T) {
	var got interface{}
	RunSafe(func() {
		panic("boom")
	}, func(r interface{}) {
		got = r
	})
	assert.Equal(t, "boom", got)
}

func TestNewRecovered(t *testing.T) {
	var rec *Recovered
	func() {
		defer func() {
			if r := recover(); r != nil {
				rec = NewRecovered(0, r)
			}
		}()
		panic("kaboom")
	}()

	require.NotNil(t, rec)
	assert.Equal(t, "kaboom", rec.Value)
	assert.NotEmpty(t, rec.Callers)
	assert.Equal(t, "panic: kaboom", rec.String())
}

func TestRecovered_AsError(t *testing.T) {
	var nilRec *Recovered
	assert.NoError(t, nilRec.AsError())

	rec := NewRecovered(0, "oops")
	err := rec.AsError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic: oops")

	var rerr *RecoveredError
	require.ErrorAs(t, err, &rerr)
	assert.NotEmpty(t, rerr.StackTrace())
}
