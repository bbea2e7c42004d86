package future

import "github.com/saltfishpr/lightfuture/routine"

// Complete runs fn and completes p with its outcome: the returned value or
// error goes to SetValue or SetError, and a panic inside fn is captured as a
// *routine.Recovered and delivered through SetPanic. The returned error is
// the completion's own failure (ErrAlreadySet), not fn's result.
func Complete[T any](p *Promise[T], fn func() (T, error)) error {
	var completeErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				completeErr = p.SetPanic(routine.NewRecovered(0, r))
			}
		}()
		v, err := fn()
		if err != nil {
			completeErr = p.SetError(err)
			return
		}
		completeErr = p.SetValue(v)
	}()
	return completeErr
}

// Go runs fn on a new goroutine and completes p with its outcome, as
// Complete does. A completion conflict with a concurrent Set call is
// dropped; use Complete directly when that failure matters.
func Go[T any](p *Promise[T], fn func() (T, error)) {
	routine.GoSafe(func() {
		_ = Complete(p, fn)
	})
}
