package future

import (
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/saltfishpr/lightfuture/box"
	"github.com/saltfishpr/lightfuture/spinlock"
)

// Future is the read side of a promise/future pair.
//
// The zero Future has no state: it is not linked, not ready and not broken,
// and its synchronizing accessors fail with ErrNoState.
//
// A Future must not be copied. Use MoveFrom or Swap to relocate one.
type Future[T any] struct {
	storage box.Box[T]
	promise atomic.Pointer[Promise[T]] // linked promise, nil if unlinked
	broken  atomic.Bool                // promise destroyed before completing

	consuming bool

	mu spinlock.SpinLock
}

// Valid reports whether the future refers to any state: linked, ready or
// broken. Not a SYNC POINT; may observe stale state. Callers needing
// certainty must make a synchronizing call first.
func (f *Future[T]) Valid() bool {
	return f.promise.Load() != nil || !f.storage.IsEmpty() || f.broken.Load()
}

// IsReady reports whether a result is present. Not a SYNC POINT.
func (f *Future[T]) IsReady() bool {
	return !f.storage.IsEmpty()
}

// Empty reports whether no result is present. Not a SYNC POINT.
func (f *Future[T]) Empty() bool {
	return f.storage.IsEmpty()
}

// HasValue reports whether the result is a value. Not a SYNC POINT.
func (f *Future[T]) HasValue() bool {
	return f.storage.HasValue()
}

// HasError reports whether the result is an error. Not a SYNC POINT.
func (f *Future[T]) HasError() bool {
	return f.storage.HasError()
}

// HasPanic reports whether the result is a transported panic. Not a SYNC
// POINT.
func (f *Future[T]) HasPanic() bool {
	return f.storage.HasPanic()
}

// checkValidityLocked reports why a synchronizing accessor must fail.
// Caller holds the future's lock.
func (f *Future[T]) checkValidityLocked() error {
	if f.broken.Load() {
		return errors.WithStack(ErrBrokenPromise)
	}
	if f.promise.Load() == nil && f.storage.IsEmpty() {
		return errors.WithStack(ErrNoState)
	}
	return nil
}

// Wait blocks until a result is present. SYNC POINT.
//
// The wait is a cooperative busy-yield: the locks are dropped and the
// goroutine yielded between rechecks. Wait fails with ErrBrokenPromise if
// the linked promise is destroyed before completing, and with ErrNoState if
// the future has no state.
func (f *Future[T]) Wait() error {
	if f.IsReady() {
		return nil
	}
	g := lockFuture(f)
	for {
		if err := f.checkValidityLocked(); err != nil {
			g.unlock()
			return err
		}
		if !f.storage.IsEmpty() {
			g.unlock()
			return nil
		}
		g.unlock()
		runtime.Gosched()
		g = lockFuture(f)
	}
}

// Get waits for and returns the result. SYNC POINT.
//
// A held error is returned as the error result; a transported panic is
// re-panicked with the stored payload. Get fails with ErrBrokenPromise or
// ErrNoState under the same conditions as Wait. On a consuming future a
// successful Get clears the state and later synchronizing accessors fail
// with ErrNoState; otherwise Get may be repeated.
func (f *Future[T]) Get() (T, error) {
	var zero T
	if err := f.Wait(); err != nil {
		return zero, err
	}
	g := lockFuture(f)
	defer g.unlock()

	switch {
	case f.storage.HasValue():
		v := f.storage.Value()
		f.consumeLocked()
		return v, nil
	case f.storage.HasError():
		err := f.storage.Err()
		f.consumeLocked()
		return zero, err
	case f.storage.HasPanic():
		rec := f.storage.Panic()
		f.consumeLocked()
		panic(rec)
	}
	// Result consumed between Wait and relock; single-consumer contract
	// violated, report the state as gone.
	return zero, errors.WithStack(ErrNoState)
}

// GetOr returns the held value if one is present, else fallback. SYNC
// POINT, but does not wait and never fails.
func (f *Future[T]) GetOr(fallback T) T {
	g := lockFuture(f)
	defer g.unlock()
	if f.storage.HasValue() {
		return f.storage.Value()
	}
	return fallback
}

// GetAnd returns v if a value is held, else the zero value. SYNC POINT,
// but does not wait and never fails.
func (f *Future[T]) GetAnd(v T) T {
	g := lockFuture(f)
	defer g.unlock()
	if f.storage.HasValue() {
		return v
	}
	var zero T
	return zero
}

// GetError waits for the result and returns the held error, or nil if the
// result is not an error. SYNC POINT. err reports ErrBrokenPromise and
// ErrNoState as Wait does.
func (f *Future[T]) GetError() (held error, err error) {
	if err := f.Wait(); err != nil {
		return nil, err
	}
	g := lockFuture(f)
	defer g.unlock()
	if f.storage.HasError() {
		held := f.storage.Err()
		f.consumeLocked()
		return held, nil
	}
	return nil, nil
}

// GetErrorOr returns the held error if one is present, else fallback.
// SYNC POINT, but does not wait and never fails.
func (f *Future[T]) GetErrorOr(fallback error) error {
	g := lockFuture(f)
	defer g.unlock()
	if f.storage.HasError() {
		return f.storage.Err()
	}
	return fallback
}

// GetErrorAnd returns e if an error is held, else nil. SYNC POINT, but
// does not wait and never fails.
func (f *Future[T]) GetErrorAnd(e error) error {
	g := lockFuture(f)
	defer g.unlock()
	if f.storage.HasError() {
		return e
	}
	return nil
}

// GetPanic waits for the result and returns the transported panic payload,
// or nil if the result is not a panic. SYNC POINT. Unlike Get it does not
// re-panic. err reports ErrBrokenPromise and ErrNoState as Wait does.
func (f *Future[T]) GetPanic() (any, error) {
	if err := f.Wait(); err != nil {
		return nil, err
	}
	g := lockFuture(f)
	defer g.unlock()
	if f.storage.HasPanic() {
		rec := f.storage.Panic()
		f.consumeLocked()
		return rec, nil
	}
	return nil, nil
}

// GetPanicOr returns the transported panic payload if one is present, else
// fallback. SYNC POINT, but does not wait and never fails.
func (f *Future[T]) GetPanicOr(fallback any) any {
	g := lockFuture(f)
	defer g.unlock()
	if f.storage.HasPanic() {
		return f.storage.Panic()
	}
	return fallback
}

// GetPanicAnd returns v if a transported panic is held, else nil. SYNC
// POINT, but does not wait and never fails.
func (f *Future[T]) GetPanicAnd(v any) any {
	g := lockFuture(f)
	defer g.unlock()
	if f.storage.HasPanic() {
		return v
	}
	return nil
}

// Share transfers the future's state into a SharedFuture for multi-reader
// fan-out. SYNC POINT. The future ends without state; a linked promise is
// repointed to the shared inner future. Share fails with ErrBrokenPromise
// or ErrNoState under the same conditions as Get.
func (f *Future[T]) Share() (*SharedFuture[T], error) {
	g := lockFuture(f)
	err := f.checkValidityLocked()
	g.unlock()
	if err != nil {
		return nil, err
	}
	inner := &Future[T]{}
	inner.moveFrom(f)
	// Shared readers must never consume the result out from under each
	// other.
	inner.consuming = false
	return &SharedFuture[T]{inner: inner}, nil
}

// Swap exchanges the state of two futures, repointing each side's linked
// promise. SYNC POINT. Swaps must be externally sequenced with other moves
// and swaps of the same objects.
func (f *Future[T]) Swap(o *Future[T]) {
	if f == o {
		return
	}
	g1 := lockFuture(f)
	g2 := lockFuture(o)

	f.storage.Swap(&o.storage)
	fb, ob := f.broken.Load(), o.broken.Load()
	f.broken.Store(ob)
	o.broken.Store(fb)
	fp, op := f.promise.Load(), o.promise.Load()
	f.promise.Store(op)
	o.promise.Store(fp)
	f.consuming, o.consuming = o.consuming, f.consuming
	if g1.p != nil {
		g1.p.future.Store(o)
	}
	if g2.p != nil {
		g2.p.future.Store(f)
	}

	g2.unlock()
	g1.unlock()
}

// MoveFrom transfers o's state into f, repointing o's linked promise to f.
// o ends without state. f's previous state is destroyed first. SYNC POINT.
// Between the destroy and the transfer f is observable in a destroyed
// state, so moves must be externally sequenced against every other use of f.
func (f *Future[T]) MoveFrom(o *Future[T]) {
	if f == o {
		return
	}
	f.Destroy()
	f.moveFrom(o)
}

// moveFrom transfers o's state into f, which must be fresh and unpublished.
func (f *Future[T]) moveFrom(o *Future[T]) {
	g := lockFuture(o)
	f.storage.MoveFrom(&o.storage)
	f.broken.Store(o.broken.Load())
	f.consuming = o.consuming
	o.broken.Store(false)
	if g.p != nil {
		f.promise.Store(g.p)
		o.promise.Store(nil)
		g.p.future.Store(f)
	}
	g.unlock()
}

// Destroy releases the future. SYNC POINT. A linked promise becomes
// detached with its storage cleared, so its later Set calls fail with
// ErrAlreadySet instead of writing into a dead future. Destroy is
// idempotent and never fails.
func (f *Future[T]) Destroy() {
	if !f.Valid() {
		return
	}
	g := lockFuture(f)
	if g.p != nil {
		g.p.storage.Clear()
		g.p.detached.Store(true)
		g.p.future.Store(nil)
		f.promise.Store(nil)
	}
	f.storage.Clear()
	f.broken.Store(false)
	g.unlock()
}

// consumeLocked clears the state after a successful retrieval on a
// consuming future. Caller holds the future's lock.
func (f *Future[T]) consumeLocked() {
	if !f.consuming {
		return
	}
	f.storage.Clear()
	f.broken.Store(false)
}
