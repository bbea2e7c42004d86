package future

import "github.com/pkg/errors"

// SharedFuture wraps a heap-held future behind shared ownership for
// multi-reader fan-out. Every method forwards to the underlying future
// after a validity check; a nil or empty wrapper fails with ErrNoState.
// Retrieval never consumes, so any number of goroutines may Get the same
// result. Copying the wrapper shares the underlying future.
type SharedFuture[T any] struct {
	inner *Future[T]
}

// check returns the underlying future, or ErrNoState if there is none.
func (s *SharedFuture[T]) check() (*Future[T], error) {
	if s == nil || s.inner == nil {
		return nil, errors.WithStack(ErrNoState)
	}
	return s.inner, nil
}

// Valid forwards to Future.Valid. Not a SYNC POINT. A wrapper without an
// underlying future reports false.
func (s *SharedFuture[T]) Valid() bool {
	f, err := s.check()
	if err != nil {
		return false
	}
	return f.Valid()
}

// IsReady forwards to Future.IsReady. Not a SYNC POINT.
func (s *SharedFuture[T]) IsReady() bool {
	f, err := s.check()
	if err != nil {
		return false
	}
	return f.IsReady()
}

// Empty forwards to Future.Empty. Not a SYNC POINT. A wrapper without an
// underlying future reports true.
func (s *SharedFuture[T]) Empty() bool {
	f, err := s.check()
	if err != nil {
		return true
	}
	return f.Empty()
}

// HasValue forwards to Future.HasValue. Not a SYNC POINT.
func (s *SharedFuture[T]) HasValue() bool {
	f, err := s.check()
	if err != nil {
		return false
	}
	return f.HasValue()
}

// HasError forwards to Future.HasError. Not a SYNC POINT.
func (s *SharedFuture[T]) HasError() bool {
	f, err := s.check()
	if err != nil {
		return false
	}
	return f.HasError()
}

// HasPanic forwards to Future.HasPanic. Not a SYNC POINT.
func (s *SharedFuture[T]) HasPanic() bool {
	f, err := s.check()
	if err != nil {
		return false
	}
	return f.HasPanic()
}

// Wait forwards to Future.Wait. SYNC POINT.
func (s *SharedFuture[T]) Wait() error {
	f, err := s.check()
	if err != nil {
		return err
	}
	return f.Wait()
}

// Get forwards to Future.Get. SYNC POINT. Never consumes.
func (s *SharedFuture[T]) Get() (T, error) {
	f, err := s.check()
	if err != nil {
		var zero T
		return zero, err
	}
	return f.Get()
}

// GetOr forwards to Future.GetOr. A wrapper without an underlying future
// returns fallback.
func (s *SharedFuture[T]) GetOr(fallback T) T {
	f, err := s.check()
	if err != nil {
		return fallback
	}
	return f.GetOr(fallback)
}

// GetAnd forwards to Future.GetAnd.
func (s *SharedFuture[T]) GetAnd(v T) T {
	f, err := s.check()
	if err != nil {
		var zero T
		return zero
	}
	return f.GetAnd(v)
}

// GetError forwards to Future.GetError. SYNC POINT.
func (s *SharedFuture[T]) GetError() (held error, err error) {
	f, err := s.check()
	if err != nil {
		return nil, err
	}
	return f.GetError()
}

// GetErrorOr forwards to Future.GetErrorOr. A wrapper without an underlying
// future returns fallback.
func (s *SharedFuture[T]) GetErrorOr(fallback error) error {
	f, err := s.check()
	if err != nil {
		return fallback
	}
	return f.GetErrorOr(fallback)
}

// GetErrorAnd forwards to Future.GetErrorAnd.
func (s *SharedFuture[T]) GetErrorAnd(e error) error {
	f, err := s.check()
	if err != nil {
		return nil
	}
	return f.GetErrorAnd(e)
}

// GetPanic forwards to Future.GetPanic. SYNC POINT.
func (s *SharedFuture[T]) GetPanic() (any, error) {
	f, err := s.check()
	if err != nil {
		return nil, err
	}
	return f.GetPanic()
}

// GetPanicOr forwards to Future.GetPanicOr. A wrapper without an underlying
// future returns fallback.
func (s *SharedFuture[T]) GetPanicOr(fallback any) any {
	f, err := s.check()
	if err != nil {
		return fallback
	}
	return f.GetPanicOr(fallback)
}

// GetPanicAnd forwards to Future.GetPanicAnd.
func (s *SharedFuture[T]) GetPanicAnd(v any) any {
	f, err := s.check()
	if err != nil {
		return nil
	}
	return f.GetPanicAnd(v)
}
