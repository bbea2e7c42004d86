package future

// MakeReadyFuture returns an unlinked future that already holds v.
func MakeReadyFuture[T any](v T) *Future[T] {
	f := &Future[T]{}
	f.storage.SetValue(v)
	return f
}

// MakeErroredFuture returns an unlinked future that already holds err.
func MakeErroredFuture[T any](err error) *Future[T] {
	f := &Future[T]{}
	f.storage.SetError(err)
	return f
}

// MakeExceptionalFuture returns an unlinked future that already holds a
// transported panic payload, conventionally a *routine.Recovered.
func MakeExceptionalFuture[T any](rec any) *Future[T] {
	f := &Future[T]{}
	f.storage.SetPanic(rec)
	return f
}
