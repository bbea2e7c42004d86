package future

import "errors"

var (
	// ErrAlreadyRetrieved is returned by Promise.Future when a future was
	// already obtained from the promise.
	ErrAlreadyRetrieved = errors.New("future already retrieved")

	// ErrAlreadySet is returned by the Set family when the promise was
	// already completed or detached.
	ErrAlreadySet = errors.New("promise already satisfied")

	// ErrBrokenPromise is returned by synchronizing future accessors after
	// the linked promise was destroyed without supplying a result.
	ErrBrokenPromise = errors.New("broken promise")

	// ErrNoState is returned by synchronizing future accessors when the
	// future was never linked, never completed and not broken.
	ErrNoState = errors.New("future has no state")
)
