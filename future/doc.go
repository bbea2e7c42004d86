// Package future provides a non-allocating, inline promise/future pair.
//
// A Promise is the push end and a Future the pull end of a single-producer,
// single-consumer result channel. Neither side allocates for its own state
// beyond the objects themselves, and both are small enough to embed inline
// in larger structures. The pair locate each other through mutual
// back-pointers guarded by one spin lock per object; the two locks are only
// ever taken together through a try-lock/retry protocol, so no global lock
// order is needed and no deadlock is possible.
//
// A result is one of three kinds: a value, an error, or a transported panic
// (captured as *routine.Recovered on the producer side). A Promise is
// completed at most once; completing it again fails with ErrAlreadySet.
//
// # Memory visibility
//
// Only operations documented as SYNC POINTs synchronize memory between the
// producer and consumer goroutines: NewPromise, Promise.Future, the Set and
// EmplaceValue family, Wait, the Get family, Share, Swap, MoveFrom and
// Destroy. Status queries (Valid, IsReady, Empty, HasValue, HasError,
// HasPanic, HasFuture) are relaxed reads that may observe stale state; they
// must never be the sole synchronization mechanism across goroutines.
// Synchronizing by sleeping and then trusting IsReady is a race.
//
// Each pair assumes exactly two participating goroutines at a time. The
// objects may migrate between goroutines, but MoveFrom, Swap and Destroy
// must be externally sequenced by the caller.
//
// Waiting is a cooperative busy-yield, not an OS-level block: Wait releases
// the locks, yields the goroutine and rechecks. There are no timed waits,
// no continuations and no cancellation.
package future
