// Package spinlock provides a minimal test-and-set mutual exclusion lock.
//
// Unlike sync.Mutex, a SpinLock never parks the calling goroutine: Lock
// busy-yields with runtime.Gosched until the lock is acquired. It performs
// no ownership tracking, so it can be released by a goroutine other than
// the one that acquired it, and a double unlock is not detected.
package spinlock

import (
	"runtime"

	"go.uber.org/atomic"
)

// SpinLock is a busy-waiting exclusive lock. The zero value is unlocked.
//
// A SpinLock must not be copied after first use.
type SpinLock struct {
	noCopy noCopy

	locked atomic.Bool
}

// Lock acquires the lock, spinning until it is available.
func (l *SpinLock) Lock() {
	for !l.locked.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

// TryLock attempts to acquire the lock without spinning.
// It reports whether the lock was acquired.
func (l *SpinLock) TryLock() bool {
	return l.locked.CompareAndSwap(false, true)
}

// Unlock releases the lock. It does not check that the caller holds it.
func (l *SpinLock) Unlock() {
	l.locked.Store(false)
}

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
