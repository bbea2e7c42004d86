// Package box provides a generic tri-state result container.
//
// A Box holds exactly one of: nothing, a value, an error, or a captured
// panic payload. It is the inline storage slot used by the promise/future
// pair in the future package: small, heap-allocation free, and movable.
//
// A Box performs no locking. The owner guards all mutation and all payload
// reads with its own lock; only the state tag may be read without the lock,
// and such reads may observe a stale tag.
package box

import "go.uber.org/atomic"

// State is the tag describing what a Box currently holds.
type State uint32

const (
	Empty State = iota
	Value
	Error
	Panicked
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Value:
		return "value"
	case Error:
		return "error"
	case Panicked:
		return "panicked"
	}
	return "unknown"
}

// Box is a tri-state inline result slot.
//
// The tag is a relaxed atomic so that lock-free tag queries are data-race
// free; they still carry no ordering guarantee for the payload fields.
type Box[T any] struct {
	state atomic.Uint32

	value T
	err   error
	rec   any
}

// State returns the current tag. Relaxed read, may be stale.
func (b *Box[T]) State() State {
	return State(b.state.Load())
}

// IsEmpty reports whether the box holds nothing. Relaxed read.
func (b *Box[T]) IsEmpty() bool { return b.State() == Empty }

// HasValue reports whether the box holds a value. Relaxed read.
func (b *Box[T]) HasValue() bool { return b.State() == Value }

// HasError reports whether the box holds an error. Relaxed read.
func (b *Box[T]) HasError() bool { return b.State() == Error }

// HasPanic reports whether the box holds a captured panic. Relaxed read.
func (b *Box[T]) HasPanic() bool { return b.State() == Panicked }

// Value returns the held value, or the zero value if none is held.
func (b *Box[T]) Value() T {
	return b.value
}

// Err returns the held error, or nil if none is held.
func (b *Box[T]) Err() error {
	return b.err
}

// Panic returns the captured panic payload, or nil if none is held.
func (b *Box[T]) Panic() any {
	return b.rec
}

// SetValue stores v, replacing any previous contents.
func (b *Box[T]) SetValue(v T) {
	b.clearPayload()
	b.value = v
	b.state.Store(uint32(Value))
}

// SetError stores err, replacing any previous contents.
func (b *Box[T]) SetError(err error) {
	b.clearPayload()
	b.err = err
	b.state.Store(uint32(Error))
}

// SetPanic stores a captured panic payload, replacing any previous contents.
func (b *Box[T]) SetPanic(rec any) {
	b.clearPayload()
	b.rec = rec
	b.state.Store(uint32(Panicked))
}

// Clear empties the box, dropping any contents.
func (b *Box[T]) Clear() {
	b.clearPayload()
	b.state.Store(uint32(Empty))
}

// MoveFrom transfers o's contents into b. o ends empty.
func (b *Box[T]) MoveFrom(o *Box[T]) {
	b.value = o.value
	b.err = o.err
	b.rec = o.rec
	b.state.Store(o.state.Load())
	o.Clear()
}

// Swap exchanges the contents of b and o.
func (b *Box[T]) Swap(o *Box[T]) {
	b.value, o.value = o.value, b.value
	b.err, o.err = o.err, b.err
	b.rec, o.rec = o.rec, b.rec
	bs, os := b.state.Load(), o.state.Load()
	b.state.Store(os)
	o.state.Store(bs)
}

func (b *Box[T]) clearPayload() {
	var zero T
	b.value = zero
	b.err = nil
	b.rec = nil
}
