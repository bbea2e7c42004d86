package future

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/saltfishpr/lightfuture/box"
	"github.com/saltfishpr/lightfuture/spinlock"
)

// Promise is the write-once producer side of a promise/future pair.
//
// A result set before the future is obtained is stored inline in the promise
// and handed over when Future is called. Once a future is linked, results are
// written directly into the future's storage and the link is severed.
//
// A Promise must not be copied. Use MoveFrom or Swap to relocate one.
type Promise[T any] struct {
	storage  box.Box[T]
	future   atomic.Pointer[Future[T]] // linked future, nil if unlinked
	detached atomic.Bool               // result handed off, or destroyed

	consuming bool

	mu spinlock.SpinLock
}

type promiseOptions struct {
	consuming bool
}

type Option func(*promiseOptions)

// WithConsuming makes the future obtained from the promise single-shot:
// its first successful Get clears the state, and later synchronizing
// accessors fail with ErrNoState. The default is non-consuming, where Get
// may be repeated.
func WithConsuming() Option {
	return func(opts *promiseOptions) {
		opts.consuming = true
	}
}

// NewPromise creates an empty, unlinked promise.
func NewPromise[T any](options ...Option) *Promise[T] {
	opts := promiseOptions{}
	for _, option := range options {
		option(&opts)
	}
	return &Promise[T]{consuming: opts.consuming}
}

// Future creates the future associated with this promise. SYNC POINT.
//
// It may be called at most once; a second call, or a call on a detached or
// destroyed promise, fails with ErrAlreadyRetrieved.
//
// If the promise was already completed, the returned future is immediately
// ready and self-sufficient; the two are not linked and the promise becomes
// detached. Otherwise the future is linked to the promise and later Set
// calls write straight into it.
func (p *Promise[T]) Future() (*Future[T], error) {
	g := lockPromise(p)
	defer g.unlock()

	if g.f != nil || p.detached.Load() {
		return nil, errors.WithStack(ErrAlreadyRetrieved)
	}
	f := &Future[T]{consuming: p.consuming}
	f.storage.MoveFrom(&p.storage)
	if !f.storage.IsEmpty() {
		p.detached.Store(true)
		return f, nil
	}
	f.promise.Store(p)
	p.future.Store(f)
	return f, nil
}

// HasFuture reports whether a future is linked or was already handed the
// result. Not a SYNC POINT; may observe stale state.
func (p *Promise[T]) HasFuture() bool {
	return p.future.Load() != nil || p.detached.Load()
}

// SetValue completes the promise with a value. SYNC POINT.
// Fails with ErrAlreadySet if the promise was already completed or destroyed.
func (p *Promise[T]) SetValue(v T) error {
	return p.complete(func(b *box.Box[T]) { b.SetValue(v) })
}

// SetError completes the promise with an error. SYNC POINT.
// Fails with ErrAlreadySet if the promise was already completed or destroyed.
func (p *Promise[T]) SetError(err error) error {
	return p.complete(func(b *box.Box[T]) { b.SetError(err) })
}

// SetPanic completes the promise with a transported panic payload,
// conventionally a *routine.Recovered. SYNC POINT.
// Fails with ErrAlreadySet if the promise was already completed or destroyed.
func (p *Promise[T]) SetPanic(rec any) error {
	return p.complete(func(b *box.Box[T]) { b.SetPanic(rec) })
}

// EmplaceValue completes the promise with construct's result, building the
// value directly into the destination slot. construct runs with the pair
// locked and must not touch the promise or its future. SYNC POINT.
// Fails with ErrAlreadySet if the promise was already completed or destroyed.
func (p *Promise[T]) EmplaceValue(construct func() T) error {
	return p.complete(func(b *box.Box[T]) { b.SetValue(construct()) })
}

// complete writes a result through the link if a future is attached,
// severing the link, or into the promise's own storage otherwise.
func (p *Promise[T]) complete(fill func(*box.Box[T])) error {
	g := lockPromise(p)
	defer g.unlock()

	if p.detached.Load() {
		return errors.WithStack(ErrAlreadySet)
	}
	if g.f != nil {
		if !g.f.storage.IsEmpty() {
			return errors.WithStack(ErrAlreadySet)
		}
		fill(&g.f.storage)
		g.f.promise.Store(nil)
		p.future.Store(nil)
		p.detached.Store(true)
		return nil
	}
	if !p.storage.IsEmpty() {
		return errors.WithStack(ErrAlreadySet)
	}
	fill(&p.storage)
	return nil
}

// Swap exchanges the state of two promises, repointing each side's linked
// future. SYNC POINT. Swaps must be externally sequenced with other moves
// and swaps of the same objects.
func (p *Promise[T]) Swap(o *Promise[T]) {
	if p == o {
		return
	}
	g1 := lockPromise(p)
	g2 := lockPromise(o)

	p.storage.Swap(&o.storage)
	pd, od := p.detached.Load(), o.detached.Load()
	p.detached.Store(od)
	o.detached.Store(pd)
	pf, of := p.future.Load(), o.future.Load()
	p.future.Store(of)
	o.future.Store(pf)
	p.consuming, o.consuming = o.consuming, p.consuming
	if g1.f != nil {
		g1.f.promise.Store(o)
	}
	if g2.f != nil {
		g2.f.promise.Store(p)
	}

	g2.unlock()
	g1.unlock()
}

// MoveFrom transfers o's state into p, repointing o's linked future to p.
// o ends empty and unlinked. p's previous state is destroyed first. SYNC
// POINT. Between the destroy and the transfer p is observable in a
// destroyed state, so moves must be externally sequenced against every
// other use of p.
func (p *Promise[T]) MoveFrom(o *Promise[T]) {
	if p == o {
		return
	}
	p.Destroy()
	p.detached.Store(false)

	g := lockPromise(o)
	p.storage.MoveFrom(&o.storage)
	p.detached.Store(o.detached.Load())
	p.consuming = o.consuming
	o.detached.Store(false)
	if g.f != nil {
		p.future.Store(g.f)
		o.future.Store(nil)
		g.f.promise.Store(p)
	}
	g.unlock()
}

// Destroy releases the promise. SYNC POINT. If a linked future is not yet
// ready it becomes broken and its subsequent synchronizing accessors fail
// with ErrBrokenPromise. Any result still held by the promise is dropped.
// Destroy is idempotent; a destroyed promise fails SetValue and friends
// with ErrAlreadySet and Future with ErrAlreadyRetrieved.
func (p *Promise[T]) Destroy() {
	if p.detached.Load() {
		return
	}
	g := lockPromise(p)
	if g.f != nil {
		if g.f.storage.IsEmpty() {
			g.f.broken.Store(true)
		}
		g.f.promise.Store(nil)
		p.future.Store(nil)
	}
	p.storage.Clear()
	p.detached.Store(true)
	g.unlock()
}
