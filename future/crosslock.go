package future

import "runtime"

// crossLock holds the lock of one side of a promise/future pair and, if that
// side currently has a live peer, the peer's lock as well.
//
// Acquisition locks the own side first, then try-locks the peer. On failure
// the own lock is released and the whole acquisition restarts, because the
// peer pointer may have been repointed in the meantime. Neither side ever
// blocks on the second lock while holding the first, so two concurrent
// acquisitions cannot form a cycle. Acquisition cannot fail; it spins until
// both locks are held or there is provably no peer.
//
// f is non-nil iff a future is locked, p is non-nil iff a promise is locked.
type crossLock[T any] struct {
	p *Promise[T]
	f *Future[T]
}

func lockPromise[T any](p *Promise[T]) crossLock[T] {
	for {
		p.mu.Lock()
		f := p.future.Load()
		if f == nil {
			return crossLock[T]{p: p}
		}
		if f.mu.TryLock() {
			return crossLock[T]{p: p, f: f}
		}
		p.mu.Unlock()
		runtime.Gosched()
	}
}

func lockFuture[T any](f *Future[T]) crossLock[T] {
	for {
		f.mu.Lock()
		p := f.promise.Load()
		if p == nil {
			return crossLock[T]{f: f}
		}
		if p.mu.TryLock() {
			return crossLock[T]{p: p, f: f}
		}
		f.mu.Unlock()
		runtime.Gosched()
	}
}

// unlock releases whichever locks are held. Safe to call more than once.
func (g *crossLock[T]) unlock() {
	if g.p != nil {
		g.p.mu.Unlock()
		g.p = nil
	}
	if g.f != nil {
		g.f.mu.Unlock()
		g.f = nil
	}
}
