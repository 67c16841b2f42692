// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
)

// Outcome is the settlement of a future: Left carries the rejection,
// Right the resolved value.
type Outcome = kont.Either[error, any]

// Serial identifies a future. Serials grow monotonically across all loops,
// so a lower serial was created earlier.
type Serial = uint32

// futureSerials hands out future serials.
var futureSerials atomix.Uint32

// Future is an [Awaitable] bound to a [Loop].
// It settles at most once. Continuations registered with Then run on a
// later turn of the loop, in registration order, never inside Then itself.
// A resolved value is never an awaitable: resolving with one adopts its
// outcome instead.
type Future struct {
	loop   *Loop
	serial Serial

	// claims counts Resolve/Reject calls; only the first one decides.
	claims atomix.Uint32

	mu      sync.Mutex
	settled bool
	outcome Outcome
	waiting []continuation
}

// continuation is one Then registration.
// next settles with the same outcome after the callback ran.
type continuation struct {
	onResolved func(any)
	onRejected func(error)
	next       *Future
}

// Serial returns the identifier assigned to this future at creation.
func (f *Future) Serial() Serial {
	return f.serial
}

// Resolve settles the future with v. If v is an Awaitable the future
// follows it and settles with its outcome once it settles; resolving a
// future with itself rejects with ErrSelfResolution.
// Returns false if the future was already resolved or rejected.
func (f *Future) Resolve(v any) bool {
	if f.claims.Add(1) != 1 {
		return false
	}
	f.follow(v)
	return true
}

// Reject settles the future with err; a nil err becomes ErrNilRejection.
// Returns false if the future was already resolved or rejected.
func (f *Future) Reject(err error) bool {
	if f.claims.Add(1) != 1 {
		return false
	}
	f.commit(rejection(err))
	return true
}

// Result returns the outcome and true once settled, or false while pending
// or while following another awaitable.
func (f *Future) Result() (Outcome, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcome, f.settled
}

// Then registers continuations and returns a future that settles with the
// same outcome once the matching continuation ran. Either callback may be nil.
func (f *Future) Then(onResolved func(any), onRejected func(error)) Awaitable {
	c := continuation{onResolved: onResolved, onRejected: onRejected, next: f.loop.NewFuture()}
	f.mu.Lock()
	if !f.settled {
		f.waiting = append(f.waiting, c)
		f.mu.Unlock()
		return c.next
	}
	outcome := f.outcome
	f.mu.Unlock()
	f.schedule(c, outcome)
	return c.next
}

// follow commits v, or adopts the outcome of v when it is awaitable.
func (f *Future) follow(v any) {
	inner, ok := asAwaitable(v)
	if !ok {
		f.commit(kont.Right[error, any](v))
		return
	}
	if inner == Awaitable(f) {
		f.commit(kont.Left[error, any](ErrSelfResolution))
		return
	}
	inner.Then(f.follow, func(err error) { f.commit(rejection(err)) })
}

// commit records outcome and schedules the waiting continuations.
// Only the first commit takes effect.
func (f *Future) commit(outcome Outcome) {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return
	}
	f.outcome = outcome
	f.settled = true
	waiting := f.waiting
	f.waiting = nil
	f.mu.Unlock()
	for _, c := range waiting {
		f.schedule(c, outcome)
	}
}

func (f *Future) schedule(c continuation, outcome Outcome) {
	f.loop.Post(func() {
		if err, ok := outcome.GetLeft(); ok {
			if c.onRejected != nil {
				c.onRejected(err)
			}
		} else {
			v, _ := outcome.GetRight()
			if c.onResolved != nil {
				c.onResolved(v)
			}
		}
		c.next.claims.Add(1)
		c.next.commit(outcome)
	})
}

func rejection(err error) Outcome {
	if err == nil {
		err = ErrNilRejection
	}
	return kont.Left[error, any](err)
}
