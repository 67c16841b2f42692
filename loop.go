// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import (
	"context"
	"sync"

	"code.hybscloud.com/iox"
)

// Loop is a cooperative scheduler for future continuations.
//
// Tasks may be posted from any goroutine but run only on the goroutine that
// drives the loop through Step, Drain or Await. That goroutine is the single
// thread of control of the pipeline: dispatches and continuations never run
// in parallel.
type Loop struct {
	mu    sync.Mutex
	tasks []func()
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Post appends task to the loop. It runs on a later turn, in FIFO order.
func (l *Loop) Post(task func()) {
	if task == nil {
		return
	}
	l.mu.Lock()
	l.tasks = append(l.tasks, task)
	l.mu.Unlock()
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

// Step runs the oldest queued task.
// Non-blocking: returns iox.ErrWouldBlock if no task is queued.
func (l *Loop) Step() error {
	l.mu.Lock()
	if len(l.tasks) == 0 {
		l.mu.Unlock()
		return iox.ErrWouldBlock
	}
	task := l.tasks[0]
	l.tasks[0] = nil
	l.tasks = l.tasks[1:]
	l.mu.Unlock()
	task()
	return nil
}

// Drain runs tasks until the queue is empty, including tasks posted by
// the tasks it runs. Returns the number of tasks run.
func (l *Loop) Drain() int {
	n := 0
	for l.Step() == nil {
		n++
	}
	return n
}

// Await drives the loop until a settles, and returns its value or error.
// Settlement from other goroutines is waited for with adaptive backoff
// (iox.Backoff). Returns ctx.Err() if ctx ends first; an awaitable that
// never settles keeps the caller waiting until then. Only the first
// callback of a is observed.
// Futures of another loop settle only while that loop is driven.
func (l *Loop) Await(ctx context.Context, a Awaitable) (any, error) {
	var (
		value any
		err   error
	)
	var once sync.Once
	done := make(chan struct{})
	a.Then(
		func(v any) {
			once.Do(func() {
				value = v
				close(done)
			})
		},
		func(e error) {
			once.Do(func() {
				err = e
				close(done)
			})
		},
	)

	var bo iox.Backoff
	for {
		select {
		case <-done:
			return value, err
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if l.Step() == nil {
			bo.Reset()
			continue
		}
		bo.Wait()
	}
}

// NewFuture creates a pending future whose continuations run on l.
func (l *Loop) NewFuture() *Future {
	return &Future{loop: l, serial: futureSerials.Add(1)}
}

// Resolved returns a future already resolved with v.
func (l *Loop) Resolved(v any) *Future {
	f := l.NewFuture()
	f.Resolve(v)
	return f
}

// Rejected returns a future already rejected with err.
func (l *Loop) Rejected(err error) *Future {
	f := l.NewFuture()
	f.Reject(err)
	return f
}

// Go runs fn on a new goroutine and settles the returned future with its
// result: a non-nil error rejects, otherwise the value resolves.
func (l *Loop) Go(fn func() (any, error)) *Future {
	f := l.NewFuture()
	go func() {
		v, err := fn()
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()
	return f
}
