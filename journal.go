// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// journalCapacity is the bounded capacity of a journal ring.
const journalCapacity = 64

// Journal records the actions that reach the base of a pipeline on a
// bounded lock-free SPSC queue from lfq.
//
// The producer is the goroutine driving the pipeline (the loop goroutine);
// a single consumer reads with Next or Drain, possibly on another goroutine.
type Journal struct {
	q       lfq.SPSC[Action]
	slot    Action
	dropped atomix.Uint32
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	j := &Journal{}
	j.q.Init(journalCapacity)
	return j
}

// Dispatch records a and returns it, so a journal can serve as the base
// link of a pipeline. When the ring is full the action is dropped and
// counted instead.
func (j *Journal) Dispatch(a Action) any {
	j.slot = a
	if err := j.q.Enqueue(&j.slot); err != nil {
		j.dropped.Add(1)
	}
	return a
}

// Next returns the oldest recorded action.
// Non-blocking: returns iox.ErrWouldBlock if the journal is empty.
func (j *Journal) Next() (Action, error) {
	return j.q.Dequeue()
}

// Drain returns every recorded action in order and empties the journal.
func (j *Journal) Drain() []Action {
	var out []Action
	for {
		a, err := j.q.Dequeue()
		if err != nil {
			return out
		}
		out = append(out, a)
	}
}

// Dropped returns the number of actions lost to a full ring.
func (j *Journal) Dropped() uint32 {
	return j.dropped.Load()
}
