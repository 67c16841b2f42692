// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend_test

import (
	"fmt"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/pend"
)

func TestJournalRecordsInOrder(t *testing.T) {
	j := pend.NewJournal()
	for i := range 3 {
		a := pend.Action{Type: fmt.Sprintf("T%d", i)}
		if got := j.Dispatch(a); got.(pend.Action).Type != a.Type {
			t.Fatalf("Dispatch returned %v", got)
		}
	}

	for i := range 3 {
		a, err := j.Next()
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := fmt.Sprintf("T%d", i); a.Type != want {
			t.Fatalf("got %q, want %q", a.Type, want)
		}
	}
	if _, err := j.Next(); !iox.IsWouldBlock(err) {
		t.Fatalf("expected ErrWouldBlock, got %v", err)
	}
}

func TestJournalDropsWhenFull(t *testing.T) {
	j := pend.NewJournal()
	const total = 500
	for i := range total {
		j.Dispatch(pend.Action{Type: "T", Payload: i})
	}

	kept := j.Drain()
	if j.Dropped() == 0 {
		t.Fatal("expected drops on a bounded ring")
	}
	if got := uint32(len(kept)) + j.Dropped(); got != total {
		t.Fatalf("kept+dropped = %d, want %d", got, total)
	}
	for i, a := range kept {
		if a.Payload != i {
			t.Fatalf("kept[%d] payload %v, want %d", i, a.Payload, i)
		}
	}
}

func TestJournalConsumerGoroutine(t *testing.T) {
	skipRace(t)
	j := pend.NewJournal()
	const total = 1000

	done := make(chan []int)
	go func() {
		var got []int
		var bo iox.Backoff
		for len(got) < total {
			a, err := j.Next()
			if err != nil {
				bo.Wait()
				continue
			}
			bo.Reset()
			got = append(got, a.Payload.(int))
		}
		done <- got
	}()

	var bo iox.Backoff
	for i := 0; i < total; {
		before := j.Dropped()
		j.Dispatch(pend.Action{Type: "T", Payload: i})
		if j.Dropped() != before {
			// Ring full: let the consumer catch up and retry the same value.
			bo.Wait()
			continue
		}
		bo.Reset()
		i++
	}

	got := <-done
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d, want %d", i, v, i)
		}
	}
}
