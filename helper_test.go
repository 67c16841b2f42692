// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/pend"
)

const giveMeMeta = "GIVE_ME_META"

// metaMiddleware enriches GIVE_ME_META actions with meta, wherever they
// enter the pipeline.
func metaMiddleware(pend.API) func(pend.Dispatch) pend.Dispatch {
	return func(next pend.Dispatch) pend.Dispatch {
		return func(a pend.Action) any {
			if a.Type == giveMeMeta {
				a.Meta = pend.Meta{"note": "here you go"}
			}
			return next(a)
		}
	}
}

// harness wires metaMiddleware and mw over a journal, the way a host
// store composes its chain.
type harness struct {
	loop     *pend.Loop
	base     *pend.Journal
	dispatch pend.Dispatch
}

func newHarness(mw pend.Middleware) *harness {
	h := &harness{loop: pend.NewLoop(), base: pend.NewJournal()}
	h.dispatch = pend.Apply(h.base.Dispatch, nil, metaMiddleware, mw)
	return h
}

// settle runs every pending continuation and returns all actions that
// reached the base so far.
func (h *harness) settle() []pend.Action {
	h.loop.Drain()
	return h.base.Drain()
}

func expectActions(t *testing.T, got []pend.Action, want ...pend.Action) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d actions %+v, want %d %+v", len(got), got, len(want), want)
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Fatalf("action %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
