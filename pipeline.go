// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

// Apply composes mws over base and returns the root of the pipeline.
// The first middleware is outermost. API.Dispatch handed to every factory
// re-enters the returned root, so lifecycle actions redispatched by a
// middleware traverse the whole chain again.
//
// getState may be nil. Dispatching through API.Dispatch while the chain is
// still being composed panics.
func Apply(base Dispatch, getState func() any, mws ...Middleware) Dispatch {
	if base == nil {
		panic("pend: nil base dispatch")
	}
	if getState == nil {
		getState = func() any { return nil }
	}
	root := Dispatch(func(Action) any {
		panic("pend: dispatch while composing pipeline")
	})
	api := API{
		Dispatch: func(a Action) any { return root(a) },
		GetState: getState,
	}
	chain := base
	for i := len(mws) - 1; i >= 0; i-- {
		chain = mws[i](api)(chain)
	}
	root = chain
	return chain
}
