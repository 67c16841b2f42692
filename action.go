// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import "maps"

// Meta is the free-form metadata mapping carried by an [Action].
type Meta = map[string]any

// OriginalPayloadKey is the meta key under which the sibling fields of a
// wrapped payload are echoed on SUCCESS and FAILURE actions.
const OriginalPayloadKey = "originalPayload"

// Action is a value flowing through the dispatch pipeline.
// A nil Payload or Meta means the field is absent.
// Error is set only on FAILURE actions.
type Action struct {
	Type    string
	Payload any
	Meta    Meta
	Error   error
}

// Dispatch is one link of the pipeline: a single action in, a result out.
type Dispatch func(Action) any

// API is the store surface handed to a [Middleware] factory.
// Dispatch re-enters the pipeline from its root.
type API struct {
	Dispatch Dispatch
	GetState func() any
}

// Middleware is the three-level interceptor shape of the pipeline:
// store-api-aware factory, next-aware wrapper, action handler.
type Middleware func(api API) func(next Dispatch) Dispatch

// withOriginal returns a copy of m extended with the original payload.
// m is never modified; a nil m yields a fresh map.
func withOriginal(m Meta, original map[string]any) Meta {
	out := make(Meta, len(m)+1)
	maps.Copy(out, m)
	out[OriginalPayloadKey] = original
	return out
}
