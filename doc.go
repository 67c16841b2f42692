// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pend provides a promise lifecycle middleware for unidirectional
// action pipelines.
//
// An action whose payload is an [Awaitable] is expanded into lifecycle
// actions: a REQUEST action forwarded synchronously, then exactly one
// SUCCESS or FAILURE action redispatched from the pipeline root once the
// awaitable settles.
//
// # Architecture
//
//   - Suffixes: [Suffixes] derive lifecycle types by concatenation. Each [New] call captures its own copy.
//   - Shapes: [Classify] detects bare awaitables and wrapped payloads carrying one under [PromiseField].
//   - Sequencing: [New] returns a [Middleware] with the curried store-api → next → action shape.
//     [NewWithSuffixes] takes the three suffixes positionally.
//   - Hosting: [Apply] composes middlewares over a base [Dispatch], wiring root redispatch.
//
// # Cooperative Execution
//
//   - Loop: [Loop] is a single-consumer FIFO of deferred continuations. [Loop.Step] returns
//     [code.hybscloud.com/iox.ErrWouldBlock] when idle; [Loop.Await] waits with adaptive backoff.
//   - Futures: [Future] is the reference awaitable. Outcomes are [code.hybscloud.com/kont.Either] values.
//   - Effects: [Lift] and [LiftExpr] settle a future from a kont computation using error effects.
//   - Journal: [Journal] records actions reaching the pipeline base on a lock-free SPSC ring.
//
// # Example
//
//	loop := pend.NewLoop()
//	journal := pend.NewJournal()
//	dispatch := pend.Apply(journal.Dispatch, nil, pend.Default)
//	dispatch(pend.Action{Type: "FETCH", Payload: loop.Resolved(42)})
//	loop.Drain()
//	// journal holds FETCH_REQUEST, then FETCH with payload 42
package pend
