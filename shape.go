// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import "reflect"

// PromiseField is the reserved key of a wrapped payload.
const PromiseField = "promise"

// Awaitable is a value representing a future result.
// Then registers continuations for success and failure and returns an
// awaitable that observes the same settlement.
// Any type with this method is detected as awaitable.
type Awaitable interface {
	Then(onResolved func(value any), onRejected func(err error)) Awaitable
}

// ShapeKind classifies an action payload.
type ShapeKind uint8

const (
	// NotAwaitable actions pass through unchanged.
	NotAwaitable ShapeKind = iota
	// Bare payloads are awaitables themselves.
	Bare
	// Wrapped payloads carry an awaitable under PromiseField.
	Wrapped
)

func (k ShapeKind) String() string {
	switch k {
	case Bare:
		return "bare"
	case Wrapped:
		return "wrapped"
	default:
		return "not-awaitable"
	}
}

// Shape is the result of [Classify].
// Awaitable is nil for NotAwaitable; Original is set only for Wrapped.
type Shape struct {
	Kind      ShapeKind
	Awaitable Awaitable
	Original  map[string]any
}

// Classify inspects the payload of a.
// Direct awaitability takes precedence over a nested promise field.
// A promise field that is not awaitable makes the action NotAwaitable.
func Classify(a Action) Shape {
	if aw, ok := asAwaitable(a.Payload); ok {
		return Shape{Kind: Bare, Awaitable: aw}
	}
	fields, ok := a.Payload.(map[string]any)
	if !ok {
		return Shape{}
	}
	aw, ok := asAwaitable(fields[PromiseField])
	if !ok {
		return Shape{}
	}
	original := make(map[string]any, len(fields)-1)
	for k, v := range fields {
		if k != PromiseField {
			original[k] = v
		}
	}
	return Shape{Kind: Wrapped, Awaitable: aw, Original: original}
}

// asAwaitable reports whether v is a non-nil Awaitable.
// Typed nil pointers count as absent.
func asAwaitable(v any) (Awaitable, bool) {
	aw, ok := v.(Awaitable)
	if !ok {
		return nil, false
	}
	rv := reflect.ValueOf(aw)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return nil, false
		}
	}
	return aw, true
}
