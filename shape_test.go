// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/pend"
)

// thenableMap is an awaitable that also carries a promise field.
type thenableMap map[string]any

func (m thenableMap) Then(func(any), func(error)) pend.Awaitable { return m }

func TestClassify(t *testing.T) {
	loop := pend.NewLoop()
	f := loop.NewFuture()
	var nilFuture *pend.Future

	tests := []struct {
		name    string
		payload any
		kind    pend.ShapeKind
	}{
		{"absent", nil, pend.NotAwaitable},
		{"typed nil", nilFuture, pend.NotAwaitable},
		{"scalar", 42, pend.NotAwaitable},
		{"plain map", map[string]any{"id": 1}, pend.NotAwaitable},
		{"non-awaitable promise field", map[string]any{"promise": "later"}, pend.NotAwaitable},
		{"nil promise field", map[string]any{"promise": nilFuture}, pend.NotAwaitable},
		{"bare", f, pend.Bare},
		{"wrapped", map[string]any{"promise": f, "tag": "x"}, pend.Wrapped},
		{"awaitable with promise field", thenableMap{"promise": f}, pend.Bare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := pend.Classify(pend.Action{Type: "T", Payload: tt.payload})
			if shape.Kind != tt.kind {
				t.Fatalf("kind got %v, want %v", shape.Kind, tt.kind)
			}
			if (shape.Awaitable == nil) != (tt.kind == pend.NotAwaitable) {
				t.Fatalf("awaitable %v inconsistent with kind %v", shape.Awaitable, shape.Kind)
			}
		})
	}
}

func TestClassifyWrappedCopiesSiblings(t *testing.T) {
	f := pend.NewLoop().NewFuture()
	payload := map[string]any{"promise": f, "tag": "x", "n": 2}

	shape := pend.Classify(pend.Action{Type: "T", Payload: payload})
	if shape.Awaitable != pend.Awaitable(f) {
		t.Fatal("wrapped awaitable not extracted")
	}
	want := map[string]any{"tag": "x", "n": 2}
	if !reflect.DeepEqual(shape.Original, want) {
		t.Fatalf("original got %v, want %v", shape.Original, want)
	}

	shape.Original["tag"] = "changed"
	if payload["tag"] != "x" {
		t.Fatal("original payload shares storage with the incoming payload")
	}
	if _, ok := payload["promise"]; !ok {
		t.Fatal("incoming payload lost its promise field")
	}
}

func TestShapeKindString(t *testing.T) {
	for kind, want := range map[pend.ShapeKind]string{
		pend.NotAwaitable: "not-awaitable",
		pend.Bare:         "bare",
		pend.Wrapped:      "wrapped",
	} {
		if got := kind.String(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}
