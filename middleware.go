// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Default is a middleware with the default suffixes.
var Default = New()

// New builds a promise lifecycle middleware.
//
// The suffix configuration is captured by value: instances built with
// different options never observe each other. The configuration also
// becomes the one used by the package-level [RequestType], [RejectType]
// and [ResolveType] helpers.
func New(opts ...Option) Middleware {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	publish(o.suffixes)
	s := &sequencer{suffixes: o.suffixes, logger: o.logger, tracer: o.tracer, traceCtx: o.traceCtx}
	return func(api API) func(next Dispatch) Dispatch {
		if api.Dispatch == nil {
			panic("pend: API.Dispatch is nil")
		}
		return func(next Dispatch) Dispatch {
			return func(a Action) any {
				return s.handle(a, next, api.Dispatch)
			}
		}
	}
}

// NewWithSuffixes builds a middleware with positional suffixes.
// Empty arguments keep the defaults; opts apply after the suffixes.
func NewWithSuffixes(request, reject, resolve string, opts ...Option) Middleware {
	return New(append([]Option{WithSuffixes(Configure(request, reject, resolve))}, opts...)...)
}

// sequencer expands an awaitable action into its lifecycle actions.
// All fields are read-only after construction.
type sequencer struct {
	suffixes Suffixes
	logger   *zap.Logger
	tracer   trace.Tracer
	traceCtx context.Context
}

// handle forwards non-awaitable actions unchanged. For awaitable actions it
// forwards the REQUEST action before returning, then redispatches exactly
// one SUCCESS or FAILURE action from the pipeline root on settlement.
// The awaitable is returned as is.
func (s *sequencer) handle(a Action, next, redispatch Dispatch) any {
	shape := Classify(a)
	if shape.Kind == NotAwaitable {
		return next(a)
	}

	requestType := s.suffixes.RequestType(a.Type)
	rejectType := s.suffixes.RejectType(a.Type)
	resolveType := s.suffixes.ResolveType(a.Type)

	log := s.logger.With(zap.String("type", a.Type), zap.Stringer("shape", shape.Kind))
	_, span := s.tracer.Start(s.traceCtx, a.Type,
		trace.WithAttributes(
			attribute.String("pend.action.type", a.Type),
			attribute.String("pend.shape", shape.Kind.String()),
		),
	)

	request := Action{Type: requestType, Meta: a.Meta}
	if shape.Kind == Wrapped {
		request.Payload = shape.Original
	}
	log.Debug("pend: request", zap.String("emit", requestType))
	next(request)

	meta := a.Meta
	if shape.Kind == Wrapped {
		meta = withOriginal(a.Meta, shape.Original)
	}

	shape.Awaitable.Then(
		func(value any) {
			log.Debug("pend: resolve", zap.String("emit", resolveType))
			span.SetAttributes(attribute.String("pend.outcome", "resolve"))
			span.End()
			redispatch(Action{Type: resolveType, Payload: value, Meta: meta})
		},
		func(err error) {
			log.Debug("pend: reject", zap.String("emit", rejectType), zap.Error(err))
			span.SetAttributes(attribute.String("pend.outcome", "reject"))
			span.RecordError(err)
			span.SetStatus(codes.Error, errorText(err))
			span.End()
			redispatch(Action{Type: rejectType, Error: err, Meta: meta})
		},
	)
	return shape.Awaitable
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
