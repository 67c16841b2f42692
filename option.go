// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// instrumentationName names the tracer obtained from the no-op provider.
const instrumentationName = "code.hybscloud.com/pend"

type options struct {
	suffixes Suffixes
	logger   *zap.Logger
	tracer   trace.Tracer
	traceCtx context.Context
}

func defaultOptions() options {
	return options{
		suffixes: DefaultSuffixes,
		logger:   zap.NewNop(),
		tracer:   noop.NewTracerProvider().Tracer(instrumentationName),
		traceCtx: context.Background(),
	}
}

// Option configures a middleware built by [New].
type Option func(*options)

// WithSuffixes applies the non-empty fields of s.
func WithSuffixes(s Suffixes) Option {
	return func(o *options) {
		o.suffixes = o.suffixes.Override(s)
	}
}

// WithRequestSuffix overrides the request suffix. Empty values are ignored.
func WithRequestSuffix(suffix string) Option {
	return WithSuffixes(Suffixes{Request: suffix})
}

// WithRejectSuffix overrides the reject suffix. Empty values are ignored.
func WithRejectSuffix(suffix string) Option {
	return WithSuffixes(Suffixes{Reject: suffix})
}

// WithResolveSuffix overrides the resolve suffix. Empty values are ignored.
func WithResolveSuffix(suffix string) Option {
	return WithSuffixes(Suffixes{Resolve: suffix})
}

// WithLogger sets the logger for lifecycle phases. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTracer sets the tracer used for lifecycle spans. Nil is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithTraceContext sets the context lifecycle spans start from, so they
// become children of the span carried by ctx. Nil is ignored.
func WithTraceContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.traceCtx = ctx
		}
	}
}
