package trace

import "context"

type ctxKey uint8

const (
	tracerKey ctxKey = iota
	spanKey
)

// FromContext returns the tracer stored in ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey).(Tracer); ok {
			return t
		}
	}
	return Nop
}

// WithTracer attaches t to ctx; nil stores Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey, t)
}

// SpanContext identifies the span new spans should use as parent.
type SpanContext struct {
	SpanID uint64
	GID    uint64
}

// CurrentSpan returns the innermost span recorded in ctx; the zero value
// means "no parent".
func CurrentSpan(ctx context.Context) SpanContext {
	if ctx != nil {
		if sc, ok := ctx.Value(spanKey).(SpanContext); ok {
			return sc
		}
	}
	return SpanContext{}
}

func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, spanKey, sc)
}
