// Package trace records begin/end events of jpath operations: one span per
// command, per query file and, at the debug level, per parsed query.
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelPhase: driver spans only
//   - LevelDetail: driver and file spans
//   - LevelDebug: everything, including single queries
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file", trace.CurrentSpan(ctx).SpanID)
//	ctx = span.Context(ctx)
//	defer span.End("")
//
// Events go to stderr unless --trace names a file; a *.ndjson path selects
// the NDJSON format.
package trace
