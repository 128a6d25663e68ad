// Package trace is numkit's leveled event tracing.
//
// Commands open a span at ScopeCommand, batch work (a prime batch, a file
// evaluated by eval) opens ScopeBatch spans, and individual numbers or
// statements emit ScopeItem events. The level picks how deep the output goes:
//
//	numkit prime --trace=- --trace-level=detail 97 561
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeBatch, "prime", 0)
//	defer span.End("")
//
// A RingTracer keeps the most recent events in memory so they can be dumped
// when a command fails.
package trace
