package telemetry

import (
	"context"

	"go.trai.ch/pathforge/internal/core/ports"
)

// NoOpTracer discards all spans.
type NoOpTracer struct{}

// NewNoOpTracer returns a tracer that records nothing.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns ctx unchanged and a span that does nothing.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noOpSpan{}
}

// EmitQueries does nothing.
func (t *NoOpTracer) EmitQueries(context.Context, []string) {}

type noOpSpan struct{}

func (noOpSpan) End()                     {}
func (noOpSpan) RecordError(error)        {}
func (noOpSpan) SetAttribute(string, any) {}
