package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Bridge implements sdktrace.SpanProcessor and reports finished spans to a logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing; spans are reported once they end.
func (b *Bridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name and duration. Failed spans are logged as warnings.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime())
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Warn(fmt.Sprintf("%s failed after %s: %s", s.Name(), elapsed, desc))
		return
	}
	b.logger.Info(fmt.Sprintf("%s finished in %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error {
	return nil
}

// Setup installs a global tracer provider feeding the given processors and
// returns a function that shuts it down.
func Setup(processors ...sdktrace.SpanProcessor) func(context.Context) error {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		if err := tp.Shutdown(ctx); err != nil {
			return zerr.Wrap(err, "failed to shut down tracer provider")
		}
		return nil
	}
}
