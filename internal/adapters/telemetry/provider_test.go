package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/pathforge/internal/adapters/telemetry"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
)

var (
	_ ports.Tracer = (*telemetry.OTelTracer)(nil)
	_ ports.Tracer = (*telemetry.NoOpTracer)(nil)
)

func setupMonitor(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return sr
}

func attrMap(kvs []attribute.KeyValue) map[string]any {
	out := make(map[string]any, len(kvs))
	for _, a := range kvs {
		switch a.Value.Type() {
		case attribute.STRING:
			out[string(a.Key)] = a.Value.AsString()
		case attribute.INT64:
			out[string(a.Key)] = a.Value.AsInt64()
		case attribute.FLOAT64:
			out[string(a.Key)] = a.Value.AsFloat64()
		case attribute.BOOL:
			out[string(a.Key)] = a.Value.AsBool()
		case attribute.STRINGSLICE:
			out[string(a.Key)] = a.Value.AsStringSlice()
		default:
		}
	}
	return out
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	sr := setupMonitor(t)

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(context.Background(), "query",
		ports.WithAttribute("from", domain.Pt(1, 2)),
		ports.WithAttribute("algorithm", "jps"),
	)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "query", spans[0].Name())

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "(1,2)", attrs["from"])
	assert.Equal(t, "jps", attrs["algorithm"])
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr := setupMonitor(t)

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(context.Background(), "attr-test")

	span.SetAttribute("str", "val")
	span.SetAttribute("int", 123)
	span.SetAttribute("int64", int64(456))
	span.SetAttribute("float", 3.14)
	span.SetAttribute("bool", true)
	span.SetAttribute("slice", []string{"a", "b"})
	span.SetAttribute("elapsed", 1500*time.Millisecond)
	span.SetAttribute("status", domain.StatusFound)
	span.SetAttribute("unknown", struct{}{})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "val", attrs["str"])
	assert.Equal(t, int64(123), attrs["int"])
	assert.Equal(t, int64(456), attrs["int64"])
	assert.InEpsilon(t, 3.14, attrs["float"], 0.001)
	assert.Equal(t, true, attrs["bool"])
	assert.Equal(t, []string{"a", "b"}, attrs["slice"])
	assert.Equal(t, "1.5s", attrs["elapsed"])
	assert.Equal(t, domain.StatusFound.String(), attrs["status"])
	assert.Equal(t, "{}", attrs["unknown"])
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupMonitor(t)

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(context.Background(), "failing")
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
}

func TestOTelTracer_EmitQueries(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	// No span in the context: nothing to attach the event to.
	tracer.EmitQueries(context.Background(), []string{"a"})
	assert.Empty(t, sr.Ended())

	ctx, span := tracer.Start(context.Background(), "run")
	tracer.EmitQueries(ctx, []string{"a", "b"})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "queries_planned", events[0].Name)
	assert.Equal(t, []string{"a", "b"}, events[0].Attributes[0].Value.AsStringSlice())
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test-span", ports.WithAttribute("k", 1))
	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
	tracer.EmitQueries(ctx, []string{"a"})
}
