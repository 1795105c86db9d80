package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	before := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { otel.SetTracerProvider(before) })
	return sr
}

func TestLoadRecordsSpan(t *testing.T) {
	sr := recordSpans(t)
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Insert(ctx, DefaultLandmarks))

	_, err := Load(ctx, st)
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "catalog.load", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("landmarks.loaded", len(DefaultLandmarks)))
}
