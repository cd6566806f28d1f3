package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/xspring/internal/adapters/telemetry"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type recordingObserver struct {
	events []domain.Event
}

func (r *recordingObserver) Observe(event domain.Event) {
	r.events = append(r.events, event)
}

func TestBridge_OnEndReportsStage(t *testing.T) {
	obs := &recordingObserver{}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(obs)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "project.generate")
	span.SetAttributes(
		attribute.String("base_dir", "demo"),
		attribute.Int("dependencies", 2),
		attribute.Bool("quick", true),
	)
	span.End()

	require.Len(t, obs.events, 1)
	event := obs.events[0]
	assert.Equal(t, domain.EventStageCompleted, event.Kind)
	assert.Equal(t, "project.generate", event.Fields["stage"])
	assert.Equal(t, "ok", event.Fields["status"])
	assert.Equal(t, "demo", event.Fields["base_dir"])
	assert.Equal(t, int64(2), event.Fields["dependencies"])
	assert.Equal(t, true, event.Fields["quick"])
	assert.Contains(t, event.Fields, "duration_ms")
	assert.NotEmpty(t, event.Fields["span_id"])
}

func TestBridge_OnEndReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)
	obs.EXPECT().Observe(gomock.Cond(func(e domain.Event) bool {
		return e.Fields["status"] == "error" && e.Fields["error"] == "download failed"
	})).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(obs)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "project.generate")
	span.RecordError(errors.New("boom"))
	span.SetStatus(codes.Error, "download failed")
	span.End()
}

func TestBridge_NilObserver(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	assert.NotPanics(t, func() {
		_, span := tp.Tracer("test").Start(context.Background(), "catalog.fetch")
		span.End()
	})
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	bridge := telemetry.NewBridge(nil)

	assert.NoError(t, bridge.ForceFlush(context.Background()))
	assert.NoError(t, bridge.Shutdown(context.Background()))
}
