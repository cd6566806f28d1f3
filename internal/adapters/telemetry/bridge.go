package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to turn finished spans into stage events.
type Bridge struct {
	observer ports.Observer
}

// NewBridge returns a new Bridge. A nil observer drops every span.
func NewBridge(observer ports.Observer) *Bridge {
	return &Bridge{observer: observer}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd reports the span as a completed stage with its duration, status and attributes.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.observer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	fields := map[string]any{
		"stage":       s.Name(),
		"span_id":     sc.SpanID().String(),
		"duration_ms": s.EndTime().Sub(s.StartTime()).Milliseconds(),
		"status":      "ok",
	}
	if s.Status().Code == codes.Error {
		fields["status"] = "error"
		if desc := s.Status().Description; desc != "" {
			fields["error"] = desc
		}
	}
	for _, kv := range s.Attributes() {
		fields[string(kv.Key)] = attributeValue(kv.Value)
	}

	event := domain.NewEvent(domain.EventStageCompleted, "stage completed", fields)
	event.Time = s.EndTime()
	b.observer.Observe(event)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func attributeValue(v attribute.Value) any {
	switch v.Type() {
	case attribute.BOOL:
		return v.AsBool()
	case attribute.INT64:
		return v.AsInt64()
	case attribute.FLOAT64:
		return v.AsFloat64()
	case attribute.STRINGSLICE:
		return v.AsStringSlice()
	default:
		return v.Emit()
	}
}
