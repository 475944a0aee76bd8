// Package telemetry exports deck navigation as OpenTelemetry spans.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"seminar/internal/config"
	"seminar/internal/deck"
)

// SpanSelect is the span recorded for every section transition.
const SpanSelect = "deck.select"

const instrumentation = "seminar/deck"

// Attribute keys on SpanSelect spans.
const (
	AttrFrom    = attribute.Key("seminar.section.from")
	AttrTo      = attribute.Key("seminar.section.to")
	AttrBadge   = attribute.Key("seminar.section.badge")
	AttrSession = attribute.Key("seminar.session")
)

// Tracer records deck transitions. A nil *Tracer is valid and records
// nothing, so callers need not check whether export is configured.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a tracer exporting over OTLP/HTTP to cfg.Endpoint.
// Returns nil when no endpoint is configured (disabled).
func New(ctx context.Context, cfg config.TelemetryConfig) (*Tracer, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	var opt otlptracehttp.Option
	if strings.Contains(cfg.Endpoint, "://") {
		opt = otlptracehttp.WithEndpointURL(cfg.Endpoint)
	} else {
		opt = otlptracehttp.WithEndpoint(cfg.Endpoint)
	}
	exporter, err := otlptracehttp.New(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}
	return NewWithExporter(exporter, cfg.ServiceName, sdktrace.WithBatcher(exporter)), nil
}

// NewWithExporter creates a tracer over exporter. Without extra options
// spans are exported synchronously as they end.
func NewWithExporter(exporter sdktrace.SpanExporter, serviceName string, opts ...sdktrace.TracerProviderOption) *Tracer {
	if serviceName == "" {
		serviceName = "seminar"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)
	if len(opts) == 0 {
		opts = []sdktrace.TracerProviderOption{sdktrace.WithSyncer(exporter)}
	}
	opts = append(opts, sdktrace.WithResource(res))
	provider := sdktrace.NewTracerProvider(opts...)
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentation),
	}
}

// Observer returns a deck.Observer that records one SpanSelect span per
// transition, tagged with session. Returns nil for a nil Tracer.
func (t *Tracer) Observer(ctx context.Context, session string) deck.Observer {
	if t == nil {
		return nil
	}
	return func(from, to deck.SectionID) {
		attrs := []attribute.KeyValue{
			AttrFrom.String(string(from)),
			AttrTo.String(string(to)),
			AttrBadge.String(deck.Badge(deck.IndexOf(to))),
		}
		if session != "" {
			attrs = append(attrs, AttrSession.String(session))
		}
		_, span := t.tracer.Start(ctx, SpanSelect, oteltrace.WithAttributes(attrs...))
		span.End()
	}
}

// Shutdown flushes pending spans and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
