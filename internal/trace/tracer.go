// Package trace exports navigation spans to an OTLP endpoint. With no endpoint
// configured every method is a no-op.
package trace

import (
	"context"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentation = "folio/ui"

// Options configures the exporter.
type Options struct {
	Endpoint    string // host:port or URL; empty disables tracing
	ServiceName string
}

// Tracer records folio events as spans.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	enabled  bool
}

// New creates a tracer exporting over OTLP/HTTP, or a disabled tracer when no
// endpoint is configured.
func New(ctx context.Context, opts Options) (*Tracer, error) {
	if opts.Endpoint == "" {
		return Disabled(), nil
	}

	endpoint := otlptracehttp.WithEndpoint(opts.Endpoint)
	if strings.Contains(opts.Endpoint, "://") {
		endpoint = otlptracehttp.WithEndpointURL(opts.Endpoint)
	}
	exporter, err := otlptracehttp.New(ctx,
		endpoint,
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	return newTracer(sdktrace.WithBatcher(exporter), opts.ServiceName), nil
}

// NewWithExporter creates a tracer that hands every span to exp as soon as it
// ends.
func NewWithExporter(exp sdktrace.SpanExporter, serviceName string) *Tracer {
	return newTracer(sdktrace.WithSyncer(exp), serviceName)
}

func newTracer(export sdktrace.TracerProviderOption, serviceName string) *Tracer {
	if serviceName == "" {
		serviceName = "folio"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	provider := sdktrace.NewTracerProvider(export, sdktrace.WithResource(res))
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentation),
		enabled:  true,
	}
}

// Disabled returns a tracer that records nothing.
func Disabled() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer(instrumentation)}
}

// Enabled reports whether spans are exported.
func (t *Tracer) Enabled() bool {
	return t != nil && t.enabled
}

// Record emits an instantaneous span for ev.
func (t *Tracer) Record(ctx context.Context, ev Event) {
	t.Begin(ctx, ev).End()
}

// Begin starts a span for ev. The caller ends it; a nil Tracer yields a span
// whose End is a no-op.
func (t *Tracer) Begin(ctx context.Context, ev Event) *Span {
	if !t.Enabled() {
		return &Span{}
	}
	_, span := t.tracer.Start(ctx, ev.SpanName(),
		oteltrace.WithAttributes(attributes(ev)...),
	)
	return &Span{span: span}
}

// Shutdown flushes and closes the exporter
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

// Span is an open span.
type Span struct {
	span oteltrace.Span
}

// End closes the span, adding attrs first. Ending twice is harmless.
func (s *Span) End(attrs ...attribute.KeyValue) {
	if s == nil || s.span == nil {
		return
	}
	s.span.SetAttributes(attrs...)
	s.span.End()
	s.span = nil
}

func attributes(ev Event) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(ev.Attributes)+1)
	attrs = append(attrs, attribute.String("folio.event", string(ev.Type)))
	keys := make([]string, 0, len(ev.Attributes))
	for k := range ev.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, attribute.String(attrKey(k), ev.Attributes[k]))
	}
	return attrs
}

// attrKey maps known attributes into the folio.* namespace.
func attrKey(k string) string {
	switch k {
	case "navigator":
		return "folio.deck.id"
	case "card":
		return "folio.deck.card"
	case "seq":
		return "folio.deck.seq"
	case "from", "to":
		return "folio.route." + k
	case "outcome":
		return "folio.outcome"
	default:
		return "folio." + k
	}
}
