package sparql

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Instrumentation library name
	instrumentationName    = "github.com/seuros/gopher-sparql/src/sparql"
	instrumentationVersion = "0.1.0"
)

// queryKind labels the query composite being rendered.
type queryKind string

const (
	kindSelect queryKind = "select"
	kindUpdate queryKind = "update"
)

// observabilityInstruments holds the OpenTelemetry instruments for the
// builder. They resolve through the global providers, so installing an SDK
// before or after first use both work.
type observabilityInstruments struct {
	tracer trace.Tracer
	meter  metric.Meter

	buildDuration metric.Float64Histogram
	buildCount    metric.Int64Counter
	buildErrors   metric.Int64Counter
	buildSize     metric.Int64Histogram
}

var obs = sync.OnceValue(initObservability)

// initObservability initializes OpenTelemetry instruments
func initObservability() *observabilityInstruments {
	tracer := otel.Tracer(instrumentationName, trace.WithInstrumentationVersion(instrumentationVersion))
	meter := otel.Meter(instrumentationName, metric.WithInstrumentationVersion(instrumentationVersion))

	instruments := &observabilityInstruments{
		tracer: tracer,
		meter:  meter,
	}

	var err error

	instruments.buildDuration, err = meter.Float64Histogram(
		"sparql.build.duration",
		metric.WithDescription("Duration of query text generation"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.buildCount, err = meter.Int64Counter(
		"sparql.build.count",
		metric.WithDescription("Number of successful query builds"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.buildErrors, err = meter.Int64Counter(
		"sparql.build.errors",
		metric.WithDescription("Number of failed query builds"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.buildSize, err = meter.Int64Histogram(
		"sparql.build.size",
		metric.WithDescription("Size of generated query text"),
		metric.WithUnit("By"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return instruments
}

// instrumentedBuild wraps a query render with a span and build metrics.
func instrumentedBuild(ctx context.Context, kind queryKind, fn func() (string, error)) (string, error) {
	oi := obs()
	kindAttr := attribute.String("query.kind", string(kind))

	_, span := oi.tracer.Start(ctx, "sparql.build",
		trace.WithAttributes(kindAttr),
	)
	start := time.Now()

	text, err := fn()

	duration := time.Since(start)
	oi.buildDuration.Record(context.Background(), duration.Seconds(), metric.WithAttributes(kindAttr))
	if err != nil {
		oi.buildErrors.Add(context.Background(), 1, metric.WithAttributes(kindAttr))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		oi.buildCount.Add(context.Background(), 1, metric.WithAttributes(kindAttr))
		oi.buildSize.Record(context.Background(), int64(len(text)), metric.WithAttributes(kindAttr))
		span.SetAttributes(attribute.Int("sparql.build.bytes", len(text)))
		span.SetStatus(codes.Ok, "")
		if l := pkgLogger(); l.IsDebugEnabled() {
			l.Debug("query built", "kind", string(kind), "bytes", len(text), "duration", duration)
		}
	}
	span.End()

	return text, err
}
