// Package trace exports completed transactions as OpenTelemetry spans.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"moneyhome/internal/flow"
	"moneyhome/internal/money"
)

const tracerName = "moneyhome/flow"

// OTLPExporter exports one span per completed transaction.
// A nil *OTLPExporter is valid and exports nothing.
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if endpoint not configured (disabled).
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "money"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewExporter(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewExporter wraps an existing tracer provider.
func NewExporter(provider *sdktrace.TracerProvider) *OTLPExporter {
	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer(tracerName),
	}
}

// ExportReceipt records r as a span named transaction.<kind> covering
// launch to completion.
func (e *OTLPExporter) ExportReceipt(ctx context.Context, r flow.Receipt) {
	if e == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("money.txn.id", r.ID),
		attribute.String("money.txn.kind", r.Kind.String()),
		attribute.String("money.amount", r.Amount.StringFixed(money.Places)),
		attribute.String("money.cash.before", r.CashBefore.StringFixed(money.Places)),
		attribute.String("money.cash.after", r.CashAfter.StringFixed(money.Places)),
	}
	if r.Speed != flow.SpeedNone {
		attrs = append(attrs,
			attribute.String("money.transfer.speed", r.Speed.String()),
			attribute.String("money.transfer.fee", r.Fee.StringFixed(money.Places)),
		)
	}
	if r.Recipient != nil {
		attrs = append(attrs, attribute.String("money.recipient", r.Recipient.Handle))
	}

	start := r.StartedAt
	if start.IsZero() {
		start = r.CompletedAt
	}
	_, span := e.tracer.Start(ctx, "transaction."+r.Kind.String(),
		oteltrace.WithTimestamp(start),
		oteltrace.WithAttributes(attrs...),
	)
	span.End(oteltrace.WithTimestamp(r.CompletedAt))
}

// Shutdown flushes and closes the exporter.
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}

type observer struct {
	exp *OTLPExporter
}

// NewObserver exports every completed transaction through exp.
func NewObserver(exp *OTLPExporter) flow.Observer {
	return observer{exp: exp}
}

func (o observer) OnTransactionComplete(r flow.Receipt) {
	o.exp.ExportReceipt(context.Background(), r)
}
