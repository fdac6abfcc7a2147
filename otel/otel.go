// Package otel adapts OpenTelemetry tracer to spans.Adapter.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/ydb-platform/ydb-go-bignum/internal/kv"
	"github.com/ydb-platform/ydb-go-bignum/spans"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

var (
	_ spans.Adapter = (*adapter)(nil)
	_ spans.Span    = (*span)(nil)
)

type adapter struct {
	tracer  otelTrace.Tracer
	details trace.Details
}

// New makes spans.Adapter which starts spans with tracer
func New(tracer otelTrace.Tracer, details trace.Detailer) *adapter {
	return &adapter{
		tracer:  tracer,
		details: details.Details(),
	}
}

func (a *adapter) Details() trace.Details {
	return a.details
}

func (a *adapter) SpanFromContext(ctx context.Context) spans.Span {
	return &span{span: otelTrace.SpanFromContext(ctx)}
}

func (a *adapter) Start(ctx context.Context, operationName string, attributes ...spans.KeyValue) (
	context.Context, spans.Span,
) {
	ctx, s := a.tracer.Start(ctx, operationName,
		otelTrace.WithAttributes(fieldsToAttributes(attributes)...),
		otelTrace.WithSpanKind(otelTrace.SpanKindInternal),
	)

	return ctx, &span{span: s}
}

type span struct {
	span otelTrace.Span
}

func (s *span) TraceID() string {
	return s.span.SpanContext().TraceID().String()
}

func (s *span) Log(msg string, attributes ...spans.KeyValue) {
	s.span.AddEvent(msg, otelTrace.WithAttributes(fieldsToAttributes(attributes)...))
}

func (s *span) Error(err error, attributes ...spans.KeyValue) {
	s.span.RecordError(err, otelTrace.WithAttributes(fieldsToAttributes(attributes)...))
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *span) End(attributes ...spans.KeyValue) {
	s.span.SetAttributes(fieldsToAttributes(attributes)...)
	s.span.End()
}

func fieldsToAttributes(fields []spans.KeyValue) []attribute.KeyValue {
	attributes := make([]attribute.KeyValue, 0, len(fields))
	for _, f := range fields {
		switch f.Type() {
		case kv.IntType:
			attributes = append(attributes, attribute.Int(f.Key(), f.IntValue()))
		case kv.Int64Type:
			attributes = append(attributes, attribute.Int64(f.Key(), f.Int64Value()))
		case kv.BoolType:
			attributes = append(attributes, attribute.Bool(f.Key(), f.BoolValue()))
		case kv.StringsType:
			attributes = append(attributes, attribute.StringSlice(f.Key(), f.StringsValue()))
		default:
			attributes = append(attributes, attribute.String(f.Key(), f.String()))
		}
	}

	return attributes
}
