// Package spans turns decimal and bigint trace events into spans of any
// tracing system which implements Adapter.
package spans

import (
	"context"

	"github.com/ydb-platform/ydb-go-bignum/internal/kv"
	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

type (
	KeyValue = kv.KeyValue
	Span     interface {
		TraceID() string

		Log(msg string, attributes ...KeyValue)
		Error(err error, attributes ...KeyValue)

		End(attributes ...KeyValue)
	}
	Adapter interface {
		trace.Detailer

		SpanFromContext(ctx context.Context) Span
		Start(ctx context.Context, operationName string, attributes ...KeyValue) (context.Context, Span)
	}
)

func childSpanWithReplaceCtx(
	cfg Adapter,
	ctx *context.Context,
	operationName string,
	fields ...KeyValue,
) (s Span) {
	*ctx, s = cfg.Start(*ctx, operationName, fields...)

	return s
}

func finish(
	s Span,
	err error,
	fields ...KeyValue,
) {
	if err != nil {
		s.Error(err, kv.String("error.kind", xerrors.Kind(err)))
	}
	s.End(fields...)
}

func logToParentSpan(
	cfg Adapter,
	ctx context.Context, //nolint:revive
	msg string,
	fields ...KeyValue,
) {
	parent := cfg.SpanFromContext(ctx)
	parent.Log(msg, fields...)
}
