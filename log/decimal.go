package log

import (
	"time"

	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

// Decimal makes trace.Decimal with logging events from details
func Decimal(l Logger, d trace.Detailer) *trace.Decimal {
	return &trace.Decimal{
		OnParse: func(info trace.DecimalParseStartInfo) func(trace.DecimalParseDoneInfo) {
			if d.Details()&trace.DecimalParseEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "kbignum", "decimal", "parse")
			input := info.Input
			l.Log(ctx, "start",
				String("input", input),
				Bool("lenient", info.Lenient),
			)

			return func(info trace.DecimalParseDoneInfo) {
				if info.Error == nil {
					l.Log(WithLevel(ctx, DEBUG), "done",
						String("input", input),
						Int("scale", int(info.Scale)),
					)
				} else {
					l.Log(WithLevel(ctx, WARN), "failed",
						Error(info.Error),
						String("input", input),
						String("kind", xerrors.Kind(info.Error)),
					)
				}
			}
		},
		OnOperation: func(info trace.DecimalOperationStartInfo) func(trace.DecimalOperationDoneInfo) {
			if d.Details()&trace.DecimalOperationEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "kbignum", "decimal", info.Operation)
			scale := info.Scale
			l.Log(ctx, "start",
				Int("scale", int(scale)),
			)
			start := time.Now()

			return func(info trace.DecimalOperationDoneInfo) {
				if info.Error == nil {
					l.Log(WithLevel(ctx, DEBUG), "done",
						latencyField(start),
						String("result", info.Result),
					)
				} else {
					l.Log(WithLevel(ctx, WARN), "failed",
						Error(info.Error),
						latencyField(start),
						String("kind", xerrors.Kind(info.Error)),
					)
				}
			}
		},
		OnRound: func(info trace.DecimalRoundInfo) {
			if d.Details()&trace.DecimalRoundingEvents == 0 {
				return
			}
			ctx := with(*info.Context, DEBUG, "kbignum", "decimal", "round")
			var caller string
			if info.Call != nil {
				caller = info.Call.FunctionID()
			}
			l.Log(ctx, "rounded",
				appendFieldByCondition(caller != "",
					String("caller", caller),
					String("mode", info.Mode),
					Int("from", int(info.From)),
					Int("to", int(info.To)),
					String("accuracy", info.Accuracy),
				)...,
			)
		},
	}
}
