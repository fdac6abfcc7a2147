package spans

import (
	"github.com/ydb-platform/ydb-go-bignum/internal/kv"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

// Decimal makes trace.Decimal with spans from details
func Decimal(cfg Adapter) *trace.Decimal {
	return &trace.Decimal{
		OnParse: func(info trace.DecimalParseStartInfo) func(trace.DecimalParseDoneInfo) {
			if cfg.Details()&trace.DecimalParseEvents == 0 {
				return nil
			}
			ctx := *info.Context
			input := info.Input

			return func(info trace.DecimalParseDoneInfo) {
				if info.Error != nil {
					logToParentSpan(cfg, ctx, "parse failed",
						kv.String("input", input),
						kv.Error(info.Error),
					)
				}
			}
		},
		OnOperation: func(info trace.DecimalOperationStartInfo) func(trace.DecimalOperationDoneInfo) {
			if cfg.Details()&trace.DecimalOperationEvents == 0 {
				return nil
			}
			start := childSpanWithReplaceCtx(cfg, info.Context,
				"kbignum.decimal."+info.Operation,
				kv.Int("scale", int(info.Scale)),
			)

			return func(info trace.DecimalOperationDoneInfo) {
				finish(start, info.Error,
					kv.String("result", info.Result),
				)
			}
		},
		OnRound: func(info trace.DecimalRoundInfo) {
			if cfg.Details()&trace.DecimalRoundingEvents == 0 {
				return
			}
			logToParentSpan(cfg, *info.Context, "rounded",
				kv.String("mode", info.Mode),
				kv.Int("from", int(info.From)),
				kv.Int("to", int(info.To)),
				kv.String("accuracy", info.Accuracy),
			)
		},
	}
}
