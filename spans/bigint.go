package spans

import (
	"github.com/ydb-platform/ydb-go-bignum/internal/kv"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

// Bigint makes trace.Bigint with spans from details
func Bigint(cfg Adapter) *trace.Bigint {
	return &trace.Bigint{
		OnParse: func(info trace.BigintParseStartInfo) func(trace.BigintParseDoneInfo) {
			if cfg.Details()&trace.BigintParseEvents == 0 {
				return nil
			}
			ctx := *info.Context
			input := info.Input

			return func(info trace.BigintParseDoneInfo) {
				if info.Error != nil {
					logToParentSpan(cfg, ctx, "parse failed",
						kv.String("input", input),
						kv.Error(info.Error),
					)
				}
			}
		},
		OnOperation: func(info trace.BigintOperationStartInfo) func(trace.BigintOperationDoneInfo) {
			if cfg.Details()&trace.BigintOperationEvents == 0 {
				return nil
			}
			start := childSpanWithReplaceCtx(cfg, info.Context,
				"kbignum.bigint."+info.Operation,
			)

			return func(info trace.BigintOperationDoneInfo) {
				finish(start, info.Error,
					kv.String("result", info.Result),
				)
			}
		},
	}
}
