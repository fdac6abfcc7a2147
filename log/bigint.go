package log

import (
	"time"

	"github.com/ydb-platform/ydb-go-bignum/internal/kv"
	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

// Bigint makes trace.Bigint with logging events from details
func Bigint(l Logger, d trace.Detailer) *trace.Bigint {
	return &trace.Bigint{
		OnParse: func(info trace.BigintParseStartInfo) func(trace.BigintParseDoneInfo) {
			if d.Details()&trace.BigintParseEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "kbignum", "bigint", "parse")
			input := info.Input

			return func(info trace.BigintParseDoneInfo) {
				if info.Error != nil {
					l.Log(WithLevel(ctx, WARN), "failed",
						Error(info.Error),
						String("input", input),
						String("kind", xerrors.Kind(info.Error)),
					)
				}
			}
		},
		OnOperation: func(info trace.BigintOperationStartInfo) func(trace.BigintOperationDoneInfo) {
			if d.Details()&trace.BigintOperationEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "kbignum", "bigint", info.Operation)
			l.Log(ctx, "start")
			start := time.Now()

			return func(info trace.BigintOperationDoneInfo) {
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
	}
}

func latencyField(start time.Time) Field {
	return kv.Latency(start)
}
