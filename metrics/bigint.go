package metrics

import (
	"time"

	"github.com/ydb-platform/ydb-go-bignum/trace"
)

func bigint(config Config) *trace.Bigint {
	config = config.WithSystem("bigint")
	parseErrors := config.CounterVec("parse_errors", "kind")
	operations := config.CounterVec("operations", "operation", "status")
	latency := config.TimerVec("latency", "operation")

	return &trace.Bigint{
		OnParse: func(info trace.BigintParseStartInfo) func(trace.BigintParseDoneInfo) {
			if config.Details()&trace.BigintParseEvents == 0 {
				return nil
			}

			return func(info trace.BigintParseDoneInfo) {
				if info.Error != nil {
					parseErrors.With(map[string]string{
						"kind": errorBrief(info.Error),
					}).Inc()
				}
			}
		},
		OnOperation: func(info trace.BigintOperationStartInfo) func(trace.BigintOperationDoneInfo) {
			if config.Details()&trace.BigintOperationEvents == 0 {
				return nil
			}
			operation := info.Operation
			start := time.Now()

			return func(info trace.BigintOperationDoneInfo) {
				latency.With(map[string]string{
					"operation": operation,
				}).Record(time.Since(start))
				operations.With(map[string]string{
					"operation": operation,
					"status":    errorBrief(info.Error),
				}).Inc()
			}
		},
	}
}

// Bigint makes trace.Bigint which feeds config with integer events
func Bigint(config Config) *trace.Bigint {
	return bigint(config)
}
