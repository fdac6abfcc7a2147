package metrics

import (
	"time"

	"github.com/ydb-platform/ydb-go-bignum/trace"
)

func decimal(config Config) *trace.Decimal {
	config = config.WithSystem("decimal")
	parseErrors := config.CounterVec("parse_errors", "kind", "lenient")
	operations := config.CounterVec("operations", "operation", "status")
	inflight := config.GaugeVec("inflight", "operation")
	latency := config.TimerVec("latency", "operation")
	requestedScale := config.HistogramVec("requested_scale", []float64{0, 1, 2, 4, 8, 16, 32}, "operation")
	roundings := config.CounterVec("roundings", "mode", "accuracy")
	roundedDigits := config.HistogramVec("rounded_digits", []float64{1, 2, 4, 8, 16, 32}, "mode")

	return &trace.Decimal{
		OnParse: func(info trace.DecimalParseStartInfo) func(trace.DecimalParseDoneInfo) {
			if config.Details()&trace.DecimalParseEvents == 0 {
				return nil
			}
			lenient := "false"
			if info.Lenient {
				lenient = "true"
			}

			return func(info trace.DecimalParseDoneInfo) {
				if info.Error != nil {
					parseErrors.With(map[string]string{
						"kind":    errorBrief(info.Error),
						"lenient": lenient,
					}).Inc()
				}
			}
		},
		OnOperation: func(info trace.DecimalOperationStartInfo) func(trace.DecimalOperationDoneInfo) {
			if config.Details()&trace.DecimalOperationEvents == 0 {
				return nil
			}
			operation := info.Operation
			labels := map[string]string{
				"operation": operation,
			}
			requestedScale.With(labels).Record(float64(info.Scale))
			inflight.With(labels).Add(1)
			start := time.Now()

			return func(info trace.DecimalOperationDoneInfo) {
				inflight.With(labels).Add(-1)
				latency.With(labels).Record(time.Since(start))
				operations.With(map[string]string{
					"operation": operation,
					"status":    errorBrief(info.Error),
				}).Inc()
			}
		},
		OnRound: func(info trace.DecimalRoundInfo) {
			if config.Details()&trace.DecimalRoundingEvents == 0 {
				return
			}
			roundings.With(map[string]string{
				"mode":     info.Mode,
				"accuracy": info.Accuracy,
			}).Inc()
			roundedDigits.With(map[string]string{
				"mode": info.Mode,
			}).Record(float64(info.From - info.To))
		},
	}
}

// Decimal makes trace.Decimal which feeds config with decimal events
func Decimal(config Config) *trace.Decimal {
	return decimal(config)
}
