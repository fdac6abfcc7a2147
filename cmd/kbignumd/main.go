// Command kbignumd serves decimal and big integer calculators over HTTP.
//
// Settings come from flags, KBIGNUM_* environment variables and .env file,
// see kbignumd -h.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/time/rate"

	"github.com/ydb-platform/ydb-go-bignum/bigint"
	"github.com/ydb-platform/ydb-go-bignum/decimal"
	"github.com/ydb-platform/ydb-go-bignum/internal/config"
	"github.com/ydb-platform/ydb-go-bignum/internal/prom"
	"github.com/ydb-platform/ydb-go-bignum/internal/server"
	"github.com/ydb-platform/ydb-go-bignum/log"
	"github.com/ydb-platform/ydb-go-bignum/metrics"
	"github.com/ydb-platform/ydb-go-bignum/otel"
	"github.com/ydb-platform/ydb-go-bignum/spans"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("create config failed: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.LogFormat == config.LogFormatText {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(zapLevel(cfg.LogLevel))
	logger, err := zcfg.Build(zap.AddStacktrace(zapcore.PanicLevel))
	if err != nil {
		return fmt.Errorf("error create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("program started",
		zap.String("addr", cfg.Addr),
		zap.Stringer("log_level", cfg.LogLevel),
		zap.String("log_format", cfg.LogFormat),
		zap.Int32("max_scale", cfg.MaxScale),
		zap.Stringer("trace_details", cfg.TraceDetails),
	)
	defer logger.Info("program finished")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsConfig := prom.New(registry, cfg.MetricsNamespace, cfg.TraceDetails)

	tracerProvider := sdktrace.NewTracerProvider()
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		_ = tracerProvider.Shutdown(shutdownCtx)
	}()
	tracer := otel.New(tracerProvider.Tracer("kbignumd"), cfg.TraceDetails)

	decimalOpts := []decimal.Option{
		decimal.WithTrace(metrics.Decimal(metricsConfig)),
		decimal.WithTrace(spans.Decimal(tracer)),
		decimal.WithMaxScale(cfg.MaxScale),
	}
	if cfg.Lenient {
		decimalOpts = append(decimalOpts, decimal.WithLenientParsing())
	}
	bigintOpts := []bigint.Option{
		bigint.WithTrace(metrics.Bigint(metricsConfig)),
		bigint.WithTrace(spans.Bigint(tracer)),
	}

	serverOpts := []server.Option{
		server.WithLogger(logger),
		server.WithGatherer(registry),
		server.WithTraceDetails(cfg.TraceDetails),
	}
	if cfg.LogFormat == config.LogFormatText {
		serverOpts = append(serverOpts, server.WithEventLogger(textLogger(os.Stderr, cfg)))
	}
	if cfg.RateLimit > 0 {
		serverOpts = append(serverOpts, server.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)))
	}

	gin.SetMode(gin.ReleaseMode)
	s := server.New(decimal.New(decimalOpts...), bigint.New(bigintOpts...), serverOpts...)

	return s.Run(ctx, cfg.Addr, cfg.ShutdownTimeout)
}

// textLogger writes calculator events as plain lines, colored when
// requested by config.
func textLogger(w io.Writer, cfg *config.Config) *log.TextLogger {
	opts := []log.TextOption{log.WithMinLevel(cfg.LogLevel)}
	if cfg.LogColor {
		opts = append(opts, log.WithColoring())
	}

	return log.Default(w, opts...)
}

func zapLevel(l log.Level) zapcore.Level {
	switch l {
	case log.TRACE, log.DEBUG:
		return zapcore.DebugLevel
	case log.INFO:
		return zapcore.InfoLevel
	case log.WARN:
		return zapcore.WarnLevel
	case log.ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}
