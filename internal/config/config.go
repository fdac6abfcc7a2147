// Package config reads kbignumd settings from env files, environment and
// command line. Flags override environment, environment overrides defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ydb-platform/ydb-go-bignum/decimal"
	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
	"github.com/ydb-platform/ydb-go-bignum/log"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

const (
	DefaultAddr             = ":8080"
	DefaultMetricsNamespace = "kbignum"
	DefaultTraceDetails     = "kbignum.*"
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultRateLimit        = 1000
	DefaultRateBurst        = 100
	DefaultMaxScale         = decimal.DefaultMaxScale
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

var errWrongArgs = errors.New("wrong args")

type Config struct {
	Addr     string
	LogLevel log.Level
	// LogFormat is LogFormatJSON for zap output or LogFormatText for the
	// plain text logger which also traces every calculator operation.
	LogFormat string
	LogColor  bool

	MetricsNamespace string
	TraceDetails     trace.Details

	// Lenient enables fallback parsing of malformed decimal operands.
	Lenient bool
	// MaxScale limits decimal scales, zero disables the limit.
	MaxScale int32

	// RateLimit is requests per second, zero disables limiting.
	RateLimit float64
	RateBurst int

	ShutdownTimeout time.Duration
}

// Load reads envFiles (".env" when none given, missing files are skipped),
// then environment variables with KBIGNUM_ prefix, then args.
func Load(args []string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, name := range envFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, xerrors.WithStackTrace(err)
		}
	}

	cfg := &Config{
		Addr:             getEnv("KBIGNUM_ADDR", DefaultAddr),
		LogLevel:         log.INFO,
		LogFormat:        getEnv("KBIGNUM_LOG_FORMAT", LogFormatJSON),
		LogColor:         getEnvBool("KBIGNUM_LOG_COLOR", false),
		MetricsNamespace: getEnv("KBIGNUM_METRICS_NAMESPACE", DefaultMetricsNamespace),
		Lenient:          getEnvBool("KBIGNUM_LENIENT", false),
		RateLimit:        getEnvFloat("KBIGNUM_RATE_LIMIT", DefaultRateLimit),
		RateBurst:        int(getEnvInt64("KBIGNUM_RATE_BURST", DefaultRateBurst)),
		ShutdownTimeout:  getEnvDuration("KBIGNUM_SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}
	if v, ok := os.LookupEnv("KBIGNUM_LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, xerrors.WithStackTrace(err)
		}
	}
	details := getEnv("KBIGNUM_TRACE_DETAILS", DefaultTraceDetails)
	maxScale := getEnvInt64("KBIGNUM_MAX_SCALE", int64(DefaultMaxScale))

	flags := flag.NewFlagSet("kbignumd", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flags.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimal log level")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format, json or text")
	flags.BoolVar(&cfg.LogColor, "log-color", cfg.LogColor, "colorize text logs")
	flags.StringVar(&cfg.MetricsNamespace, "metrics-namespace", cfg.MetricsNamespace, "prometheus namespace")
	flags.StringVar(&details, "trace-details", details, "regexp of trace events, like kbignum.decimal.*")
	flags.BoolVar(&cfg.Lenient, "lenient", cfg.Lenient, "parse malformed decimals leniently")
	flags.Int64Var(&maxScale, "max-scale", maxScale, "max decimal scale, 0 means unlimited")
	flags.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "requests per second, 0 means unlimited")
	flags.IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "rate limiter burst")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")

	if err := flags.Parse(args); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if flags.NArg() > 0 {
		return nil, xerrors.WithStackTrace(xerrors.Join(errWrongArgs, errors.New(flags.Arg(0))))
	}

	if maxScale < 0 || maxScale > math.MaxInt32 {
		return nil, xerrors.WithStackTrace(fmt.Errorf("max scale %d is out of range [0, %d]", maxScale, math.MaxInt32))
	}
	cfg.MaxScale = int32(maxScale)
	cfg.TraceDetails = trace.MatchDetails(details, trace.WithDefaultDetails(trace.DetailsAll))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return xerrors.WithStackTrace(errors.New("listen address is required"))
	}
	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatText {
		return xerrors.WithStackTrace(fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	if c.MaxScale < 0 {
		return xerrors.WithStackTrace(errors.New("max scale must not be negative"))
	}
	if c.RateLimit < 0 {
		return xerrors.WithStackTrace(errors.New("rate limit must not be negative"))
	}
	if c.RateLimit > 0 && c.RateBurst <= 0 {
		return xerrors.WithStackTrace(errors.New("rate burst must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		return xerrors.WithStackTrace(errors.New("shutdown timeout must be positive"))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultValue
	}

	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}

	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return v
}
