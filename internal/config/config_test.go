package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ydb-platform/ydb-go-bignum/log"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, missingEnvFile(t))
	require.NoError(t, err)
	require.Equal(t, &Config{
		Addr:             DefaultAddr,
		LogLevel:         log.INFO,
		LogFormat:        LogFormatJSON,
		MetricsNamespace: DefaultMetricsNamespace,
		TraceDetails:     trace.DecimalEvents | trace.BigintEvents,
		MaxScale:         DefaultMaxScale,
		RateLimit:        DefaultRateLimit,
		RateBurst:        DefaultRateBurst,
		ShutdownTimeout:  DefaultShutdownTimeout,
	}, cfg)
}

func TestLoadPrecedence(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"KBIGNUM_METRICS_NAMESPACE=from_file\nKBIGNUM_RATE_LIMIT=5\n",
	), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("KBIGNUM_METRICS_NAMESPACE")
		_ = os.Unsetenv("KBIGNUM_RATE_LIMIT")
	})
	t.Setenv("KBIGNUM_ADDR", ":9000")
	t.Setenv("KBIGNUM_LOG_LEVEL", "debug")
	t.Setenv("KBIGNUM_LENIENT", "true")
	t.Setenv("KBIGNUM_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("KBIGNUM_MAX_SCALE", "500")
	t.Setenv("KBIGNUM_LOG_FORMAT", "text")

	cfg, err := Load([]string{
		"-addr", ":9100",
		"-trace-details", "kbignum.decimal.rounding",
		"-max-scale", "64",
		"-log-color",
	}, envFile)
	require.NoError(t, err)
	require.Equal(t, ":9100", cfg.Addr)
	require.Equal(t, log.DEBUG, cfg.LogLevel)
	require.Equal(t, "from_file", cfg.MetricsNamespace)
	require.True(t, cfg.Lenient)
	require.InDelta(t, 5, cfg.RateLimit, 0)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, trace.DecimalRoundingEvents, cfg.TraceDetails)
	require.Equal(t, int32(64), cfg.MaxScale)
	require.Equal(t, LogFormatText, cfg.LogFormat)
	require.True(t, cfg.LogColor)
}

func TestLoadMaxScale(t *testing.T) {
	for _, tt := range []struct {
		name string
		args []string
		exp  int32
		fail bool
	}{
		{name: "default", exp: DefaultMaxScale},
		{name: "unlimited", args: []string{"-max-scale", "0"}, exp: 0},
		{name: "custom", args: []string{"-max-scale", "1000"}, exp: 1000},
		{name: "negative", args: []string{"-max-scale", "-1"}, fail: true},
		{name: "too big", args: []string{"-max-scale", "2147483648"}, fail: true},
		{name: "not a number", args: []string{"-max-scale", "lots"}, fail: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.args, missingEnvFile(t))
			if tt.fail {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.exp, cfg.MaxScale)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-port", "1"}},
		{name: "unknown level", args: []string{"-log-level", "loud"}},
		{name: "positional", args: []string{"serve"}},
		{name: "negative rate", args: []string{"-rate-limit", "-1"}},
		{name: "zero burst", args: []string{"-rate-burst", "0"}},
		{name: "zero timeout", args: []string{"-shutdown-timeout", "0s"}},
		{name: "empty addr", args: []string{"-addr", ""}},
		{name: "unknown log format", args: []string{"-log-format", "xml"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, missingEnvFile(t))
			require.Error(t, err)
		})
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := Load([]string{"-h"}, missingEnvFile(t))
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestLoadBadLevelFromEnv(t *testing.T) {
	t.Setenv("KBIGNUM_LOG_LEVEL", "verbose")
	_, err := Load(nil, missingEnvFile(t))
	require.Error(t, err)
}
