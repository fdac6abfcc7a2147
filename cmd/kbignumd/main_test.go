package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ydb-platform/ydb-go-bignum/internal/config"
	"github.com/ydb-platform/ydb-go-bignum/log"
)

func TestTextLogger(t *testing.T) {
	ctx := log.WithNames(context.Background(), "kbignum", "decimal")
	for _, tt := range []struct {
		name     string
		cfg      config.Config
		level    log.Level
		contains string
		empty    bool
	}{
		{
			name:     "plain",
			cfg:      config.Config{LogLevel: log.INFO},
			level:    log.WARN,
			contains: " WARN kbignum.decimal: failed\n",
		},
		{
			name:     "colored",
			cfg:      config.Config{LogLevel: log.INFO, LogColor: true},
			level:    log.ERROR,
			contains: " \u001B[101mERROR\u001B[0m kbignum.decimal: failed\n",
		},
		{
			name:  "below level",
			cfg:   config.Config{LogLevel: log.ERROR},
			level: log.WARN,
			empty: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			textLogger(&buf, &tt.cfg).Log(log.WithLevel(ctx, tt.level), "failed")
			if tt.empty {
				require.Empty(t, buf.String())

				return
			}
			require.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestZapLevel(t *testing.T) {
	for _, tt := range []struct {
		level log.Level
		exp   zapcore.Level
	}{
		{level: log.TRACE, exp: zapcore.DebugLevel},
		{level: log.DEBUG, exp: zapcore.DebugLevel},
		{level: log.INFO, exp: zapcore.InfoLevel},
		{level: log.WARN, exp: zapcore.WarnLevel},
		{level: log.ERROR, exp: zapcore.ErrorLevel},
		{level: log.QUIET, exp: zapcore.FatalLevel},
	} {
		t.Run(tt.level.String(), func(t *testing.T) {
			require.Equal(t, tt.exp, zapLevel(tt.level))
		})
	}
}
