// Package zaplog makes log.Logger over zap.
package zaplog

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ydb-platform/ydb-go-bignum/internal/kv"
	"github.com/ydb-platform/ydb-go-bignum/log"
)

var _ log.Logger = (*Logger)(nil)

type Logger struct {
	l *zap.Logger
}

func New(l *zap.Logger) *Logger {
	return &Logger{l: l}
}

// Log writes message with level and names taken from ctx. FATAL is written
// as error: a failed calculation must never stop the process.
func (l *Logger) Log(ctx context.Context, msg string, fields ...log.Field) {
	lvl := level(log.LevelFromContext(ctx))
	if lvl == zapcore.InvalidLevel {
		return
	}
	logger := l.l
	if names := log.NamesFromContext(ctx); len(names) > 0 {
		logger = logger.Named(strings.Join(names, "."))
	}
	if ce := logger.Check(lvl, msg); ce != nil {
		ce.Write(Fields(fields)...)
	}
}

func level(lvl log.Level) zapcore.Level {
	switch lvl {
	case log.TRACE, log.DEBUG:
		return zapcore.DebugLevel
	case log.INFO:
		return zapcore.InfoLevel
	case log.WARN:
		return zapcore.WarnLevel
	case log.ERROR, log.FATAL:
		return zapcore.ErrorLevel
	default:
		return zapcore.InvalidLevel
	}
}

// Fields converts kv fields to zap ones keeping their types.
func Fields(fields []log.Field) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type() {
		case kv.IntType:
			zf = append(zf, zap.Int(f.Key(), f.IntValue()))
		case kv.Int64Type:
			zf = append(zf, zap.Int64(f.Key(), f.Int64Value()))
		case kv.StringType:
			zf = append(zf, zap.String(f.Key(), f.StringValue()))
		case kv.BoolType:
			zf = append(zf, zap.Bool(f.Key(), f.BoolValue()))
		case kv.DurationType:
			zf = append(zf, zap.Duration(f.Key(), f.DurationValue()))
		case kv.StringsType:
			zf = append(zf, zap.Strings(f.Key(), f.StringsValue()))
		case kv.ErrorType:
			zf = append(zf, zap.NamedError(f.Key(), f.ErrorValue()))
		case kv.StringerType:
			zf = append(zf, zap.Stringer(f.Key(), f.Stringer()))
		default:
			zf = append(zf, zap.Any(f.Key(), f.AnyValue()))
		}
	}

	return zf
}
