package log

import (
	"github.com/ydb-platform/ydb-go-bignum/internal/kv"
)

type (
	Field = kv.KeyValue
)

const (
	IntType      = kv.IntType
	Int64Type    = kv.Int64Type
	StringType   = kv.StringType
	BoolType     = kv.BoolType
	DurationType = kv.DurationType
	StringsType  = kv.StringsType
	ErrorType    = kv.ErrorType
	AnyType      = kv.AnyType
	StringerType = kv.StringerType
)

var (
	Int        = kv.Int
	Int64      = kv.Int64
	String     = kv.String
	Bool       = kv.Bool
	Duration   = kv.Duration
	Strings    = kv.Strings
	NamedError = kv.NamedError
	Error      = kv.Error
	Any        = kv.Any
	Stringer   = kv.Stringer
)

func appendFieldByCondition(condition bool, ifTrueField Field, fields ...Field) []Field {
	if condition {
		fields = append(fields, ifTrueField)
	}

	return fields
}
