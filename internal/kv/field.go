package kv

import (
	"fmt"
	"strconv"
	"time"
)

// KeyValue is a typed logging field. Integers and strings are kept
// without boxing, other kinds are stored as interface values.
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

type FieldType int

const (
	InvalidType FieldType = iota
	IntType
	Int64Type
	StringType
	BoolType
	DurationType
	StringsType
	ErrorType
	AnyType
	StringerType

	endType
)

var fieldTypeNames = [...]string{
	InvalidType:  "invalid",
	IntType:      "int",
	Int64Type:    "int64",
	StringType:   "string",
	BoolType:     "bool",
	DurationType: "time.Duration",
	StringsType:  "[]string",
	ErrorType:    "error",
	AnyType:      "any",
	StringerType: "stringer",
}

func (ft FieldType) String() string {
	if ft < 0 || ft >= endType {
		return fieldTypeNames[InvalidType]
	}

	return fieldTypeNames[ft]
}

func (f KeyValue) Type() FieldType {
	return f.ftype
}

func (f KeyValue) Key() string {
	return f.key
}

func (f KeyValue) StringValue() string {
	return f.vstr
}

func (f KeyValue) IntValue() int {
	return int(f.vint)
}

func (f KeyValue) Int64Value() int64 {
	return f.vint
}

func (f KeyValue) BoolValue() bool {
	return f.vint != 0
}

func (f KeyValue) DurationValue() time.Duration {
	return time.Duration(f.vint)
}

func (f KeyValue) StringsValue() []string {
	if f.vany == nil {
		return nil
	}
	v, _ := f.vany.([]string)

	return v
}

func (f KeyValue) ErrorValue() error {
	if f.vany == nil {
		return nil
	}
	v, _ := f.vany.(error)

	return v
}

func (f KeyValue) Stringer() fmt.Stringer {
	if f.vany == nil {
		return nil
	}
	v, _ := f.vany.(fmt.Stringer)

	return v
}

// AnyValue returns the field value as interface{} whatever the type is.
func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case IntType:
		return f.IntValue()
	case Int64Type:
		return f.Int64Value()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	case StringsType:
		return f.StringsValue()
	case ErrorType:
		return f.ErrorValue()
	case StringerType:
		return f.Stringer()
	default:
		return f.vany
	}
}

// String is a value representation used by text loggers. It panics on invalid field.
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case StringsType:
		return fmt.Sprintf("%v", f.StringsValue())
	case ErrorType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.ErrorValue().Error()
	case StringerType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.Stringer().String()
	case AnyType:
		if f.vany == nil {
			return "<nil>"
		}

		return fmt.Sprintf("%v", f.vany)
	default:
		panic(fmt.Sprintf("kv: unexpected field type %q of key %q", f.ftype, f.key))
	}
}

func Int(k string, v int) KeyValue {
	return KeyValue{ftype: IntType, key: k, vint: int64(v)}
}

func Int64(k string, v int64) KeyValue {
	return KeyValue{ftype: Int64Type, key: k, vint: v}
}

func String(k, v string) KeyValue {
	return KeyValue{ftype: StringType, key: k, vstr: v}
}

func Bool(k string, v bool) KeyValue {
	var vint int64
	if v {
		vint = 1
	}

	return KeyValue{ftype: BoolType, key: k, vint: vint}
}

func Duration(k string, v time.Duration) KeyValue {
	return KeyValue{ftype: DurationType, key: k, vint: v.Nanoseconds()}
}

func Strings(k string, v []string) KeyValue {
	return KeyValue{ftype: StringsType, key: k, vany: v}
}

func NamedError(k string, v error) KeyValue {
	return KeyValue{ftype: ErrorType, key: k, vany: v}
}

func Error(v error) KeyValue {
	return NamedError("error", v)
}

func Any(k string, v interface{}) KeyValue {
	return KeyValue{ftype: AnyType, key: k, vany: v}
}

func Stringer(k string, v fmt.Stringer) KeyValue {
	return KeyValue{ftype: StringerType, key: k, vany: v}
}

// Latency is the time passed since start.
func Latency(start time.Time) KeyValue {
	return Duration("latency", time.Since(start))
}
