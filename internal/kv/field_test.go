package kv

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stringerTest string

func (s stringerTest) String() string {
	return string(s)
}

func TestField_String(t *testing.T) {
	for _, tt := range []struct {
		f     KeyValue
		want  string
		panic bool
	}{
		{f: Int("int", 1), want: "1"},
		{f: Int64("int64", 9223372036854775807), want: "9223372036854775807"},
		{f: String("string", "912.579"), want: "912.579"},
		{f: Bool("bool", true), want: "true"},
		{f: Duration("duration", time.Hour), want: time.Hour.String()},
		{f: Strings("strings", []string{"123.45", "12.34"}), want: "[123.45 12.34]"},
		{f: NamedError("named_error", errors.New("named error")), want: "named error"},
		{f: Error(errors.New("error")), want: "error"},
		{f: Error(nil), want: "<nil>"},
		{f: Any("any_int", 1), want: "1"},
		{f: Any("any_nil", nil), want: "<nil>"},
		{f: Stringer("stringer", stringerTest("HALF_EVEN")), want: "HALF_EVEN"},
		{f: Stringer("stringer_nil", nil), want: "<nil>"},
		{f: KeyValue{ftype: InvalidType, key: "invalid"}, panic: true},
	} {
		t.Run(tt.f.key, func(t *testing.T) {
			if tt.panic {
				require.Panics(t, func() { _ = tt.f.String() })

				return
			}
			require.Equal(t, tt.want, tt.f.String())
		})
	}
}

func TestField_AnyValue(t *testing.T) {
	for _, tt := range []struct {
		name string
		f    KeyValue
		want interface{}
	}{
		{name: "int", f: Int("any", 1), want: 1},
		{name: "int64", f: Int64("any", -1), want: int64(-1)},
		{name: "string", f: String("any", "0.045"), want: "0.045"},
		{name: "bool", f: Bool("any", false), want: false},
		{name: "duration", f: Duration("any", time.Second), want: time.Second},
		{name: "[]string", f: Strings("any", []string{"a", "b"}), want: []string{"a", "b"}},
		{name: "error", f: Error(errors.New("error")), want: errors.New("error")},
		{name: "namedError", f: NamedError("any", nil), want: nil},
		{name: "stringer", f: Stringer("any", stringerTest("UP")), want: stringerTest("UP")},
		{name: "any_struct", f: Any("any", struct{ s string }{s: "x"}), want: struct{ s string }{s: "x"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.f.AnyValue())
		})
	}
}

func TestFieldType_String(t *testing.T) {
	require.Equal(t, "int64", Int64Type.String())
	require.Equal(t, "invalid", FieldType(100).String())
}
