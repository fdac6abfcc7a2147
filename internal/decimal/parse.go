package decimal

import (
	"math"
	"math/big"
	"strings"

	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

// Parse interprets s as a plain decimal number like "-123.45" and returns
// its unscaled digits and scale (count of fractional digits).
//
// One leading '+' or '-' is allowed, a sign anywhere else is rejected. Exponential notation is not supported.
func Parse(s string) (ScaledInteger, error) {
	digits, scale, ok := split(s)
	if !ok {
		return ScaledInteger{}, xerrors.WithStackTrace(syntaxError(s))
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return ScaledInteger{}, xerrors.WithStackTrace(syntaxError(s))
	}

	return ScaledInteger{Unscaled: v, Scale: scale}, nil
}

// ParseLenient is like Parse but substitutes zero for text which is not a
// number. Scale of the result is still derived from the position of the
// decimal point, so ParseLenient("1.2x") is zero with scale 2.
func ParseLenient(s string) ScaledInteger {
	digits, scale, ok := split(s)
	if !ok {
		return Zero(0)
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Zero(scale)
	}

	return ScaledInteger{Unscaled: v, Scale: scale}
}

// split removes the decimal point from s and reports the length of the
// fractional part. Digits carrying a sign past the first character are
// returned empty so that they never parse.
func split(s string) (digits string, scale int32, ok bool) {
	s = strings.TrimSpace(s)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		dot = len(s)
		s += "."
	}
	frac := s[dot+1:]
	if len(frac) > math.MaxInt32 {
		return "", 0, false
	}
	digits = s[:dot] + frac
	if strings.ContainsAny(digits, "+-") {
		return "", int32(len(frac)), true
	}

	return sign + digits, int32(len(frac)), true
}
