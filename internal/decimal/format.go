package decimal

import (
	"math/big"

	"github.com/ydb-platform/ydb-go-bignum/internal/xstring"
)

// Format returns the canonical text of x * 10^-scale.
//
// For scale <= 0 it is the plain integer text of x. Otherwise at least one
// digit precedes the decimal point: Format(45, 3) == "0.045".
func Format(x *big.Int, scale int32) string {
	if x == nil {
		return "0"
	}
	if scale <= 0 {
		return x.String()
	}

	neg := x.Sign() < 0
	digits := new(big.Int).Abs(x).String()

	b := xstring.Buffer()
	defer b.Free()

	if neg {
		b.WriteByte('-')
	}
	if n := int(scale); len(digits) <= n {
		b.WriteString("0.")
		for i := len(digits); i < n; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	} else {
		pos := len(digits) - n
		b.WriteString(digits[:pos])
		b.WriteByte('.')
		b.WriteString(digits[pos:])
	}

	return b.String()
}
