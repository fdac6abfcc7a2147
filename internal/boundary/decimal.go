package boundary

import (
	"github.com/ydb-platform/ydb-go-bignum/internal/buffer"
	"github.com/ydb-platform/ydb-go-bignum/internal/decimal"
)

func scaled(p []byte) (decimal.ScaledInteger, error) {
	s, err := text(p)
	if err != nil {
		return decimal.ScaledInteger{}, err
	}

	x, err := decimal.Parse(s)
	if err != nil {
		return x, err
	}

	return x, decimal.CheckScale(x.Scale, decimal.DefaultMaxScale)
}

func pair(a, b []byte) (x, y decimal.ScaledInteger, err error) {
	if x, err = scaled(a); err != nil {
		return x, y, err
	}
	if y, err = scaled(b); err != nil {
		return x, y, err
	}

	return x, y, nil
}

// decimalOp yields nil on any failure, including scales above
// decimal.DefaultMaxScale.
func decimalOp(a, b []byte, scale int32,
	op func(x, y decimal.ScaledInteger, scale int32) (decimal.ScaledInteger, error),
) *buffer.Text {
	if decimal.CheckScale(scale, decimal.DefaultMaxScale) != nil {
		return nil
	}
	x, y, err := pair(a, b)
	if err != nil {
		return nil
	}
	v, err := op(x, y, scale)
	if err != nil {
		return nil
	}

	return buffer.NewText(v.String())
}

func exact(f func(x, y decimal.ScaledInteger, scale int32) decimal.ScaledInteger) func(
	x, y decimal.ScaledInteger, scale int32,
) (decimal.ScaledInteger, error) {
	return func(x, y decimal.ScaledInteger, scale int32) (decimal.ScaledInteger, error) {
		return f(x, y, scale), nil
	}
}

func BigdecimalAdd(a, b []byte, scale int32) *buffer.Text {
	return decimalOp(a, b, scale, exact(decimal.Add))
}

func BigdecimalSubtract(a, b []byte, scale int32) *buffer.Text {
	return decimalOp(a, b, scale, exact(decimal.Subtract))
}

func BigdecimalMultiply(a, b []byte, scale int32) *buffer.Text {
	return decimalOp(a, b, scale, exact(decimal.Multiply))
}

func BigdecimalDivide(a, b []byte, scale int32) *buffer.Text {
	return decimalOp(a, b, scale, decimal.Divide)
}

func BigdecimalAbs(a []byte) *buffer.Text {
	x, err := scaled(a)
	if err != nil {
		return nil
	}

	return buffer.NewText(decimal.Abs(x).String())
}

func BigdecimalSignum(a []byte) int32 {
	x, err := scaled(a)
	if err != nil {
		return 0
	}

	return int32(decimal.Signum(x))
}

func BigdecimalCompare(a, b []byte) int32 {
	x, y, err := pair(a, b)
	if err != nil {
		return 0
	}

	return int32(decimal.Compare(x, y))
}

// BigdecimalSetScale returns a copy of the input text when scale is unchanged.
// Codes outside of 0..6 round DOWN.
func BigdecimalSetScale(a []byte, scale, roundingMode int32) *buffer.Text {
	if decimal.CheckScale(scale, decimal.DefaultMaxScale) != nil {
		return nil
	}
	x, err := scaled(a)
	if err != nil {
		return nil
	}
	if x.Scale == scale {
		return buffer.NewText(string(a))
	}
	v, _, err := decimal.SetScale(x, scale, decimal.RoundingModeFromCode(roundingMode))
	if err != nil {
		return nil
	}

	return buffer.NewText(v.String())
}

func BigdecimalToBiginteger(a []byte) *buffer.Text {
	x, err := scaled(a)
	if err != nil {
		return nil
	}

	return buffer.NewText(decimal.ToInteger(x).String())
}
