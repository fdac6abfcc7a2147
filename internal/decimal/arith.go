package decimal

import (
	"math"
	"math/big"

	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

// Add returns a+b at scale max(a.Scale, b.Scale, scale).
// A requested scale below the natural one is ignored: Add never truncates.
func Add(a, b ScaledInteger, scale int32) ScaledInteger {
	x, y, s := Align(a, b)
	z := new(big.Int).Add(x, y)

	return widen(z, s, scale)
}

// Subtract returns a-b at scale max(a.Scale, b.Scale, scale).
func Subtract(a, b ScaledInteger, scale int32) ScaledInteger {
	x, y, s := Align(a, b)
	z := new(big.Int).Sub(x, y)

	return widen(z, s, scale)
}

// Multiply returns a*b at scale max(a.Scale+b.Scale, scale).
func Multiply(a, b ScaledInteger, scale int32) ScaledInteger {
	z := new(big.Int).Mul(a.Unscaled, b.Unscaled)

	return widen(z, a.Scale+b.Scale, scale)
}

// widen pads z from its natural scale up to requested one if the latter is bigger.
func widen(z *big.Int, natural, requested int32) ScaledInteger {
	if requested > natural {
		return ScaledInteger{Unscaled: ScaleUp(z, natural, requested), Scale: requested}
	}

	return ScaledInteger{Unscaled: z, Scale: natural}
}

// Divide returns a/b at given scale, truncated toward zero.
func Divide(a, b ScaledInteger, scale int32) (ScaledInteger, error) {
	if b.Unscaled.Sign() == 0 {
		return ScaledInteger{}, xerrors.WithStackTrace(xerrors.ErrDivisionByZero)
	}
	if scale < 0 {
		return ScaledInteger{}, xerrors.WithStackTrace(scaleError(scale))
	}

	u, v := a.Unscaled, b.Unscaled
	switch p := int64(scale) + int64(b.Scale) - int64(a.Scale); {
	case p > math.MaxInt32 || p < -math.MaxInt32:
		return ScaledInteger{}, xerrors.WithStackTrace(scaleError(scale))
	case p > 0:
		u = ScaleUp(u, 0, int32(p))
	case p < 0:
		v = ScaleUp(v, 0, int32(-p))
	}

	return ScaledInteger{Unscaled: new(big.Int).Quo(u, v), Scale: scale}, nil
}

// Abs returns |a| with the same scale.
func Abs(a ScaledInteger) ScaledInteger {
	return ScaledInteger{Unscaled: new(big.Int).Abs(a.Unscaled), Scale: a.Scale}
}

// Signum returns -1, 0 or 1.
func Signum(a ScaledInteger) int {
	return a.Unscaled.Sign()
}

// Compare returns -1, 0 or 1 as a is less, equal or greater than b numerically.
// Trailing zeros do not matter: Compare(1.0, 1.00) == 0.
func Compare(a, b ScaledInteger) int {
	x, y, _ := Align(a, b)

	return x.Cmp(y)
}

// SetScale returns a with exactly target fractional digits. Increasing the
// scale pads zeros; decreasing it divides by a power of ten and resolves
// the remainder with mode.
func SetScale(a ScaledInteger, target int32, mode RoundingMode) (ScaledInteger, Accuracy, error) {
	if target < 0 {
		return ScaledInteger{}, Exact, xerrors.WithStackTrace(scaleError(target))
	}
	if target >= a.Scale {
		return ScaledInteger{Unscaled: ScaleUp(a.Unscaled, a.Scale, target), Scale: target}, Exact, nil
	}

	divisor := pow10(a.Scale - target)
	q, r := new(big.Int).QuoRem(a.Unscaled, divisor, new(big.Int))
	if r.Sign() == 0 {
		return ScaledInteger{Unscaled: q, Scale: target}, Exact, nil
	}
	z, acc := Round(a.Unscaled.Sign() < 0, q, r, divisor, mode)

	return ScaledInteger{Unscaled: z, Scale: target}, acc, nil
}

// ToInteger drops the fractional part of a (truncation toward zero).
func ToInteger(a ScaledInteger) *big.Int {
	if a.Scale <= 0 {
		return new(big.Int).Set(a.Unscaled)
	}

	return new(big.Int).Quo(a.Unscaled, pow10(a.Scale))
}
