package decimal

import (
	"math/big"

	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

// DefaultMaxScale bounds requested and operand scales unless configured
// otherwise. 10^DefaultMaxScale takes about 27KiB.
const DefaultMaxScale int32 = 1 << 16

var (
	ten = big.NewInt(10)
	two = big.NewInt(2)
	one = big.NewInt(1)

	// pow10s holds 10^0..10^(len-1). Entries are shared and must not be modified.
	pow10s = func() (p [40]*big.Int) {
		p[0] = big.NewInt(1)
		for i := 1; i < len(p); i++ {
			p[i] = new(big.Int).Mul(p[i-1], ten)
		}

		return p
	}()
)

// pow10 returns 10^n. The result must be treated as read-only.
func pow10(n int32) *big.Int {
	if n < int32(len(pow10s)) {
		return pow10s[n]
	}

	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// CheckScale fails with ErrInvalidScale when scale is above limit.
// Non-positive limit disables the check.
func CheckScale(scale, limit int32) error {
	if limit > 0 && scale > limit {
		return xerrors.WithStackTrace(limitError(scale, limit))
	}

	return nil
}

// ScaleUp returns x * 10^(target-current). It never reduces scale: when
// target <= current x is returned as is.
func ScaleUp(x *big.Int, current, target int32) *big.Int {
	if target <= current {
		return x
	}

	return new(big.Int).Mul(x, pow10(target-current))
}

// Align brings a and b to the common scale max(a.Scale, b.Scale).
func Align(a, b ScaledInteger) (x, y *big.Int, scale int32) {
	scale = max(a.Scale, b.Scale)

	return ScaleUp(a.Unscaled, a.Scale, scale), ScaleUp(b.Unscaled, b.Scale, scale), scale
}
