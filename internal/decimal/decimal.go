package decimal

import (
	"math/big"
)

// ScaledInteger is a fixed-point decimal value equal to Unscaled * 10^-Scale.
//
// Values produced by Parse never have negative Scale. Format renders any
// Scale <= 0 without fractional digits.
type ScaledInteger struct {
	Unscaled *big.Int
	Scale    int32
}

// New returns ScaledInteger over a copy of x.
func New(x *big.Int, scale int32) ScaledInteger {
	return ScaledInteger{
		Unscaled: new(big.Int).Set(x),
		Scale:    scale,
	}
}

// Zero returns zero value with given scale.
func Zero(scale int32) ScaledInteger {
	return ScaledInteger{
		Unscaled: new(big.Int),
		Scale:    scale,
	}
}

func (v ScaledInteger) String() string {
	return Format(v.Unscaled, v.Scale)
}

// Sign returns -1, 0 or 1.
func (v ScaledInteger) Sign() int {
	if v.Unscaled == nil {
		return 0
	}

	return v.Unscaled.Sign()
}
