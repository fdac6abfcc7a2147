package decimal

import (
	"github.com/ydb-platform/ydb-go-bignum/internal/decimal"
)

type RoundingMode = decimal.RoundingMode

const (
	Up       = decimal.Up
	Down     = decimal.Down
	Ceiling  = decimal.Ceiling
	Floor    = decimal.Floor
	HalfUp   = decimal.HalfUp
	HalfDown = decimal.HalfDown
	HalfEven = decimal.HalfEven
)

// ParseRoundingMode accepts names like "HALF_EVEN", "half-even" or "ceiling".
func ParseRoundingMode(name string) (RoundingMode, bool) {
	return decimal.ParseRoundingMode(name)
}
