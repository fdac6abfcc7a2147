package decimal

import (
	"math/big"
	"strings"
)

// RoundingMode determines how a scale reduction resolves discarded digits.
// Numeric values are the codes used at the C boundary.
type RoundingMode int32

const (
	Up       RoundingMode = iota // away from zero
	Down                         // toward zero
	Ceiling                      // toward +Inf
	Floor                        // toward -Inf
	HalfUp                       // to nearest, ties away from zero
	HalfDown                     // to nearest, ties toward zero
	HalfEven                     // to nearest, ties to even neighbour
)

var roundingModeNames = [...]string{
	Up:       "UP",
	Down:     "DOWN",
	Ceiling:  "CEILING",
	Floor:    "FLOOR",
	HalfUp:   "HALF_UP",
	HalfDown: "HALF_DOWN",
	HalfEven: "HALF_EVEN",
}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingModeNames) {
		return roundingModeNames[Down]
	}

	return roundingModeNames[m]
}

// RoundingModeFromCode maps boundary code 0..6 to RoundingMode.
// Unknown codes fall back to Down (truncation).
func RoundingModeFromCode(code int32) RoundingMode {
	if code < 0 || int(code) >= len(roundingModeNames) {
		return Down
	}

	return RoundingMode(code)
}

// ParseRoundingMode looks up mode by name like "HALF_EVEN" or "half-even".
func ParseRoundingMode(name string) (RoundingMode, bool) {
	name = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for m, n := range roundingModeNames {
		if n == name {
			return RoundingMode(m), true
		}
	}

	return Down, false
}

// Accuracy describes the rounding error of a result relative to the exact value.
type Accuracy int8

const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

func (a Accuracy) String() string {
	switch a {
	case Below:
		return "Below"
	case Above:
		return "Above"
	default:
		return "Exact"
	}
}

// makeAcc returns the accuracy of a truncated quotient which was moved
// (away from zero) or not.
func makeAcc(moved, negative bool) Accuracy {
	if moved != negative {
		return Above
	}

	return Below
}

// Round resolves truncated quotient q of a division with non-zero remainder r
// by divisor into the final quotient according to mode. negative is the sign
// of the value being divided. q is not modified.
func Round(negative bool, q, r, divisor *big.Int, mode RoundingMode) (*big.Int, Accuracy) {
	var move bool
	switch mode {
	case Up:
		move = true
	case Ceiling:
		move = !negative
	case Floor:
		move = negative
	case HalfUp, HalfDown, HalfEven:
		half := new(big.Int).Abs(r)
		half.Mul(half, two)
		switch half.CmpAbs(divisor) {
		case 1:
			move = true
		case 0:
			switch mode {
			case HalfUp:
				move = true
			case HalfEven:
				move = q.Bit(0) == 1
			}
		}
	}

	z := new(big.Int).Set(q)
	if move {
		if negative {
			z.Sub(z, one)
		} else {
			z.Add(z, one)
		}
	}

	return z, makeAcc(move, negative)
}
