package bigint

import (
	"math/big"
)

var one = big.NewInt(1)

// FromBytes interprets p as big-endian two's complement signed integer of
// any length. Empty p is zero.
func FromBytes(p []byte) *big.Int {
	v := big.NewInt(0)
	if len(p) == 0 {
		return v
	}
	if p[0]&0x80 == 0 {
		return v.SetBytes(p)
	}

	// Given bytes contains negative value: -x = ^p + 1
	v.SetBytes(not(p))
	v.Add(v, one)

	return v.Neg(v)
}

// Bytes returns the shortest big-endian two's complement representation of x.
// Zero is encoded as single zero byte.
func Bytes(x *big.Int) []byte {
	switch x.Sign() {
	case 0:
		return []byte{0}
	case 1:
		p := x.Bytes()
		if p[0]&0x80 != 0 {
			return append([]byte{0}, p...)
		}

		return p
	default:
		// ^(|x|-1) in the minimal width keeping the sign bit set
		m := new(big.Int).Neg(x)
		m.Sub(m, one)
		p := not(m.Bytes())
		if len(p) == 0 || p[0]&0x80 == 0 {
			return append([]byte{0xff}, p...)
		}

		return p
	}
}

// not returns bitwise complement of p as a new slice.
func not(p []byte) []byte {
	q := make([]byte, len(p))
	for i, b := range p {
		q[i] = ^b
	}

	return q
}
