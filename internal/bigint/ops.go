package bigint

import (
	"math/big"

	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

func Subtract(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

func Multiply(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

// Divide returns a/b truncated toward zero.
func Divide(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, xerrors.WithStackTrace(xerrors.ErrDivisionByZero)
	}

	return new(big.Int).Quo(a, b), nil
}

// Mod returns remainder of truncated division. Its sign follows a.
func Mod(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, xerrors.WithStackTrace(xerrors.ErrDivisionByZero)
	}

	return new(big.Int).Rem(a, b), nil
}

func Pow(base *big.Int, exponent uint32) *big.Int {
	return new(big.Int).Exp(base, big.NewInt(int64(exponent)), nil)
}

func Abs(a *big.Int) *big.Int {
	return new(big.Int).Abs(a)
}

func Signum(a *big.Int) int {
	return a.Sign()
}

func Compare(a, b *big.Int) int {
	return a.Cmp(b)
}

// GCD is never negative. GCD(0, 0) == 0.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// ToInt64 fails with ErrConversionOverflow if a does not fit into int64.
func ToInt64(a *big.Int) (int64, error) {
	if !a.IsInt64() {
		return 0, xerrors.WithStackTrace(xerrors.ErrConversionOverflow)
	}

	return a.Int64(), nil
}
