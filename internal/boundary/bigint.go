package boundary

import (
	"math/big"

	"github.com/ydb-platform/ydb-go-bignum/internal/bigint"
	"github.com/ydb-platform/ydb-go-bignum/internal/buffer"
)

func binaryOp(a, b []byte, op func(x, y *big.Int) (*big.Int, error)) *buffer.Bytes {
	x, y, err := binaries(a, b)
	if err != nil {
		return nil
	}

	return bytesResult(op(x, y))
}

func textOp(a, b []byte, op func(x, y *big.Int) (*big.Int, error)) *buffer.Text {
	x, y, err := integers(a, b)
	if err != nil {
		return nil
	}

	return intResult(op(x, y))
}

func total(f func(x, y *big.Int) *big.Int) func(x, y *big.Int) (*big.Int, error) {
	return func(x, y *big.Int) (*big.Int, error) {
		return f(x, y), nil
	}
}

func BigintFromStringBytes(s []byte) *buffer.Bytes {
	return bytesResult(integer(s))
}

func BigintToStringBytes(p []byte) *buffer.Text {
	return intResult(binary(p))
}

func BigintAddBytes(a, b []byte) *buffer.Bytes {
	return binaryOp(a, b, total(bigint.Add))
}

func BigintSubtractBytes(a, b []byte) *buffer.Bytes {
	return binaryOp(a, b, total(bigint.Subtract))
}

func BigintMultiplyBytes(a, b []byte) *buffer.Bytes {
	return binaryOp(a, b, total(bigint.Multiply))
}

func BigintDivideBytes(a, b []byte) *buffer.Bytes {
	return binaryOp(a, b, bigint.Divide)
}

func BigintModBytes(a, b []byte) *buffer.Bytes {
	return binaryOp(a, b, bigint.Mod)
}

func BigintAbsBytes(p []byte) *buffer.Bytes {
	x, err := binary(p)
	if err != nil {
		return nil
	}

	return bytesResult(bigint.Abs(x), nil)
}

func BigintSignumBytes(p []byte) int32 {
	x, err := binary(p)
	if err != nil {
		return 0
	}

	return int32(bigint.Signum(x))
}

func BigintCompareBytes(a, b []byte) int32 {
	x, y, err := binaries(a, b)
	if err != nil {
		return 0
	}

	return int32(bigint.Compare(x, y))
}

// BigintToLongBytes is zero when p is null or does not fit into int64.
func BigintToLongBytes(p []byte) int64 {
	x, err := binary(p)
	if err != nil {
		return 0
	}
	v, err := bigint.ToInt64(x)
	if err != nil {
		return 0
	}

	return v
}

func BigintAdd(a, b []byte) *buffer.Text {
	return textOp(a, b, total(bigint.Add))
}

func BigintSubtract(a, b []byte) *buffer.Text {
	return textOp(a, b, total(bigint.Subtract))
}

func BigintMultiply(a, b []byte) *buffer.Text {
	return textOp(a, b, total(bigint.Multiply))
}

func BigintDivide(a, b []byte) *buffer.Text {
	return textOp(a, b, bigint.Divide)
}

func BigintMod(a, b []byte) *buffer.Text {
	return textOp(a, b, bigint.Mod)
}

func BigintPow(base []byte, exponent uint32) *buffer.Text {
	x, err := integer(base)
	if err != nil {
		return nil
	}

	return intResult(bigint.Pow(x, exponent), nil)
}

func BigintAbs(a []byte) *buffer.Text {
	x, err := integer(a)
	if err != nil {
		return nil
	}

	return intResult(bigint.Abs(x), nil)
}

func BigintSignum(a []byte) int32 {
	x, err := integer(a)
	if err != nil {
		return 0
	}

	return int32(bigint.Signum(x))
}

func BigintCompare(a, b []byte) int32 {
	x, y, err := integers(a, b)
	if err != nil {
		return 0
	}

	return int32(bigint.Compare(x, y))
}

func BigintGCD(a, b []byte) *buffer.Text {
	return textOp(a, b, total(bigint.GCD))
}

func BigintToLong(a []byte) int64 {
	x, err := integer(a)
	if err != nil {
		return 0
	}
	v, err := bigint.ToInt64(x)
	if err != nil {
		return 0
	}

	return v
}
