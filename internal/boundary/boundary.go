// Package boundary flattens typed results of decimal and bigint operations
// into the sentinel-based results of the C surface: a nil buffer for
// operations returning text or bytes, zero for numeric ones.
//
// C strings and byte arrays are modeled as byte slices, nil stands for
// a null pointer.
package boundary

import (
	"math/big"
	"unicode/utf8"

	"github.com/ydb-platform/ydb-go-bignum/internal/bigint"
	"github.com/ydb-platform/ydb-go-bignum/internal/buffer"
	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

func text(p []byte) (string, error) {
	if p == nil || !utf8.Valid(p) {
		return "", xerrors.WithStackTrace(xerrors.ErrInvalidEncoding, xerrors.WithSkipDepth(1))
	}

	return string(p), nil
}

func integer(p []byte) (*big.Int, error) {
	s, err := text(p)
	if err != nil {
		return nil, err
	}

	return bigint.Parse(s)
}

func integers(a, b []byte) (x, y *big.Int, err error) {
	if x, err = integer(a); err != nil {
		return nil, nil, err
	}
	if y, err = integer(b); err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

func binary(p []byte) (*big.Int, error) {
	if p == nil {
		return nil, xerrors.WithStackTrace(xerrors.ErrInvalidEncoding, xerrors.WithSkipDepth(1))
	}

	return bigint.FromBytes(p), nil
}

func binaries(a, b []byte) (x, y *big.Int, err error) {
	if x, err = binary(a); err != nil {
		return nil, nil, err
	}
	if y, err = binary(b); err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

func bytesResult(x *big.Int, err error) *buffer.Bytes {
	if err != nil {
		return nil
	}

	return buffer.NewBytes(bigint.Bytes(x))
}

func intResult(x *big.Int, err error) *buffer.Text {
	if err != nil {
		return nil
	}

	return buffer.NewText(x.String())
}
