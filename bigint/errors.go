package bigint

import (
	"github.com/ydb-platform/ydb-go-bignum/internal/bigint"
	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

var (
	ErrInvalidEncoding    = xerrors.ErrInvalidEncoding
	ErrInvalidNumber      = xerrors.ErrInvalidNumber
	ErrDivisionByZero     = xerrors.ErrDivisionByZero
	ErrConversionOverflow = xerrors.ErrConversionOverflow
)

type ParseError = bigint.ParseError

// Kind returns name of failure class of err, like "ConversionOverflow".
func Kind(err error) string {
	return xerrors.Kind(err)
}
