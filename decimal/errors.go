package decimal

import (
	"github.com/ydb-platform/ydb-go-bignum/internal/decimal"
	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

var (
	ErrInvalidEncoding = xerrors.ErrInvalidEncoding
	ErrInvalidNumber   = xerrors.ErrInvalidNumber
	ErrDivisionByZero  = xerrors.ErrDivisionByZero
	ErrInvalidScale    = xerrors.ErrInvalidScale
)

// DefaultMaxScale is the scale limit of calculators created without WithMaxScale.
const DefaultMaxScale = decimal.DefaultMaxScale

// ParseError describes malformed decimal text. It wraps ErrInvalidNumber.
type ParseError = decimal.ParseError

// Kind returns name of failure class of err, like "DivisionByZero".
func Kind(err error) string {
	return xerrors.Kind(err)
}
