package decimal

import (
	"fmt"

	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

type ParseError struct {
	Err   error
	Input string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf(
		"decimal: parse %q: %v", p.Input, p.Err,
	)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

func syntaxError(s string) *ParseError {
	return &ParseError{
		Err:   xerrors.ErrInvalidNumber,
		Input: s,
	}
}

func scaleError(scale int32) error {
	return fmt.Errorf("%w: %d", xerrors.ErrInvalidScale, scale)
}

func limitError(scale, limit int32) error {
	return fmt.Errorf("%w: %d exceeds limit %d", xerrors.ErrInvalidScale, scale, limit)
}
