package bigint

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

type ParseError struct {
	Err   error
	Input string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf(
		"bigint: parse %q: %v", p.Input, p.Err,
	)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

// Parse interprets s as a base-10 signed integer. One leading '+' is allowed.
func Parse(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimPrefix(s, "+"), 10)
	if !ok {
		return nil, xerrors.WithStackTrace(&ParseError{
			Err:   xerrors.ErrInvalidNumber,
			Input: s,
		})
	}

	return v, nil
}
