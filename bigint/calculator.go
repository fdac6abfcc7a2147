// Package bigint exposes arbitrary-precision integer operations over
// base-10 text and over big-endian two's complement byte arrays.
package bigint

import (
	"context"
	"math/big"
	"unicode/utf8"

	"github.com/ydb-platform/ydb-go-bignum/internal/bigint"
	"github.com/ydb-platform/ydb-go-bignum/internal/stack"
	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

type caller interface {
	FunctionID() string
}

// Calculator is immutable after New and safe for concurrent use.
type Calculator struct {
	trace *trace.Bigint
}

func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

type call struct {
	ctx    context.Context //nolint:containedctx
	trace  *trace.Bigint
	caller caller
}

func (cc *call) parse(s string) (_ *big.Int, err error) {
	onDone := trace.BigintOnParse(cc.trace, &cc.ctx, cc.caller, s)
	defer func() {
		onDone(err)
	}()

	if !utf8.ValidString(s) {
		return nil, xerrors.WithStackTrace(xerrors.ErrInvalidEncoding)
	}

	return bigint.Parse(s)
}

// begin starts operation traced as called from function depth frames above begin
func (c *Calculator) begin(ctx context.Context, operation string, depth int) (*call, func(string, error)) {
	cc := &call{
		ctx:    ctx,
		trace:  trace.ContextBigint(ctx).Compose(c.trace),
		caller: stack.Call(depth + 1),
	}

	return cc, trace.BigintOnOperation(cc.trace, &cc.ctx, cc.caller, operation)
}

// text parses args and formats result of f in base 10.
func (c *Calculator) text(ctx context.Context, operation string, args []string,
	f func(xs []*big.Int) (*big.Int, error),
) (result string, finalErr error) {
	cc, onDone := c.begin(ctx, operation, 1)
	defer func() {
		onDone(result, finalErr)
	}()

	xs := make([]*big.Int, len(args))
	for i, s := range args {
		x, err := cc.parse(s)
		if err != nil {
			return "", err
		}
		xs[i] = x
	}
	v, err := f(xs)
	if err != nil {
		return "", err
	}

	return v.String(), nil
}

// binary decodes args and encodes result of f as minimal two's complement.
// Empty array is zero.
func (c *Calculator) binary(ctx context.Context, operation string, args [][]byte,
	f func(xs []*big.Int) (*big.Int, error),
) (result []byte, finalErr error) {
	_, onDone := c.begin(ctx, operation, 1)
	defer func() {
		var s string
		if finalErr == nil {
			s = bigint.FromBytes(result).String()
		}
		onDone(s, finalErr)
	}()

	xs := make([]*big.Int, len(args))
	for i, p := range args {
		xs[i] = bigint.FromBytes(p)
	}
	v, err := f(xs)
	if err != nil {
		return nil, err
	}

	return bigint.Bytes(v), nil
}

func total(f func(a, b *big.Int) *big.Int) func(xs []*big.Int) (*big.Int, error) {
	return func(xs []*big.Int) (*big.Int, error) {
		return f(xs[0], xs[1]), nil
	}
}

func partial(f func(a, b *big.Int) (*big.Int, error)) func(xs []*big.Int) (*big.Int, error) {
	return func(xs []*big.Int) (*big.Int, error) {
		return f(xs[0], xs[1])
	}
}

func (c *Calculator) Add(ctx context.Context, a, b string) (string, error) {
	return c.text(ctx, "add", []string{a, b}, total(bigint.Add))
}

func (c *Calculator) Subtract(ctx context.Context, a, b string) (string, error) {
	return c.text(ctx, "subtract", []string{a, b}, total(bigint.Subtract))
}

func (c *Calculator) Multiply(ctx context.Context, a, b string) (string, error) {
	return c.text(ctx, "multiply", []string{a, b}, total(bigint.Multiply))
}

// Divide truncates toward zero.
func (c *Calculator) Divide(ctx context.Context, a, b string) (string, error) {
	return c.text(ctx, "divide", []string{a, b}, partial(bigint.Divide))
}

// Mod is remainder of Divide, its sign follows a.
func (c *Calculator) Mod(ctx context.Context, a, b string) (string, error) {
	return c.text(ctx, "mod", []string{a, b}, partial(bigint.Mod))
}

func (c *Calculator) Pow(ctx context.Context, base string, exponent uint32) (string, error) {
	return c.text(ctx, "pow", []string{base}, func(xs []*big.Int) (*big.Int, error) {
		return bigint.Pow(xs[0], exponent), nil
	})
}

func (c *Calculator) Abs(ctx context.Context, a string) (string, error) {
	return c.text(ctx, "abs", []string{a}, func(xs []*big.Int) (*big.Int, error) {
		return bigint.Abs(xs[0]), nil
	})
}

// GCD is never negative.
func (c *Calculator) GCD(ctx context.Context, a, b string) (string, error) {
	return c.text(ctx, "gcd", []string{a, b}, total(bigint.GCD))
}

func (c *Calculator) Signum(ctx context.Context, a string) (sign int, _ error) {
	_, err := c.text(ctx, "signum", []string{a}, func(xs []*big.Int) (*big.Int, error) {
		sign = bigint.Signum(xs[0])

		return big.NewInt(int64(sign)), nil
	})
	if err != nil {
		return 0, err
	}

	return sign, nil
}

func (c *Calculator) Compare(ctx context.Context, a, b string) (cmp int, _ error) {
	_, err := c.text(ctx, "compare", []string{a, b}, func(xs []*big.Int) (*big.Int, error) {
		cmp = bigint.Compare(xs[0], xs[1])

		return big.NewInt(int64(cmp)), nil
	})
	if err != nil {
		return 0, err
	}

	return cmp, nil
}

// ToInt64 fails with ErrConversionOverflow when a does not fit into int64.
func (c *Calculator) ToInt64(ctx context.Context, a string) (v int64, _ error) {
	_, err := c.text(ctx, "to-long", []string{a}, toInt64(&v))
	if err != nil {
		return 0, err
	}

	return v, nil
}

func toInt64(dst *int64) func(xs []*big.Int) (*big.Int, error) {
	return func(xs []*big.Int) (*big.Int, error) {
		v, err := bigint.ToInt64(xs[0])
		if err != nil {
			return nil, err
		}
		*dst = v

		return xs[0], nil
	}
}

// FromString encodes base-10 text s as two's complement bytes.
func (c *Calculator) FromString(ctx context.Context, s string) (result []byte, finalErr error) {
	cc, onDone := c.begin(ctx, "from-string", 0)
	defer func() {
		onDone(s, finalErr)
	}()

	v, err := cc.parse(s)
	if err != nil {
		return nil, err
	}

	return bigint.Bytes(v), nil
}

// ToString decodes two's complement bytes p into base-10 text.
func (c *Calculator) ToString(ctx context.Context, p []byte) (string, error) {
	_, onDone := c.begin(ctx, "to-string", 0)
	s := bigint.FromBytes(p).String()
	onDone(s, nil)

	return s, nil
}

func (c *Calculator) AddBytes(ctx context.Context, a, b []byte) ([]byte, error) {
	return c.binary(ctx, "add", [][]byte{a, b}, total(bigint.Add))
}

func (c *Calculator) SubtractBytes(ctx context.Context, a, b []byte) ([]byte, error) {
	return c.binary(ctx, "subtract", [][]byte{a, b}, total(bigint.Subtract))
}

func (c *Calculator) MultiplyBytes(ctx context.Context, a, b []byte) ([]byte, error) {
	return c.binary(ctx, "multiply", [][]byte{a, b}, total(bigint.Multiply))
}

func (c *Calculator) DivideBytes(ctx context.Context, a, b []byte) ([]byte, error) {
	return c.binary(ctx, "divide", [][]byte{a, b}, partial(bigint.Divide))
}

func (c *Calculator) ModBytes(ctx context.Context, a, b []byte) ([]byte, error) {
	return c.binary(ctx, "mod", [][]byte{a, b}, partial(bigint.Mod))
}

func (c *Calculator) AbsBytes(ctx context.Context, p []byte) ([]byte, error) {
	return c.binary(ctx, "abs", [][]byte{p}, func(xs []*big.Int) (*big.Int, error) {
		return bigint.Abs(xs[0]), nil
	})
}

func (c *Calculator) SignumBytes(ctx context.Context, p []byte) (sign int, _ error) {
	_, err := c.binary(ctx, "signum", [][]byte{p}, func(xs []*big.Int) (*big.Int, error) {
		sign = bigint.Signum(xs[0])

		return big.NewInt(int64(sign)), nil
	})
	if err != nil {
		return 0, err
	}

	return sign, nil
}

func (c *Calculator) CompareBytes(ctx context.Context, a, b []byte) (cmp int, _ error) {
	_, err := c.binary(ctx, "compare", [][]byte{a, b}, func(xs []*big.Int) (*big.Int, error) {
		cmp = bigint.Compare(xs[0], xs[1])

		return big.NewInt(int64(cmp)), nil
	})
	if err != nil {
		return 0, err
	}

	return cmp, nil
}

func (c *Calculator) ToInt64Bytes(ctx context.Context, p []byte) (v int64, _ error) {
	_, err := c.binary(ctx, "to-long", [][]byte{p}, toInt64(&v))
	if err != nil {
		return 0, err
	}

	return v, nil
}
