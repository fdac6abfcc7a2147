// Package decimal implements fixed-point decimal arithmetic over text
// operands like "-123.450". Scale of a value is the number of digits after
// the decimal point.
package decimal

import (
	"context"
	"strconv"
	"unicode/utf8"

	"github.com/ydb-platform/ydb-go-bignum/internal/decimal"
	"github.com/ydb-platform/ydb-go-bignum/internal/stack"
	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

type caller interface {
	FunctionID() string
}

// Calculator is immutable after New and safe for concurrent use.
type Calculator struct {
	trace    *trace.Decimal
	lenient  bool
	maxScale int32
}

func New(opts ...Option) *Calculator {
	c := &Calculator{
		maxScale: DefaultMaxScale,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

type call struct {
	ctx    context.Context //nolint:containedctx
	trace  *trace.Decimal
	caller caller
}

func (c *Calculator) parse(cc *call, s string) (decimal.ScaledInteger, error) {
	onDone := trace.DecimalOnParse(cc.trace, &cc.ctx, cc.caller, s, c.lenient)

	if !utf8.ValidString(s) {
		err := xerrors.WithStackTrace(xerrors.ErrInvalidEncoding)
		onDone(0, err)

		return decimal.ScaledInteger{}, err
	}

	v, err := decimal.Parse(s)
	onDone(v.Scale, err)
	if err != nil {
		if c.lenient && xerrors.Is(err, xerrors.ErrInvalidNumber) {
			return decimal.ParseLenient(s), nil
		}

		return decimal.ScaledInteger{}, err
	}

	return v, nil
}

// do runs f with operands parsed from args. Hooks of ctx go before own
// hooks of calculator.
func (c *Calculator) do(ctx context.Context, operation string, scale int32, args []string,
	f func(cc *call, xs []decimal.ScaledInteger) (string, error),
) (result string, finalErr error) {
	cc := &call{
		ctx:    ctx,
		trace:  trace.ContextDecimal(ctx).Compose(c.trace),
		caller: stack.Call(1),
	}
	onDone := trace.DecimalOnOperation(cc.trace, &cc.ctx, cc.caller, operation, scale)
	defer func() {
		onDone(result, finalErr)
	}()

	if err := decimal.CheckScale(scale, c.maxScale); err != nil {
		return "", err
	}

	xs := make([]decimal.ScaledInteger, len(args))
	for i, s := range args {
		x, err := c.parse(cc, s)
		if err != nil {
			return "", err
		}
		if err = decimal.CheckScale(x.Scale, c.maxScale); err != nil {
			return "", err
		}
		xs[i] = x
	}

	return f(cc, xs)
}

// Add returns a+b with scale max(scale of a, scale of b, scale). Never rounds.
func (c *Calculator) Add(ctx context.Context, a, b string, scale int32) (string, error) {
	return c.do(ctx, "add", scale, []string{a, b}, func(_ *call, xs []decimal.ScaledInteger) (string, error) {
		return decimal.Add(xs[0], xs[1], scale).String(), nil
	})
}

// Subtract returns a-b with scale max(scale of a, scale of b, scale). Never rounds.
func (c *Calculator) Subtract(ctx context.Context, a, b string, scale int32) (string, error) {
	return c.do(ctx, "subtract", scale, []string{a, b}, func(_ *call, xs []decimal.ScaledInteger) (string, error) {
		return decimal.Subtract(xs[0], xs[1], scale).String(), nil
	})
}

// Multiply returns a*b with scale max(scale of a + scale of b, scale). Never rounds.
func (c *Calculator) Multiply(ctx context.Context, a, b string, scale int32) (string, error) {
	return c.do(ctx, "multiply", scale, []string{a, b}, func(_ *call, xs []decimal.ScaledInteger) (string, error) {
		return decimal.Multiply(xs[0], xs[1], scale).String(), nil
	})
}

// Divide returns a/b truncated toward zero at exactly given scale.
func (c *Calculator) Divide(ctx context.Context, a, b string, scale int32) (string, error) {
	return c.do(ctx, "divide", scale, []string{a, b}, func(_ *call, xs []decimal.ScaledInteger) (string, error) {
		v, err := decimal.Divide(xs[0], xs[1], scale)
		if err != nil {
			return "", err
		}

		return v.String(), nil
	})
}

func (c *Calculator) Abs(ctx context.Context, a string) (string, error) {
	return c.do(ctx, "abs", 0, []string{a}, func(_ *call, xs []decimal.ScaledInteger) (string, error) {
		return decimal.Abs(xs[0]).String(), nil
	})
}

// ToInteger drops fractional digits of a.
func (c *Calculator) ToInteger(ctx context.Context, a string) (string, error) {
	return c.do(ctx, "to-integer", 0, []string{a}, func(_ *call, xs []decimal.ScaledInteger) (string, error) {
		return decimal.ToInteger(xs[0]).String(), nil
	})
}

// Signum returns -1, 0 or +1 depending on sign of a.
func (c *Calculator) Signum(ctx context.Context, a string) (int, error) {
	var sign int
	_, err := c.do(ctx, "signum", 0, []string{a}, func(_ *call, xs []decimal.ScaledInteger) (string, error) {
		sign = decimal.Signum(xs[0])

		return strconv.Itoa(sign), nil
	})
	if err != nil {
		return 0, err
	}

	return sign, nil
}

// Compare returns -1, 0 or +1 as a is less than, equal or greater than b.
// Scale does not matter: "1.10" equals "1.1".
func (c *Calculator) Compare(ctx context.Context, a, b string) (int, error) {
	var cmp int
	_, err := c.do(ctx, "compare", 0, []string{a, b}, func(_ *call, xs []decimal.ScaledInteger) (string, error) {
		cmp = decimal.Compare(xs[0], xs[1])

		return strconv.Itoa(cmp), nil
	})
	if err != nil {
		return 0, err
	}

	return cmp, nil
}

// SetScale changes scale of a to exactly scale digits. Reduced scale
// discards digits with given rounding mode. Text of a is returned as is
// when its scale already equals scale.
func (c *Calculator) SetScale(ctx context.Context, a string, scale int32, mode RoundingMode) (string, error) {
	return c.do(ctx, "set-scale", scale, []string{a}, func(cc *call, xs []decimal.ScaledInteger) (string, error) {
		x := xs[0]
		if x.Scale == scale {
			return a, nil
		}
		v, acc, err := decimal.SetScale(x, scale, mode)
		if err != nil {
			return "", err
		}
		if acc != decimal.Exact {
			trace.DecimalOnRound(cc.trace, &cc.ctx, cc.caller, mode.String(), x.Scale, scale, acc.String())
		}

		return v.String(), nil
	})
}
