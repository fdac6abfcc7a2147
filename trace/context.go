package trace

import "context"

type decimalContextKey struct{}

// WithDecimal returns context which has associated Decimal trace with it.
func WithDecimal(ctx context.Context, t *Decimal) context.Context {
	return context.WithValue(ctx,
		decimalContextKey{},
		ContextDecimal(ctx).Compose(t),
	)
}

// ContextDecimal returns Decimal trace associated with ctx.
// If there is no Decimal trace associated with ctx then nil is returned.
func ContextDecimal(ctx context.Context) *Decimal {
	t, _ := ctx.Value(decimalContextKey{}).(*Decimal)

	return t
}

type bigintContextKey struct{}

// WithBigint returns context which has associated Bigint trace with it.
func WithBigint(ctx context.Context, t *Bigint) context.Context {
	return context.WithValue(ctx,
		bigintContextKey{},
		ContextBigint(ctx).Compose(t),
	)
}

// ContextBigint returns Bigint trace associated with ctx.
func ContextBigint(ctx context.Context) *Bigint {
	t, _ := ctx.Value(bigintContextKey{}).(*Bigint)

	return t
}
