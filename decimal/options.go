package decimal

import (
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

type Option func(c *Calculator)

// WithTrace appends t to hooks of calculator
func WithTrace(t *trace.Decimal) Option {
	return func(c *Calculator) {
		c.trace = c.trace.Compose(t)
	}
}

// WithLenientParsing makes malformed operands read as zero instead of
// failing with ErrInvalidNumber. Operand scale is kept.
func WithLenientParsing() Option {
	return func(c *Calculator) {
		c.lenient = true
	}
}

// WithMaxScale rejects requested and operand scales above n with
// ErrInvalidScale. Non-positive n removes the limit.
func WithMaxScale(n int32) Option {
	return func(c *Calculator) {
		c.maxScale = n
	}
}
