package bigint

import (
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

type Option func(c *Calculator)

// WithTrace appends t to hooks of calculator
func WithTrace(t *trace.Bigint) Option {
	return func(c *Calculator) {
		c.trace = c.trace.Compose(t)
	}
}
