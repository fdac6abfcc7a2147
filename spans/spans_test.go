package spans

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ydb-platform/ydb-go-bignum/bigint"
	"github.com/ydb-platform/ydb-go-bignum/decimal"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

type spanKey struct{}

type recordedSpan struct {
	name   string
	attrs  map[string]string
	logs   []string
	errs   []string
	ended  bool
	parent *recordedSpan
}

func (s *recordedSpan) TraceID() string {
	return "trace-" + s.name
}

func (s *recordedSpan) Log(msg string, attributes ...KeyValue) {
	s.logs = append(s.logs, msg)
	s.set(attributes)
}

func (s *recordedSpan) Error(err error, attributes ...KeyValue) {
	s.errs = append(s.errs, err.Error())
	s.set(attributes)
}

func (s *recordedSpan) End(attributes ...KeyValue) {
	s.ended = true
	s.set(attributes)
}

func (s *recordedSpan) set(attributes []KeyValue) {
	for _, a := range attributes {
		s.attrs[a.Key()] = a.String()
	}
}

type adapter struct {
	details trace.Details

	mu    sync.Mutex
	spans []*recordedSpan
}

func (a *adapter) Details() trace.Details {
	return a.details
}

func (a *adapter) SpanFromContext(ctx context.Context) Span {
	if s, ok := ctx.Value(spanKey{}).(*recordedSpan); ok {
		return s
	}

	return &recordedSpan{name: "root", attrs: map[string]string{}}
}

func (a *adapter) Start(ctx context.Context, name string, attributes ...KeyValue) (context.Context, Span) {
	parent, _ := ctx.Value(spanKey{}).(*recordedSpan)
	s := &recordedSpan{name: name, attrs: map[string]string{}, parent: parent}
	s.set(attributes)

	a.mu.Lock()
	a.spans = append(a.spans, s)
	a.mu.Unlock()

	return context.WithValue(ctx, spanKey{}, s), s
}

func TestDecimalSpans(t *testing.T) {
	for _, tt := range []struct {
		name  string
		run   func(c *decimal.Calculator) error
		span  string
		attrs map[string]string
		logs  []string
		errs  int
	}{
		{
			name: "add",
			run: func(c *decimal.Calculator) error {
				_, err := c.Add(context.Background(), "1.5", "2", 0)

				return err
			},
			span:  "kbignum.decimal.add",
			attrs: map[string]string{"scale": "0", "result": "3.5"},
		},
		{
			name: "rounding",
			run: func(c *decimal.Calculator) error {
				_, err := c.SetScale(context.Background(), "2.5", 0, decimal.HalfEven)

				return err
			},
			span:  "kbignum.decimal.set-scale",
			attrs: map[string]string{"mode": "HALF_EVEN", "accuracy": "Below", "result": "2"},
			logs:  []string{"rounded"},
		},
		{
			name: "parse failure",
			run: func(c *decimal.Calculator) error {
				_, err := c.Abs(context.Background(), "x")

				return err
			},
			span:  "kbignum.decimal.abs",
			attrs: map[string]string{"input": "x", "error.kind": "InvalidNumber"},
			logs:  []string{"parse failed"},
			errs:  1,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			a := &adapter{details: trace.DetailsAll}
			_ = tt.run(decimal.New(decimal.WithTrace(Decimal(a))))

			require.Len(t, a.spans, 1)
			s := a.spans[0]
			require.Equal(t, tt.span, s.name)
			require.True(t, s.ended)
			require.Equal(t, tt.logs, s.logs)
			require.Len(t, s.errs, tt.errs)
			for k, v := range tt.attrs {
				require.Equal(t, v, s.attrs[k], k)
			}
		})
	}
}

func TestBigintSpans(t *testing.T) {
	a := &adapter{details: trace.BigintEvents}
	c := bigint.New(bigint.WithTrace(Bigint(a)))

	_, err := c.Divide(context.Background(), "1", "0")
	require.ErrorIs(t, err, bigint.ErrDivisionByZero)

	require.Len(t, a.spans, 1)
	require.Equal(t, "kbignum.bigint.divide", a.spans[0].name)
	require.Equal(t, "DivisionByZero", a.spans[0].attrs["error.kind"])
}

func TestNestedInParentSpan(t *testing.T) {
	a := &adapter{details: trace.DetailsAll}
	ctx, parent := a.Start(context.Background(), "request")

	_, err := decimal.New(decimal.WithTrace(Decimal(a))).Multiply(ctx, "2", "3", 0)
	require.NoError(t, err)

	require.Len(t, a.spans, 2)
	require.Same(t, parent, a.spans[1].parent)
}

func TestDisabledDetails(t *testing.T) {
	a := &adapter{details: trace.DecimalEvents}
	_, err := bigint.New(bigint.WithTrace(Bigint(a))).Add(context.Background(), "1", "2")
	require.NoError(t, err)
	require.Empty(t, a.spans)
}
