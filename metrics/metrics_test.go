package metrics

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

type store struct {
	mu     sync.Mutex
	values map[string]float64
}

func key(name string, labels map[string]string) string {
	kv := make([]string, 0, len(labels))
	for k, v := range labels {
		kv = append(kv, k+"="+v)
	}
	sort.Strings(kv)

	return name + "{" + strings.Join(kv, ",") + "}"
}

func (s *store) add(name string, labels map[string]string, delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key(name, labels)] += delta
}

func (s *store) get(name string, labels map[string]string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.values[key(name, labels)]
}

type vec struct {
	s    *store
	name string
}

type metric struct {
	vec
	labels map[string]string
}

func (v vec) With(labels map[string]string) metric {
	return metric{vec: v, labels: labels}
}

func (m metric) Inc()                       { m.s.add(m.name, m.labels, 1) }
func (m metric) Add(delta float64)          { m.s.add(m.name, m.labels, delta) }
func (m metric) Set(value float64)          { m.s.add(m.name, m.labels, value-m.s.get(m.name, m.labels)) }
func (m metric) Record(value float64)       { m.s.add(m.name+"_count", m.labels, 1) }
func (m metric) RecordTime(_ time.Duration) { m.s.add(m.name+"_count", m.labels, 1) }

type counterVec struct{ vec }

func (v counterVec) With(labels map[string]string) Counter { return v.vec.With(labels) }

type gaugeVec struct{ vec }

func (v gaugeVec) With(labels map[string]string) Gauge { return v.vec.With(labels) }

type histogramVec struct{ vec }

func (v histogramVec) With(labels map[string]string) Histogram { return v.vec.With(labels) }

type timer struct{ metric }

func (t timer) Record(d time.Duration) { t.RecordTime(d) }

type timerVec struct{ vec }

func (v timerVec) With(labels map[string]string) Timer { return timer{v.vec.With(labels)} }

type config struct {
	s       *store
	prefix  string
	details trace.Details
}

func (c config) name(n string) string {
	return c.prefix + "_" + n
}

func (c config) CounterVec(name string, _ ...string) CounterVec {
	return counterVec{vec{s: c.s, name: c.name(name)}}
}

func (c config) GaugeVec(name string, _ ...string) GaugeVec {
	return gaugeVec{vec{s: c.s, name: c.name(name)}}
}

func (c config) TimerVec(name string, _ ...string) TimerVec {
	return timerVec{vec{s: c.s, name: c.name(name)}}
}

func (c config) HistogramVec(name string, _ []float64, _ ...string) HistogramVec {
	return histogramVec{vec{s: c.s, name: c.name(name)}}
}

func (c config) Details() trace.Details {
	return c.details
}

func (c config) WithSystem(subsystem string) Config {
	c.prefix = subsystem

	return c
}

func newConfig(details trace.Details) config {
	return config{s: &store{values: map[string]float64{}}, details: details}
}

func TestDecimal(t *testing.T) {
	c := newConfig(trace.DecimalEvents)
	hooks := Decimal(c)
	ctx := context.Background()

	done := trace.DecimalOnOperation(hooks, &ctx, nil, "divide", 2)
	require.Equal(t, 1.0, c.s.get("decimal_inflight", map[string]string{"operation": "divide"}))
	done("", xerrors.WithStackTrace(xerrors.ErrDivisionByZero))
	require.Equal(t, 0.0, c.s.get("decimal_inflight", map[string]string{"operation": "divide"}))
	require.Equal(t, 1.0, c.s.get("decimal_operations", map[string]string{
		"operation": "divide",
		"status":    "DivisionByZero",
	}))
	require.Equal(t, 1.0, c.s.get("decimal_latency_count", map[string]string{"operation": "divide"}))

	trace.DecimalOnOperation(hooks, &ctx, nil, "add", 0)("2", nil)
	require.Equal(t, 1.0, c.s.get("decimal_operations", map[string]string{
		"operation": "add",
		"status":    "OK",
	}))

	trace.DecimalOnParse(hooks, &ctx, nil, "x", true)(0, xerrors.ErrInvalidNumber)
	require.Equal(t, 1.0, c.s.get("decimal_parse_errors", map[string]string{
		"kind":    "InvalidNumber",
		"lenient": "true",
	}))

	trace.DecimalOnRound(hooks, &ctx, nil, "HALF_UP", 3, 1, "Above")
	require.Equal(t, 1.0, c.s.get("decimal_roundings", map[string]string{
		"mode":     "HALF_UP",
		"accuracy": "Above",
	}))
}

func TestDecimalDetails(t *testing.T) {
	c := newConfig(trace.BigintEvents)
	hooks := Decimal(c)
	ctx := context.Background()

	trace.DecimalOnOperation(hooks, &ctx, nil, "add", 0)("2", nil)
	trace.DecimalOnRound(hooks, &ctx, nil, "UP", 1, 0, "Above")
	require.Empty(t, c.s.values)
}

func TestBigint(t *testing.T) {
	c := newConfig(trace.DetailsAll)
	hooks := Bigint(c)
	ctx := context.Background()

	trace.BigintOnOperation(hooks, &ctx, nil, "mod")("", xerrors.ErrDivisionByZero)
	trace.BigintOnParse(hooks, &ctx, nil, "1")(nil)
	trace.BigintOnParse(hooks, &ctx, nil, "x")(xerrors.ErrInvalidNumber)

	require.Equal(t, 1.0, c.s.get("bigint_operations", map[string]string{
		"operation": "mod",
		"status":    "DivisionByZero",
	}))
	require.Equal(t, 1.0, c.s.get("bigint_parse_errors", map[string]string{"kind": "InvalidNumber"}))
}

func TestErrorBrief(t *testing.T) {
	require.Equal(t, "OK", errorBrief(nil))
	require.Equal(t, "context/Canceled", errorBrief(context.Canceled))
	require.Equal(t, "InvalidScale", errorBrief(xerrors.WithStackTrace(xerrors.ErrInvalidScale)))
	require.Equal(t, "Unknown", errorBrief(errors.New("boom")))
}
