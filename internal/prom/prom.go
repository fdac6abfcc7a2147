// Package prom implements metrics.Config over prometheus client.
package prom

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ydb-platform/ydb-go-bignum/metrics"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

var _ metrics.Config = (*Config)(nil)

// registry caches collectors by full name. Prometheus rejects
// second registration of collector with the same name.
type registry struct {
	registerer prometheus.Registerer

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec
}

type Config struct {
	registry  *registry
	namespace string
	subsystem string
	details   trace.Details
}

func New(registerer prometheus.Registerer, namespace string, details trace.Details) *Config {
	return &Config{
		registry: &registry{
			registerer: registerer,
			counters:   make(map[string]*prometheus.CounterVec),
			gauges:     make(map[string]*prometheus.GaugeVec),
			histograms: make(map[string]*prometheus.HistogramVec),
		},
		namespace: namespace,
		details:   details,
	}
}

func (c *Config) Details() trace.Details {
	return c.details
}

func (c *Config) WithSystem(subsystem string) metrics.Config {
	cc := *c
	if cc.subsystem == "" {
		cc.subsystem = subsystem
	} else {
		cc.subsystem = cc.subsystem + "_" + subsystem
	}

	return &cc
}

func (c *Config) fullName(name string) string {
	return strings.Join([]string{c.namespace, c.subsystem, name}, "/")
}

func (c *Config) CounterVec(name string, labelNames ...string) metrics.CounterVec {
	r := c.registry
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.fullName(name)
	v, has := r.counters[key]
	if !has {
		v = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: c.namespace,
			Subsystem: c.subsystem,
			Name:      name + "_total",
			Help:      "total amount of " + strings.ReplaceAll(name, "_", " "),
		}, labelNames)
		r.registerer.MustRegister(v)
		r.counters[key] = v
	}

	return counterVec{v}
}

func (c *Config) GaugeVec(name string, labelNames ...string) metrics.GaugeVec {
	r := c.registry
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.fullName(name)
	v, has := r.gauges[key]
	if !has {
		v = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: c.namespace,
			Subsystem: c.subsystem,
			Name:      name,
			Help:      "current amount of " + strings.ReplaceAll(name, "_", " "),
		}, labelNames)
		r.registerer.MustRegister(v)
		r.gauges[key] = v
	}

	return gaugeVec{v}
}

func (c *Config) histogramVec(name string, help string, buckets []float64, labelNames ...string) *prometheus.HistogramVec {
	r := c.registry
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.fullName(name)
	v, has := r.histograms[key]
	if !has {
		v = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: c.namespace,
			Subsystem: c.subsystem,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		}, labelNames)
		r.registerer.MustRegister(v)
		r.histograms[key] = v
	}

	return v
}

func (c *Config) TimerVec(name string, labelNames ...string) metrics.TimerVec {
	return timerVec{c.histogramVec(name+"_seconds",
		"distribution of "+strings.ReplaceAll(name, "_", " ")+" in seconds",
		prometheus.ExponentialBuckets(1e-6, 4, 12),
		labelNames...,
	)}
}

func (c *Config) HistogramVec(name string, buckets []float64, labelNames ...string) metrics.HistogramVec {
	return histogramVec{c.histogramVec(name,
		"distribution of "+strings.ReplaceAll(name, "_", " "),
		buckets,
		labelNames...,
	)}
}

type counterVec struct {
	v *prometheus.CounterVec
}

func (v counterVec) With(labels map[string]string) metrics.Counter {
	return v.v.With(labels)
}

type gaugeVec struct {
	v *prometheus.GaugeVec
}

func (v gaugeVec) With(labels map[string]string) metrics.Gauge {
	return v.v.With(labels)
}

type histogramVec struct {
	v *prometheus.HistogramVec
}

func (v histogramVec) With(labels map[string]string) metrics.Histogram {
	return histogram{v.v.With(labels)}
}

type histogram struct {
	o prometheus.Observer
}

func (h histogram) Record(value float64) {
	h.o.Observe(value)
}

type timerVec struct {
	v *prometheus.HistogramVec
}

func (v timerVec) With(labels map[string]string) metrics.Timer {
	return timer{v.v.With(labels)}
}

type timer struct {
	o prometheus.Observer
}

func (t timer) Record(value time.Duration) {
	t.o.Observe(value.Seconds())
}
