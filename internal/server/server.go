// Package server exposes decimal and bigint calculators over HTTP/JSON.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ydb-platform/ydb-go-bignum/bigint"
	"github.com/ydb-platform/ydb-go-bignum/decimal"
	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
	"github.com/ydb-platform/ydb-go-bignum/internal/zaplog"
	"github.com/ydb-platform/ydb-go-bignum/log"
	"github.com/ydb-platform/ydb-go-bignum/trace"
)

const (
	requestIDHeader = "X-Request-ID"
	loggerKey       = "logger"
)

type Server struct {
	decimal  *decimal.Calculator
	bigint   *bigint.Calculator
	logger   *zap.Logger
	limiter  *rate.Limiter
	gatherer prometheus.Gatherer
	details  trace.Details
	events   log.Logger

	router *gin.Engine
}

type Option func(s *Server)

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithRateLimiter rejects requests with 429 while limiter has no tokens.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(s *Server) {
		s.limiter = l
	}
}

// WithGatherer sets source of /metrics, prometheus.DefaultGatherer by default.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithTraceDetails enables request scoped logging of calculator events.
func WithTraceDetails(d trace.Details) Option {
	return func(s *Server) {
		s.details = d
	}
}

// WithEventLogger writes request scoped calculator events into l instead of
// the request logger.
func WithEventLogger(l log.Logger) Option {
	return func(s *Server) {
		s.events = l
	}
}

func New(d *decimal.Calculator, b *bigint.Calculator, opts ...Option) *Server {
	s := &Server{
		decimal:  d,
		bigint:   b,
		logger:   zap.NewNop(),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.router = gin.New()
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestLogger(c).Error("panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "internal error",
			"code":  "Internal",
		})
	}))
	s.router.Use(s.requestIDMiddleware())
	s.router.Use(s.loggingMiddleware())
	s.router.Use(s.rateLimitMiddleware())
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	v1 := s.router.Group("/v1")
	v1.POST("/decimal/:op", s.decimalHandler)
	v1.POST("/bigint/:op", s.bigintHandler)
	v1.POST("/bigint-bytes/:op", s.bigintBytesHandler)
}

func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		logger := s.logger.With(zap.String("request_id", requestID))
		c.Set(loggerKey, logger)

		ctx := c.Request.Context()
		if s.details != 0 {
			var l log.Logger = zaplog.New(logger)
			if s.events != nil {
				l = s.events
			}
			ctx = trace.WithDecimal(ctx, log.Decimal(l, s.details))
			ctx = trace.WithBigint(ctx, log.Bigint(l, s.details))
		}
		c.Request = c.Request.WithContext(ctx)

		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}
		logger := requestLogger(c)
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request completed", append(fields, zap.String("client_ip", c.ClientIP()))...)
		case status >= http.StatusBadRequest:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter != nil && !s.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
				"code":  "RateLimited",
			})

			return
		}
		c.Next()
	}
}

func requestLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}

	return zap.NewNop()
}

// Run serves addr until ctx is done, then shuts down gracefully
// waiting for active requests at most shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return xerrors.WithStackTrace(err)
		}

		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("starting graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return xerrors.WithStackTrace(err)
		}

		return nil
	})

	return g.Wait()
}
