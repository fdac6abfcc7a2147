package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ydb-platform/ydb-go-bignum/bigint"
	"github.com/ydb-platform/ydb-go-bignum/decimal"
	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

type decimalRequest struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Scale    int32  `json:"scale"`
	Rounding string `json:"rounding"`
}

type bigintRequest struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Exponent uint32 `json:"exponent"`
}

// bigintBytesRequest operands are big-endian two's complement, base64 in JSON.
type bigintBytesRequest struct {
	A []byte `json:"a"`
	B []byte `json:"b"`
}

type result struct {
	Result interface{} `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func value[T any](v T, err error) (interface{}, error) {
	return v, err
}

var decimalOps = map[string]func(ctx context.Context, c *decimal.Calculator, r *decimalRequest) (interface{}, error){
	"add": func(ctx context.Context, c *decimal.Calculator, r *decimalRequest) (interface{}, error) {
		return value(c.Add(ctx, r.A, r.B, r.Scale))
	},
	"subtract": func(ctx context.Context, c *decimal.Calculator, r *decimalRequest) (interface{}, error) {
		return value(c.Subtract(ctx, r.A, r.B, r.Scale))
	},
	"multiply": func(ctx context.Context, c *decimal.Calculator, r *decimalRequest) (interface{}, error) {
		return value(c.Multiply(ctx, r.A, r.B, r.Scale))
	},
	"divide": func(ctx context.Context, c *decimal.Calculator, r *decimalRequest) (interface{}, error) {
		return value(c.Divide(ctx, r.A, r.B, r.Scale))
	},
	"abs": func(ctx context.Context, c *decimal.Calculator, r *decimalRequest) (interface{}, error) {
		return value(c.Abs(ctx, r.A))
	},
	"signum": func(ctx context.Context, c *decimal.Calculator, r *decimalRequest) (interface{}, error) {
		return value(c.Signum(ctx, r.A))
	},
	"compare": func(ctx context.Context, c *decimal.Calculator, r *decimalRequest) (interface{}, error) {
		return value(c.Compare(ctx, r.A, r.B))
	},
	"to-integer": func(ctx context.Context, c *decimal.Calculator, r *decimalRequest) (interface{}, error) {
		return value(c.ToInteger(ctx, r.A))
	},
	"set-scale": func(ctx context.Context, c *decimal.Calculator, r *decimalRequest) (interface{}, error) {
		mode := decimal.Down
		if r.Rounding != "" {
			var ok bool
			if mode, ok = decimal.ParseRoundingMode(r.Rounding); !ok {
				return nil, &roundingModeError{name: r.Rounding}
			}
		}

		return value(c.SetScale(ctx, r.A, r.Scale, mode))
	},
}

var bigintOps = map[string]func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error){
	"add": func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error) {
		return value(c.Add(ctx, r.A, r.B))
	},
	"subtract": func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error) {
		return value(c.Subtract(ctx, r.A, r.B))
	},
	"multiply": func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error) {
		return value(c.Multiply(ctx, r.A, r.B))
	},
	"divide": func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error) {
		return value(c.Divide(ctx, r.A, r.B))
	},
	"mod": func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error) {
		return value(c.Mod(ctx, r.A, r.B))
	},
	"pow": func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error) {
		return value(c.Pow(ctx, r.A, r.Exponent))
	},
	"abs": func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error) {
		return value(c.Abs(ctx, r.A))
	},
	"signum": func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error) {
		return value(c.Signum(ctx, r.A))
	},
	"compare": func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error) {
		return value(c.Compare(ctx, r.A, r.B))
	},
	"gcd": func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error) {
		return value(c.GCD(ctx, r.A, r.B))
	},
	"to-long": func(ctx context.Context, c *bigint.Calculator, r *bigintRequest) (interface{}, error) {
		return value(c.ToInt64(ctx, r.A))
	},
}

var bigintBytesOps = map[string]func(ctx context.Context, c *bigint.Calculator, r *bigintBytesRequest) (interface{}, error){
	"add": func(ctx context.Context, c *bigint.Calculator, r *bigintBytesRequest) (interface{}, error) {
		return value(c.AddBytes(ctx, r.A, r.B))
	},
	"subtract": func(ctx context.Context, c *bigint.Calculator, r *bigintBytesRequest) (interface{}, error) {
		return value(c.SubtractBytes(ctx, r.A, r.B))
	},
	"multiply": func(ctx context.Context, c *bigint.Calculator, r *bigintBytesRequest) (interface{}, error) {
		return value(c.MultiplyBytes(ctx, r.A, r.B))
	},
	"divide": func(ctx context.Context, c *bigint.Calculator, r *bigintBytesRequest) (interface{}, error) {
		return value(c.DivideBytes(ctx, r.A, r.B))
	},
	"mod": func(ctx context.Context, c *bigint.Calculator, r *bigintBytesRequest) (interface{}, error) {
		return value(c.ModBytes(ctx, r.A, r.B))
	},
	"abs": func(ctx context.Context, c *bigint.Calculator, r *bigintBytesRequest) (interface{}, error) {
		return value(c.AbsBytes(ctx, r.A))
	},
	"signum": func(ctx context.Context, c *bigint.Calculator, r *bigintBytesRequest) (interface{}, error) {
		return value(c.SignumBytes(ctx, r.A))
	},
	"compare": func(ctx context.Context, c *bigint.Calculator, r *bigintBytesRequest) (interface{}, error) {
		return value(c.CompareBytes(ctx, r.A, r.B))
	},
	"to-long": func(ctx context.Context, c *bigint.Calculator, r *bigintBytesRequest) (interface{}, error) {
		return value(c.ToInt64Bytes(ctx, r.A))
	},
	"to-string": func(ctx context.Context, c *bigint.Calculator, r *bigintBytesRequest) (interface{}, error) {
		return value(c.ToString(ctx, r.A))
	},
}

func (s *Server) decimalHandler(c *gin.Context) {
	handle(c, decimalOps, s.decimal)
}

func (s *Server) bigintHandler(c *gin.Context) {
	handle(c, bigintOps, s.bigint)
}

func (s *Server) bigintBytesHandler(c *gin.Context) {
	handle(c, bigintBytesOps, s.bigint)
}

func handle[C, R any](c *gin.Context, ops map[string]func(context.Context, C, *R) (interface{}, error), calc C) {
	op, ok := ops[c.Param("op")]
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{
			Error: "unknown operation " + c.Param("op"),
			Code:  "UnknownOperation",
		})

		return
	}
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: err.Error(),
			Code:  "BadRequest",
		})

		return
	}
	v, err := op(c.Request.Context(), calc, &req)
	if err != nil {
		c.JSON(httpStatus(err), errorResponse{
			Error: err.Error(),
			Code:  errorCode(err),
		})

		return
	}
	c.JSON(http.StatusOK, result{Result: v})
}

type roundingModeError struct {
	name string
}

func (e *roundingModeError) Error() string {
	return "unknown rounding mode " + e.name
}

func errorCode(err error) string {
	var rerr *roundingModeError
	if xerrors.As(err, &rerr) {
		return "InvalidRoundingMode"
	}

	return xerrors.Kind(err)
}

func httpStatus(err error) int {
	var rerr *roundingModeError
	switch {
	case xerrors.As(err, &rerr):
		return http.StatusBadRequest
	case xerrors.Is(err, xerrors.ErrDivisionByZero, xerrors.ErrConversionOverflow):
		return http.StatusUnprocessableEntity
	case xerrors.Is(err, xerrors.ErrInvalidNumber, xerrors.ErrInvalidEncoding, xerrors.ErrInvalidScale):
		return http.StatusBadRequest
	case xerrors.Is(err, context.Canceled, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
