package metrics

import (
	"context"

	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

func errorBrief(err error) string {
	if err == nil {
		return "OK"
	}
	if xerrors.Is(err, context.DeadlineExceeded) {
		return "context/DeadlineExceeded"
	}
	if xerrors.Is(err, context.Canceled) {
		return "context/Canceled"
	}

	return xerrors.Kind(err)
}
