package decimal

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

func TestPow10(t *testing.T) {
	for _, n := range []int32{0, 1, 39, 40, 41, 64, 1000, 4097} {
		require.Equal(t, "1"+strings.Repeat("0", int(n)), pow10(n).String(), "10^%d", n)
	}
}

func TestCheckScale(t *testing.T) {
	for _, tt := range []struct {
		name  string
		scale int32
		limit int32
		fail  bool
	}{
		{name: "below", scale: 10, limit: 100},
		{name: "at limit", scale: 100, limit: 100},
		{name: "above", scale: 101, limit: 100, fail: true},
		{name: "negative scale", scale: -5, limit: 100},
		{name: "default limit", scale: DefaultMaxScale + 1, limit: DefaultMaxScale, fail: true},
		{name: "disabled", scale: math.MaxInt32, limit: 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckScale(tt.scale, tt.limit)
			if !tt.fail {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			require.True(t, xerrors.Is(err, xerrors.ErrInvalidScale))
			require.Equal(t, "InvalidScale", xerrors.Kind(err))
		})
	}
}
