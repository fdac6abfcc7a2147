package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetailsString(t *testing.T) {
	for _, tt := range []struct {
		details Details
		exp     string
	}{
		{
			details: DecimalRoundingEvents,
			exp:     "kbignum.decimal.rounding",
		},
		{
			details: BigintOperationEvents,
			exp:     "kbignum.bigint.operation",
		},
		{
			details: BigintEvents,
			exp:     "kbignum.bigint|kbignum.bigint.operation|kbignum.bigint.parse",
		},
		{
			details: DecimalParseEvents | BigintParseEvents,
			exp:     "kbignum.bigint.parse|kbignum.decimal.parse",
		},
		{
			details: 0,
			exp:     "",
		},
	} {
		t.Run(tt.exp, func(t *testing.T) {
			require.Equal(t, tt.exp, tt.details.String())
		})
	}
}

func TestMatchDetails(t *testing.T) {
	for _, tt := range []struct {
		pattern string
		opts    []matchDetailsOption
		exp     Details
	}{
		{
			pattern: `^kbignum\.decimal`,
			exp:     DecimalEvents,
		},
		{
			pattern: `^kbignum\.bigint\.operation$`,
			exp:     BigintOperationEvents,
		},
		{
			pattern: `rounding`,
			exp:     DecimalRoundingEvents,
		},
		{
			pattern: `^unknown$`,
			exp:     DetailsAll,
		},
		{
			pattern: `[`,
			opts:    []matchDetailsOption{WithDefaultDetails(BigintEvents)},
			exp:     BigintEvents,
		},
		{
			pattern: `^kbignum\.bigint\.parse$`,
			opts:    []matchDetailsOption{WithPOSIXMatch()},
			exp:     BigintParseEvents,
		},
	} {
		t.Run(tt.pattern, func(t *testing.T) {
			require.Equal(t, tt.exp, MatchDetails(tt.pattern, tt.opts...))
		})
	}
}
