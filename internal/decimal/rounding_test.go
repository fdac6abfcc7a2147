package decimal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundingModes(t *testing.T) {
	inputs := []string{"5.5", "2.5", "1.6", "1.1", "1.0", "-1.0", "-1.1", "-1.6", "-2.5", "-5.5"}
	for _, tt := range []struct {
		mode RoundingMode
		exp  []string
	}{
		{mode: Up, exp: []string{"6", "3", "2", "2", "1", "-1", "-2", "-2", "-3", "-6"}},
		{mode: Down, exp: []string{"5", "2", "1", "1", "1", "-1", "-1", "-1", "-2", "-5"}},
		{mode: Ceiling, exp: []string{"6", "3", "2", "2", "1", "-1", "-1", "-1", "-2", "-5"}},
		{mode: Floor, exp: []string{"5", "2", "1", "1", "1", "-1", "-2", "-2", "-3", "-6"}},
		{mode: HalfUp, exp: []string{"6", "3", "2", "1", "1", "-1", "-1", "-2", "-3", "-6"}},
		{mode: HalfDown, exp: []string{"5", "2", "2", "1", "1", "-1", "-1", "-2", "-2", "-5"}},
		{mode: HalfEven, exp: []string{"6", "2", "2", "1", "1", "-1", "-1", "-2", "-2", "-6"}},
	} {
		t.Run(tt.mode.String(), func(t *testing.T) {
			for i, s := range inputs {
				v, err := Parse(s)
				require.NoError(t, err)
				r, _, err := SetScale(v, 0, tt.mode)
				require.NoError(t, err)
				require.Equal(t, tt.exp[i], r.String(), "%s with %s", s, tt.mode)
			}
		})
	}
}

func TestRoundAccuracy(t *testing.T) {
	for _, tt := range []struct {
		name     string
		negative bool
		q, r     int64
		mode     RoundingMode
		exp      int64
		acc      Accuracy
	}{
		{name: "up positive", q: 12, r: 1, mode: Up, exp: 13, acc: Above},
		{name: "up negative", negative: true, q: -12, r: -1, mode: Up, exp: -13, acc: Below},
		{name: "down positive", q: 12, r: 9, mode: Down, exp: 12, acc: Below},
		{name: "down negative", negative: true, q: -12, r: -9, mode: Down, exp: -12, acc: Above},
		{name: "half even tie to even", q: 12, r: 5, mode: HalfEven, exp: 12, acc: Below},
		{name: "half even tie from odd", q: 13, r: 5, mode: HalfEven, exp: 14, acc: Above},
		{name: "half even negative tie from odd", negative: true, q: -13, r: -5, mode: HalfEven, exp: -14, acc: Below},
		{name: "half down tie", q: 13, r: 5, mode: HalfDown, exp: 13, acc: Below},
		{name: "half down above half", q: 13, r: 6, mode: HalfDown, exp: 14, acc: Above},
		{name: "half up below half", q: 13, r: 4, mode: HalfUp, exp: 13, acc: Below},
		{name: "unknown mode truncates", q: 13, r: 9, mode: RoundingMode(42), exp: 13, acc: Below},
	} {
		t.Run(tt.name, func(t *testing.T) {
			q := big.NewInt(tt.q)
			z, acc := Round(tt.negative, q, big.NewInt(tt.r), big.NewInt(10), tt.mode)
			require.Equal(t, tt.exp, z.Int64())
			require.Equal(t, tt.acc, acc)
			require.Equal(t, tt.q, q.Int64(), "quotient must not be modified")
		})
	}
}

func TestRoundingModeFromCode(t *testing.T) {
	for code, exp := range []RoundingMode{Up, Down, Ceiling, Floor, HalfUp, HalfDown, HalfEven} {
		require.Equal(t, exp, RoundingModeFromCode(int32(code)))
	}
	require.Equal(t, Down, RoundingModeFromCode(7))
	require.Equal(t, Down, RoundingModeFromCode(-1))
}

func TestParseRoundingMode(t *testing.T) {
	for _, tt := range []struct {
		name string
		mode RoundingMode
		ok   bool
	}{
		{name: "HALF_EVEN", mode: HalfEven, ok: true},
		{name: "half-up", mode: HalfUp, ok: true},
		{name: " ceiling ", mode: Ceiling, ok: true},
		{name: "UNNECESSARY", mode: Down, ok: false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mode, ok := ParseRoundingMode(tt.name)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.mode, mode)
		})
	}
	require.Equal(t, "DOWN", RoundingMode(100).String())
}
