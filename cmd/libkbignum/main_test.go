package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCString(t *testing.T) {
	require.Nil(t, cstring(nil))

	ps, free := newCStrings("-12.5", "")
	defer free()

	require.Equal(t, []byte("-12.5"), cstring(ps[0]))
	require.Equal(t, []byte{}, cstring(ps[1]))
}

func TestCBytes(t *testing.T) {
	empty := cbytes(nil, 0)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	require.Nil(t, cbytes(nil, 3))

	data, n, free := newCBytes([]byte{0xff, 0x7f})
	defer free()
	p := cbytes(data, n)
	require.Equal(t, []byte{0xff, 0x7f}, p)

	p[0] = 0x00
	require.Equal(t, []byte{0xff, 0x7f}, cbytes(data, n), "result must not alias C memory")
}

func TestFreeNull(t *testing.T) {
	require.NotPanics(t, func() {
		bigint_free_string(nil)
		bigint_free_byte_result(nil)
	})
}

func TestBytesExports(t *testing.T) {
	for _, tt := range []struct {
		name  string
		a, b  []byte
		nullA bool
		exp   []byte
		fail  bool
	}{
		{
			name: "add carries into sign byte",
			a:    []byte{0x7f},
			b:    []byte{0x01},
			exp:  []byte{0x00, 0x80},
		},
		{
			name: "add empty is zero",
			a:    nil,
			b:    []byte{0xff},
			exp:  []byte{0xff},
		},
		{
			name:  "add null with length",
			nullA: true,
			b:     []byte{0x01},
			fail:  true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			a, an, freeA := newCBytes(tt.a)
			defer freeA()
			b, bn, freeB := newCBytes(tt.b)
			defer freeB()
			if tt.nullA {
				a, an = nil, 3
			}

			v, ok := takeBytes(bigint_add_bytes(a, an, b, bn))
			if tt.fail {
				require.False(t, ok)

				return
			}
			require.True(t, ok)
			require.Equal(t, tt.exp, v)
		})
	}

	ps, free := newCStrings("-129")
	defer free()
	v, ok := takeBytes(bigint_from_string_bytes(ps[0]))
	require.True(t, ok)
	require.Equal(t, []byte{0xff, 0x7f}, v)

	_, ok = takeBytes(bigint_divide_bytes(nil, 0, nil, 0))
	require.False(t, ok)

	s, ok := takeText(bigint_to_string_bytes(nil, 0))
	require.True(t, ok)
	require.Equal(t, "0", s)

	data, n, freeData := newCBytes([]byte{0xfe, 0xd4})
	defer freeData()
	require.EqualValues(t, -300, bigint_to_long_bytes(data, n))
	require.EqualValues(t, -1, bigint_signum_bytes(data, n))
}

func TestTextExports(t *testing.T) {
	ps, free := newCStrings("12345678901234567890", "1", "0", "3", "2.5", "-42", "1..2")
	defer free()
	big, one, zero, three, half, neg, bad := ps[0], ps[1], ps[2], ps[3], ps[4], ps[5], ps[6]

	for _, tt := range []struct {
		name string
		call func() (string, bool)
		exp  string
		fail bool
	}{
		{
			name: "bigint add",
			call: func() (string, bool) { return takeText(bigint_add(big, one)) },
			exp:  "12345678901234567891",
		},
		{
			name: "bigint divide by zero",
			call: func() (string, bool) { return takeText(bigint_divide(one, zero)) },
			fail: true,
		},
		{
			name: "bigint null operand",
			call: func() (string, bool) { return takeText(bigint_add(nil, one)) },
			fail: true,
		},
		{
			name: "decimal divide",
			call: func() (string, bool) { return takeText(bigdecimal_divide(one, three, 2)) },
			exp:  "0.33",
		},
		{
			name: "decimal divide by zero",
			call: func() (string, bool) { return takeText(bigdecimal_divide(one, zero, 2)) },
			fail: true,
		},
		{
			name: "decimal invalid number",
			call: func() (string, bool) { return takeText(bigdecimal_add(bad, one, 0)) },
			fail: true,
		},
		{
			name: "set scale unknown rounding code rounds down",
			call: func() (string, bool) { return takeText(bigdecimal_set_scale(half, 0, 99)) },
			exp:  "2",
		},
		{
			name: "set scale half up",
			call: func() (string, bool) { return takeText(bigdecimal_set_scale(half, 0, 4)) },
			exp:  "3",
		},
		{
			name: "set scale above limit",
			call: func() (string, bool) { return takeText(bigdecimal_set_scale(one, 40000000, 1)) },
			fail: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := tt.call()
			if tt.fail {
				require.False(t, ok)

				return
			}
			require.True(t, ok)
			require.Equal(t, tt.exp, v)
		})
	}

	require.EqualValues(t, -42, bigint_to_long(neg))
	require.EqualValues(t, 0, bigint_signum(nil))
	require.EqualValues(t, -1, bigdecimal_compare(neg, half))
}
