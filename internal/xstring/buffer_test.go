package xstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferReuse(t *testing.T) {
	b := Buffer()
	b.WriteString("123.45")
	require.Equal(t, "123.45", b.String())
	b.Free()

	b = Buffer()
	defer b.Free()
	require.Zero(t, b.Len())
}

func TestConvert(t *testing.T) {
	require.Equal(t, "", FromBytes(nil))
	require.Nil(t, ToBytes(""))
	require.Equal(t, "-0.045", FromBytes(ToBytes("-0.045")))
}
