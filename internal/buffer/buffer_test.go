package buffer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ydb-platform/ydb-go-bignum/internal/xtest"
)

func TestText(t *testing.T) {
	b := NewText("912.579")

	s, err := b.Take()
	require.NoError(t, err)
	require.Equal(t, "912.579", s)

	s, err = b.Take()
	require.NoError(t, err)
	require.Empty(t, s)

	require.NoError(t, b.Release())
	require.ErrorIs(t, b.Release(), ErrReleased)

	_, err = b.Take()
	require.ErrorIs(t, err, ErrReleased)
}

func TestBytes(t *testing.T) {
	b := NewBytes([]byte{0xff, 0x7f})

	p, err := b.Take()
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0x7f}, p)

	require.NoError(t, b.Release())
	require.ErrorIs(t, b.Release(), ErrReleased)

	_, err = b.Take()
	require.ErrorIs(t, err, ErrReleased)
}

func TestNil(t *testing.T) {
	var (
		text *Text
		bts  *Bytes
	)

	require.NoError(t, text.Release())
	require.NoError(t, bts.Release())

	_, err := text.Take()
	require.ErrorIs(t, err, ErrReleased)
	_, err = bts.Take()
	require.ErrorIs(t, err, ErrReleased)
}

func TestReleaseExactlyOnce(t *testing.T) {
	xtest.TestManyTimes(t, func(t testing.TB) {
		b := NewBytes([]byte{0x01})

		var (
			wg       sync.WaitGroup
			released atomic.Int32
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if b.Release() == nil {
					released.Add(1)
				}
			}()
		}
		wg.Wait()

		require.EqualValues(t, 1, released.Load())
	}, xtest.WithDuration(100*time.Millisecond))
}
