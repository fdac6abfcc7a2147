package buffer

import (
	"errors"
	"sync/atomic"

	"github.com/ydb-platform/ydb-go-bignum/internal/xerrors"
)

var ErrReleased = errors.New("buffer: already released")

type owned[T string | []byte] struct {
	v        T
	released atomic.Bool
}

func (o *owned[T]) take() (v T, _ error) {
	if o == nil || o.released.Load() {
		return v, xerrors.WithStackTrace(ErrReleased, xerrors.WithSkipDepth(1))
	}

	v, o.v = o.v, v

	return v, nil
}

func (o *owned[T]) release() error {
	if o == nil {
		return nil
	}
	if o.released.Swap(true) {
		return xerrors.WithStackTrace(ErrReleased, xerrors.WithSkipDepth(1))
	}

	var zero T
	o.v = zero

	return nil
}

// Text is a string result handed to a caller. Content can be taken once,
// the holder must be released exactly once.
type Text struct {
	o owned[string]
}

func NewText(s string) *Text {
	return &Text{o: owned[string]{v: s}}
}

// Take moves the content out of t and leaves it empty.
func (t *Text) Take() (string, error) {
	if t == nil {
		return "", xerrors.WithStackTrace(ErrReleased)
	}

	return t.o.take()
}

// Release is a no-op on nil.
func (t *Text) Release() error {
	if t == nil {
		return nil
	}

	return t.o.release()
}

type Bytes struct {
	o owned[[]byte]
}

func NewBytes(p []byte) *Bytes {
	return &Bytes{o: owned[[]byte]{v: p}}
}

func (b *Bytes) Take() ([]byte, error) {
	if b == nil {
		return nil, xerrors.WithStackTrace(ErrReleased)
	}

	return b.o.take()
}

func (b *Bytes) Release() error {
	if b == nil {
		return nil
	}

	return b.o.release()
}
