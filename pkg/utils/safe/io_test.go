package safe_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/m-mizutani/docswatch/pkg/utils/safe"
)

type errorCloser struct {
	err    error
	closed bool
}

func (x *errorCloser) Close() error {
	x.closed = true
	return x.err
}

func TestClose(t *testing.T) {
	t.Run("close valid reader", func(t *testing.T) {
		safe.Close(io.NopCloser(bytes.NewReader([]byte("test"))))
	})

	t.Run("close nil", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("close failure is only logged", func(t *testing.T) {
		for _, err := range []error{io.ErrUnexpectedEOF, io.EOF} {
			c := &errorCloser{err: err}
			safe.Close(c)
			if !c.closed {
				t.Error("closer was not called")
			}
		}
	})
}
