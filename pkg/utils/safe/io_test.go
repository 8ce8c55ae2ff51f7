package safe_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pipeboard/pkg/utils/safe"
)

func TestClose(t *testing.T) {
	t.Run("close valid reader", func(t *testing.T) {
		reader := io.NopCloser(bytes.NewReader([]byte("test")))
		safe.Close(reader) // Should not panic
	})

	t.Run("close nil reader", func(t *testing.T) {
		safe.Close(nil) // Should not panic
	})

	t.Run("close reader that returns error", func(t *testing.T) {
		safe.Close(&errorCloser{})
	})

	t.Run("close reader that returns EOF", func(t *testing.T) {
		safe.Close(&eofCloser{})
	})
}

func TestDrainClose(t *testing.T) {
	t.Run("drain and close body", func(t *testing.T) {
		body := &trackingBody{Reader: bytes.NewReader([]byte("remaining payload"))}
		safe.DrainClose(body)
		gt.True(t, body.closed)
		gt.V(t, body.Len()).Equal(0)
	})

	t.Run("nil body", func(t *testing.T) {
		safe.DrainClose(nil)
	})
}

type trackingBody struct {
	*bytes.Reader
	closed bool
}

func (x *trackingBody) Close() error {
	x.closed = true
	return nil
}

type errorCloser struct{}

func (e *errorCloser) Close() error {
	return io.ErrUnexpectedEOF
}

type eofCloser struct{}

func (e *eofCloser) Close() error {
	return io.EOF
}
