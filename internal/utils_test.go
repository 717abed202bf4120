package internal_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/nthpart/go-rawhttp/internal"
	"github.com/nthpart/go-rawhttp/internal/dialer"
	"github.com/nthpart/go-rawhttp/internal/http"
)

type CombinedReadWriteCloser struct {
	io.Reader
	io.Writer
	Closed bool
}

func (c *CombinedReadWriteCloser) Close() error {
	c.Closed = true
	return nil
}

type TestDialer struct {
	conn io.ReadWriteCloser
}

// Dial implements dialer.Dialer.
func (t *TestDialer) Dial(ctx context.Context, r *http.Request) (io.ReadWriteCloser, error) {
	return t.conn, nil
}

// Unwrap implements dialer.Dialer.
func (t *TestDialer) Unwrap() dialer.Dialer {
	return nil
}

// SendSingleRequest pushes req through a client wired to a canned response
// and returns the bytes the client put on the wire plus the parsed response.
func SendSingleRequest(t *testing.T, req *http.Request, response string) ([]byte, *http.Response) {
	t.Helper()
	var wire bytes.Buffer
	c := &internal.Client{}
	c.UseDialer(func(dialer.Dialer) dialer.Dialer {
		return &TestDialer{&CombinedReadWriteCloser{
			Reader: strings.NewReader(response),
			Writer: &wire,
		}}
	})
	resp, err := c.CtxDo(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	return wire.Bytes(), resp
}
