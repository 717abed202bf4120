package internal

import (
	"context"
	"io"

	"github.com/nthpart/go-rawhttp/internal/dialer"
	"github.com/nthpart/go-rawhttp/internal/http"
	"github.com/nthpart/go-rawhttp/internal/transport"
)

type Request = http.Request
type Response = http.Response

type Handler = func(ctx context.Context, req *Request) (*Response, error)
type Middleware func(next Handler) Handler

type Client struct {
	middlewares []Middleware
	dialer      dialer.Dialer
}

// Use appends mw to the end of the chain. The last "Use"d mw executes first
func (c *Client) Use(mws ...Middleware) {
	c.middlewares = append(c.middlewares, mws...)
}

// UseDialer replaces the dialer with whatever wrap builds from the current
// one. wrap receives nil when no dialer was installed yet.
func (c *Client) UseDialer(wrap func(dialer.Dialer) dialer.Dialer) {
	c.dialer = wrap(c.dialer)
}

var coreDialer = &dialer.CoreDialer{}

func (c *Client) dial(ctx context.Context, req *Request) (io.ReadWriteCloser, error) {
	if c.dialer != nil {
		return c.dialer.Dial(ctx, req)
	}
	return coreDialer.Dial(ctx, req)
}

// CtxDo serializes req, performs one exchange over a fresh connection and
// returns the response. req is never mutated; mutate-then-resend is the
// intended loop for callers.
func (c *Client) CtxDo(ctx context.Context, req *Request) (*Response, error) {
	if !req.Headers.Has("Host") {
		return nil, http.ErrMissingHost
	}
	next := func(ctx context.Context, req *Request) (*Response, error) {
		conn, err := c.dial(ctx, req)
		if err != nil {
			return nil, err
		}
		if err := transport.Write(conn, req); err != nil {
			conn.Close()
			return nil, err
		}
		resp := &Response{}
		if err := transport.Read(conn, resp); err != nil {
			conn.Close()
			return nil, err
		}
		return resp, nil
	}
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		next = c.middlewares[i](next)
	}
	return next(ctx, req)
}
