package dialer

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"

	"golang.org/x/net/idna"

	"github.com/nthpart/go-rawhttp/internal/http"
)

func (d *CoreDialer) Dial(ctx context.Context, r *http.Request) (io.ReadWriteCloser, error) {
	host, err := r.Host()
	if err != nil {
		return nil, err
	}
	port, err := r.Port()
	if err != nil {
		return nil, err
	}
	if port == "" {
		return nil, fmt.Errorf("no default port for scheme %q", r.Scheme)
	}
	if mapped, err := idna.Lookup.ToASCII(host); err == nil {
		host = mapped
	}

	nd := net.Dialer{Timeout: d.Timeout}
	conn, err := nd.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, err
	}
	if r.Scheme == "https" {
		config := d.TLSConfig.Clone()
		if config == nil {
			config = &tls.Config{}
		}
		if config.ServerName == "" {
			config.ServerName = host
		}
		c := tls.Client(conn, config)
		if err := c.HandshakeContext(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		conn = c
	}
	return conn, nil
}
