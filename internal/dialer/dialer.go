package dialer

import (
	"context"
	"crypto/tls"
	"io"
	"time"

	"github.com/nthpart/go-rawhttp/internal/http"
)

// Dialers handle everything related to the actual connection. The returned
// stream carries exactly one exchange: the serialized request is written to
// it and one response is read back, then it is closed.
type Dialer interface {
	// Dial returns an abstract stream for writing the request and reading responses.
	// the implementation of this stream could be specific to protocols.
	Dial(ctx context.Context, r *http.Request) (io.ReadWriteCloser, error)
	Unwrap() Dialer
}

type CoreDialer struct {
	TLSConfig *tls.Config   // the config to use for https requests
	Timeout   time.Duration // connect timeout, zero means none
}

func (d *CoreDialer) Clone() *CoreDialer {
	return &CoreDialer{
		TLSConfig: d.TLSConfig.Clone(),
		Timeout:   d.Timeout,
	}
}

func (d *CoreDialer) Unwrap() Dialer {
	return nil
}
