package transport

import (
	"io"

	model "github.com/nthpart/go-rawhttp/internal/http"
)

type Transport interface {
	Read(r io.Reader, resp *model.Response) error
	Write(w io.Writer, req *model.Request) error
}

var core Transport = &http1{}

// Write serializes req onto w.
func Write(w io.Writer, req *model.Request) error {
	return core.Write(w, req)
}

// Read parses one response from r into resp.
func Read(r io.Reader, resp *model.Response) error {
	return core.Read(r, resp)
}
