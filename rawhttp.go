// Package rawhttp models a single outbound HTTP request as a mutable
// object: raw HTTP/1.x text parses into structured fields, the fields are
// edited through header, query and Content-Type-aware body accessors, and
// the current state renders back into well-formed wire text for sending.
package rawhttp

import (
	"github.com/nthpart/go-rawhttp/internal"
	"github.com/nthpart/go-rawhttp/internal/http"
)

type Client = internal.Client
type Request = http.Request
type Response = http.Response
type Headers = http.Headers
type Params = http.Params

type Middleware = internal.Middleware

type MalformedRequestError = http.MalformedRequestError
type UnsupportedContentTypeError = http.UnsupportedContentTypeError
type BodyTypeError = http.BodyTypeError

// ErrMissingHost is returned by operations that need a host (send, URL
// reconstruction) when the request has no Host header.
var ErrMissingHost = http.ErrMissingHost

// New returns a request with GET / HTTP/1.1 defaults. An empty scheme
// means "http".
func New(scheme string) *Request { return http.New(scheme) }

// NewFromURL builds a request from an absolute URL.
func NewFromURL(rawurl string) (*Request, error) { return http.NewFromURL(rawurl) }

// Parse converts raw HTTP/1.x request text into a Request. The scheme is
// not part of request text and is supplied by the caller; an empty scheme
// means "http".
func Parse(raw, scheme string) (*Request, error) { return http.Parse(raw, scheme) }

// ParseFile reads raw request text from a file. See [Parse].
func ParseFile(path, scheme string) (*Request, error) { return http.ParseFile(path, scheme) }

// RequestLogger is a client middleware that logs every exchange.
var RequestLogger = internal.RequestLogger
