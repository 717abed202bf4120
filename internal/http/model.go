package http

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const DefaultVersion = "HTTP/1.1"

// defaultPorts maps a scheme to the port implied when the Host header
// carries none.
var defaultPorts = map[string]string{
	"http": "80", "https": "443",
}

// Request is a single outbound HTTP request, held in a mutable, structured
// form. It is built either from defaults ([New], [NewFromURL]) or from raw
// wire text ([Parse]), mutated in place, and rendered back to wire text
// with [Request.Wire]. It is not safe for concurrent mutation.
type Request struct {
	Method   string
	Path     string // decoded, no query or fragment
	Query    *Params
	Fragment string // without the leading "#"
	Version  string
	Scheme   string // "http" or "https", never part of the wire text
	Headers  *Headers

	rawBody string
}

// New returns a request with GET / HTTP/1.1 defaults and no headers.
// An empty scheme means "http".
func New(scheme string) *Request {
	if scheme == "" {
		scheme = "http"
	}
	return &Request{
		Method:  "GET",
		Path:    "/",
		Query:   NewParams(),
		Version: DefaultVersion,
		Scheme:  scheme,
		Headers: NewHeaders(),
	}
}

// NewFromURL builds a request from an absolute URL: scheme, Host header,
// path, query and fragment are taken from it. The URL must carry a scheme.
func NewFromURL(rawurl string) (*Request, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("url %q has no scheme", rawurl)
	}
	r := New(u.Scheme)
	r.Headers.Set("Host", u.Host)
	if u.Path != "" {
		r.Path = u.Path
	}
	r.Query = ParseParams(u.RawQuery)
	r.Fragment = u.Fragment
	return r, nil
}

// Body returns the raw body text.
func (r *Request) Body() string {
	return r.rawBody
}

// SetBody overwrites the body with raw text. A raw write is authoritative
// regardless of Content-Type; the structured accessors see the new text on
// their next call.
func (r *Request) SetBody(body string) {
	r.rawBody = body
}

// Target renders the request-target: escaped path, then "?" and the encoded
// query when non-empty, then "#" and the fragment when non-empty.
func (r *Request) Target() string {
	t := (&url.URL{Path: r.Path}).EscapedPath()
	if t == "" {
		t = "/"
	}
	if r.Query.Len() > 0 {
		t += "?" + r.Query.Encode()
	}
	if r.Fragment != "" {
		t += "#" + r.Fragment
	}
	return t
}

// Host returns the hostname from the Host header, without any port.
func (r *Request) Host() (string, error) {
	hp, ok := r.Headers.Lookup("Host")
	if !ok {
		return "", ErrMissingHost
	}
	if host, _, err := net.SplitHostPort(hp); err == nil {
		return host, nil
	}
	return hp, nil
}

// Port returns the port from the Host header, falling back to the default
// for the scheme. The result is empty for an unknown scheme.
func (r *Request) Port() (string, error) {
	hp, ok := r.Headers.Lookup("Host")
	if !ok {
		return "", ErrMissingHost
	}
	if _, port, err := net.SplitHostPort(hp); err == nil {
		return port, nil
	}
	return defaultPorts[r.Scheme], nil
}

// SetHostPort rewrites the Host header. A port that is the default for the
// scheme (or empty) is elided.
func (r *Request) SetHostPort(host, port string) {
	if port == "" || port == defaultPorts[r.Scheme] {
		r.Headers.Set("Host", host)
	} else {
		r.Headers.Set("Host", net.JoinHostPort(host, port))
	}
}

// URL reconstructs the absolute URL from the scheme, Host header and
// request-target, eliding a scheme-default port.
func (r *Request) URL() (string, error) {
	host, err := r.Host()
	if err != nil {
		return "", err
	}
	port, err := r.Port()
	if err != nil {
		return "", err
	}
	u := r.Scheme + "://" + host
	if port != "" && port != defaultPorts[r.Scheme] {
		u += ":" + port
	}
	return u + r.Target(), nil
}

func (r *Request) Clone() *Request {
	c := *r
	c.Query = r.Query.Clone()
	c.Headers = r.Headers.Clone()
	return &c
}

// bodyKind is the capability the Content-Type header grants over the body.
type bodyKind int

const (
	bodyRaw bodyKind = iota
	bodyJSON
	bodyForm
)

// contentKind classifies the Content-Type header at the moment of the call.
// The header is re-read on every access, so changing it after the body was
// written changes the dispatch of the next access.
func (r *Request) contentKind() (bodyKind, string) {
	ct := r.Headers.Get("Content-Type")
	mt, _, _ := strings.Cut(ct, ";")
	switch mt = strings.ToLower(strings.TrimSpace(mt)); {
	case mt == "application/json" || strings.HasSuffix(mt, "+json"):
		return bodyJSON, ct
	case mt == "application/x-www-form-urlencoded":
		return bodyForm, ct
	}
	return bodyRaw, ct
}

// jsonObject gates structured JSON access: the raw body must be a single
// valid JSON object.
func (r *Request) jsonObject(ct string) error {
	if !gjson.Valid(r.rawBody) {
		return &BodyTypeError{ContentType: ct, Err: fmt.Errorf("invalid JSON")}
	}
	if !gjson.Parse(r.rawBody).IsObject() {
		return &BodyTypeError{ContentType: ct, Err: fmt.Errorf("not a JSON object")}
	}
	return nil
}

// Field reads a top-level key from the structured body. A missing key
// yields nil without error; a request whose Content-Type is not JSON or
// form-encoded yields an [UnsupportedContentTypeError].
func (r *Request) Field(key string) (interface{}, error) {
	switch kind, ct := r.contentKind(); kind {
	case bodyJSON:
		if err := r.jsonObject(ct); err != nil {
			return nil, err
		}
		res := gjson.Get(r.rawBody, escapePath(key))
		if !res.Exists() {
			return nil, nil
		}
		return res.Value(), nil
	case bodyForm:
		if v, ok := ParseParams(r.rawBody).Lookup(key); ok {
			return v, nil
		}
		return nil, nil
	default:
		return nil, &UnsupportedContentTypeError{ContentType: ct}
	}
}

// SetField writes a top-level key of the structured body and re-renders the
// raw text in the same call, so Body and the structured view never diverge.
// Form values are stringified; JSON values keep their type.
func (r *Request) SetField(key string, value interface{}) error {
	switch kind, ct := r.contentKind(); kind {
	case bodyJSON:
		if err := r.jsonObject(ct); err != nil {
			return err
		}
		out, err := sjson.Set(r.rawBody, escapePath(key), value)
		if err != nil {
			return &BodyTypeError{ContentType: ct, Err: err}
		}
		r.rawBody = out
		return nil
	case bodyForm:
		form := ParseParams(r.rawBody)
		form.Set(key, fmt.Sprint(value))
		r.rawBody = form.Encode()
		return nil
	default:
		return &UnsupportedContentTypeError{ContentType: ct}
	}
}

// DelField removes a top-level key from the structured body. Deleting a
// missing key is a no-op.
func (r *Request) DelField(key string) error {
	switch kind, ct := r.contentKind(); kind {
	case bodyJSON:
		if err := r.jsonObject(ct); err != nil {
			return err
		}
		out, err := sjson.Delete(r.rawBody, escapePath(key))
		if err != nil {
			return &BodyTypeError{ContentType: ct, Err: err}
		}
		r.rawBody = out
		return nil
	case bodyForm:
		form := ParseParams(r.rawBody)
		form.Del(key)
		r.rawBody = form.Encode()
		return nil
	default:
		return &UnsupportedContentTypeError{ContentType: ct}
	}
}

// HasField reports whether the structured body carries key at the top level.
func (r *Request) HasField(key string) (bool, error) {
	switch kind, ct := r.contentKind(); kind {
	case bodyJSON:
		if err := r.jsonObject(ct); err != nil {
			return false, err
		}
		return gjson.Get(r.rawBody, escapePath(key)).Exists(), nil
	case bodyForm:
		return ParseParams(r.rawBody).Has(key), nil
	default:
		return false, &UnsupportedContentTypeError{ContentType: ct}
	}
}

// escapePath quotes gjson/sjson path syntax so a field name is always
// addressed as a literal top-level key.
func escapePath(key string) string {
	var b strings.Builder
	for _, c := range key {
		switch c {
		case '.', '*', '?', '\\', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Response is what comes back from one exchange on the wire.
type Response struct {
	Proto      string
	Status     string
	StatusCode int
	Header     http.Header

	ContentLength int64
	Body          io.ReadCloser

	text *string
}

// Text drains and closes the body, caching the result so repeated calls
// return the same string.
func (r *Response) Text() (string, error) {
	if r.text != nil {
		return *r.text, nil
	}
	if r.Body == nil {
		return "", nil
	}
	b, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		return "", err
	}
	s := string(b)
	r.text = &s
	return s, nil
}
