package http

import (
	"strconv"
	"strings"
)

// Wire renders the request as transmittable HTTP/1.x text: the request
// line, the headers in insertion order, a blank line, then the body.
//
// A Content-Length header computed from the body length is appended when
// the caller has not set one; a caller-set value is never overridden. The
// request itself is not mutated.
//
//	GET /search?q=cats HTTP/1.1\r\n
//	Host: example.com\r\n
//	Content-Length: 0\r\n
//	\r\n
func (r *Request) Wire() string {
	var b strings.Builder

	b.WriteString(r.Method)
	b.WriteByte(' ')
	b.WriteString(r.Target())
	b.WriteByte(' ')
	b.WriteString(r.Version)
	b.WriteString("\r\n")

	for _, name := range r.Headers.Keys() {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(r.Headers.Get(name))
		b.WriteString("\r\n")
	}
	if !r.Headers.Has("Content-Length") {
		b.WriteString("Content-Length: ")
		b.WriteString(strconv.Itoa(len(r.rawBody)))
		b.WriteString("\r\n")
	}

	b.WriteString("\r\n")
	b.WriteString(r.rawBody)
	return b.String()
}

// String renders the request for display, same as [Request.Wire].
func (r *Request) String() string {
	return r.Wire()
}
