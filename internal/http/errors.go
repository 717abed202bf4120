package http

import (
	"errors"
	"fmt"
)

// ErrMissingHost is returned when an operation needs a host but the request
// carries no Host header.
var ErrMissingHost = errors.New("missing Host header")

// MalformedRequestError reports raw request text that does not match the
// request-line / header / body grammar.
type MalformedRequestError struct {
	Reason string
}

func (e *MalformedRequestError) Error() string {
	return "malformed request: " + e.Reason
}

// UnsupportedContentTypeError reports a structured body access against a
// Content-Type that does not describe a keyed body.
type UnsupportedContentTypeError struct {
	ContentType string
}

func (e *UnsupportedContentTypeError) Error() string {
	if e.ContentType == "" {
		return "structured body access requires a Content-Type header"
	}
	return fmt.Sprintf("content type %q does not support structured body access", e.ContentType)
}

// BodyTypeError reports a body that cannot be decoded as its declared
// Content-Type, e.g. invalid JSON under application/json.
type BodyTypeError struct {
	ContentType string
	Err         error
}

func (e *BodyTypeError) Error() string {
	return fmt.Sprintf("body does not decode as %q: %v", e.ContentType, e.Err)
}

func (e *BodyTypeError) Unwrap() error {
	return e.Err
}
