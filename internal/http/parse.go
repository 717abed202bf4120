package http

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Parse converts raw HTTP/1.x request text into a [Request]. CRLF and LF
// line endings are both accepted. Request text carries no scheme, so it is
// supplied by the caller; an empty scheme means "http".
//
// The text must consist of a request line, zero or more header lines, a
// blank line, and the body. Anything else fails with a
// [MalformedRequestError] and no request is returned.
func Parse(raw, scheme string) (*Request, error) {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	head, body, ok := strings.Cut(text, "\n\n")
	if !ok {
		return nil, &MalformedRequestError{Reason: "no blank line terminating the header block"}
	}

	lines := strings.Split(head, "\n")
	tokens := strings.Fields(lines[0])
	if len(tokens) != 3 {
		return nil, &MalformedRequestError{
			Reason: fmt.Sprintf("request line %q is not METHOD TARGET VERSION", lines[0]),
		}
	}

	r := New(scheme)
	r.Method, r.Version = tokens[0], tokens[2]
	target := tokens[1]

	// fragment first, then query, then the decoded path
	target, r.Fragment, _ = strings.Cut(target, "#")
	path, query, _ := strings.Cut(target, "?")
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	if path == "" {
		path = "/"
	}
	r.Path = path
	r.Query = ParseParams(query)

	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &MalformedRequestError{
				Reason: fmt.Sprintf("header line %q has no colon", line),
			}
		}
		r.Headers.Set(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	r.rawBody = body
	return r, nil
}

// ParseFile reads raw request text from a file. See [Parse].
func ParseFile(path, scheme string) (*Request, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(b), scheme)
}
