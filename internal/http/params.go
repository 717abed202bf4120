package http

import (
	"net/url"
	"strings"
)

// Params is an ordered string-to-string map holding the query string or an
// url-encoded form body. Unlike [net/url.Values] it is single-valued:
// duplicate keys are last-write-wins, which is also how duplicates in parsed
// input are resolved.
type Params struct {
	keys   []string
	values map[string]string
}

func NewParams() *Params {
	return &Params{values: map[string]string{}}
}

// ParseParams decodes "a=1&b=2" syntax. A key with no "=" maps to the empty
// string. Percent-escapes are decoded on both sides; tokens that fail to
// decode are kept literally rather than failing the parse.
func ParseParams(encoded string) *Params {
	p := NewParams()
	if encoded == "" {
		return p
	}
	for _, pair := range strings.Split(encoded, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		p.Set(unescape(k), unescape(v))
	}
	return p
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

func (p *Params) Get(key string) string {
	return p.values[key]
}

func (p *Params) Lookup(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

func (p *Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

func (p *Params) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

func (p *Params) Del(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

func (p *Params) Len() int {
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Encode renders the pairs in insertion order with url-escaped keys and
// values, e.g. "a=1&b=2".
func (p *Params) Encode() string {
	var b strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.values[k]))
	}
	return b.String()
}

func (p *Params) Clone() *Params {
	c := NewParams()
	c.keys = append(c.keys, p.keys...)
	for k, v := range p.values {
		c.values[k] = v
	}
	return c
}
