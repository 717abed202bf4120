package http

import "strings"

// Headers is an ordered, case-insensitive header container. Lookups and
// mutations fold case; iteration yields keys in insertion order, displayed
// with the casing they were first written with. Writing to a key that
// already exists under a different casing updates that entry in place.
type Headers struct {
	keys   []string          // display casing, insertion order
	values map[string]string // folded key -> value
}

func NewHeaders() *Headers {
	return &Headers{values: map[string]string{}}
}

// Get returns the value stored under key, or "" when absent.
func (h *Headers) Get(key string) string {
	return h.values[strings.ToLower(key)]
}

// Lookup is Get plus a presence flag, for callers that must distinguish
// an empty value from a missing header.
func (h *Headers) Lookup(key string) (string, bool) {
	v, ok := h.values[strings.ToLower(key)]
	return v, ok
}

func (h *Headers) Has(key string) bool {
	_, ok := h.values[strings.ToLower(key)]
	return ok
}

func (h *Headers) Set(key, value string) {
	k := strings.ToLower(key)
	if _, ok := h.values[k]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[k] = value
}

func (h *Headers) Del(key string) {
	k := strings.ToLower(key)
	if _, ok := h.values[k]; !ok {
		return
	}
	delete(h.values, k)
	for i, name := range h.keys {
		if strings.ToLower(name) == k {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
}

func (h *Headers) Len() int {
	return len(h.keys)
}

// Keys returns the header names in insertion order, originally cased.
func (h *Headers) Keys() []string {
	return append([]string(nil), h.keys...)
}

func (h *Headers) Clone() *Headers {
	c := NewHeaders()
	c.keys = append(c.keys, h.keys...)
	for k, v := range h.values {
		c.values[k] = v
	}
	return c
}
