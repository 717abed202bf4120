package http

import (
	"reflect"
	"testing"
)

func TestHeadersCaseInsensitive(t *testing.T) {
	h := NewHeaders()
	h.Set("X-Foo", "1")

	for _, key := range []string{"X-Foo", "x-foo", "X-FOO"} {
		if got := h.Get(key); got != "1" {
			t.Errorf("Get(%q) = %q, want %q", key, got, "1")
		}
		if !h.Has(key) {
			t.Errorf("Has(%q) = false", key)
		}
	}

	// a differently-cased write updates the entry, not its display casing
	h.Set("x-FOO", "2")
	if got := h.Get("X-Foo"); got != "2" {
		t.Errorf("Get after recased Set = %q, want %q", got, "2")
	}
	if got := h.Keys(); !reflect.DeepEqual(got, []string{"X-Foo"}) {
		t.Errorf("Keys = %v, want [X-Foo]", got)
	}
}

func TestHeadersInsertionOrder(t *testing.T) {
	h := NewHeaders()
	h.Set("Host", "example.com")
	h.Set("Content-Type", "application/json")
	h.Set("X-Trace", "abc")
	h.Set("host", "other.example.com") // update, keeps position and casing

	want := []string{"Host", "Content-Type", "X-Trace"}
	if got := h.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
	if got := h.Get("HOST"); got != "other.example.com" {
		t.Errorf("Get(HOST) = %q", got)
	}
}

func TestHeadersDelete(t *testing.T) {
	h := NewHeaders()
	h.Set("X-Foo", "1")
	h.Set("X-Bar", "2")
	h.Del("x-FOO")

	if h.Has("X-Foo") || h.Len() != 1 {
		t.Errorf("entry not deleted: keys=%v", h.Keys())
	}

	// deleting a missing key is a no-op
	h.Del("X-Foo")

	// re-adding after delete takes the new casing, at the end
	h.Set("x-foo", "3")
	want := []string{"X-Bar", "x-foo"}
	if got := h.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
}

func TestHeadersClone(t *testing.T) {
	h := NewHeaders()
	h.Set("X-Foo", "1")
	c := h.Clone()
	c.Set("X-Foo", "2")
	c.Set("X-Bar", "3")

	if got := h.Get("X-Foo"); got != "1" {
		t.Errorf("original mutated: %q", got)
	}
	if h.Has("X-Bar") {
		t.Error("original grew a key from the clone")
	}
}
