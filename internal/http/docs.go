// package http contains the request and response model, which are meant
// to be exported. the package name is meant to be same with the top
// level package name so that IDEs and code editors could pick them up
//
// the model keeps the raw body text as the single source of truth: the
// structured body accessors decode it on every call and re-render it on
// every mutation, dispatching on the Content-Type header at that moment
package http

import (
	"net/http"
)

var NoBody = http.NoBody
