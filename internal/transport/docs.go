// package transport contains implementations to requirements on *message syntaxes*
// defined by http related RFCs, currently:
//
//	HTTP Semantics (RFC9110) and
//	HTTP/1.1 (RFC9112)
//
// only the HTTP/1.x syntax is spoken. chunked transfer coding and the h2/h3
// framings are out of scope; a chunked response is rejected rather than
// decoded.
//
// net/http components are reused on the response "semantics" part
// ([net/http.Header] etc.)

package transport
