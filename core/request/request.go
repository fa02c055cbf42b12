package request

import (
	"io"
	"net/http"
	"net/url"
)

// Parts is the metadata view of a request: everything except the body.
// It is mutable in place and exclusively owned by whichever component
// currently holds the request, so no locking is needed.
type Parts struct {
	// Method is the HTTP verb (http.MethodGet etc.).
	Method string

	// URL is the request target.
	URL *url.URL

	// Proto is the protocol version token, e.g. "HTTP/1.1".
	Proto string

	// Header is the case-insensitive header multimap. Value order is
	// preserved per key.
	Header http.Header

	// Extensions is the per-request type-keyed value store.
	Extensions *Extensions
}

// Request is a Parts plus an optional body stream. The body can be
// consumed at most once; after consumption the request yields http.NoBody.
type Request struct {
	Parts

	body io.ReadCloser
}

// FromHTTP builds a Request from a net/http request.
//
// The URL and header map are shared with the original request, not copied,
// so metadata mutations made by extractors are visible on both sides.
// If an extension store was already attached to the request context (for
// example by middleware that configured a body limit), it is reused;
// otherwise a fresh one is created.
func FromHTTP(r *http.Request) *Request {
	ext, ok := ExtensionsFrom(r.Context())
	if !ok {
		ext = NewExtensions()
	}

	body := r.Body
	if body == nil {
		body = http.NoBody
	}

	return &Request{
		Parts: Parts{
			Method:     r.Method,
			URL:        r.URL,
			Proto:      r.Proto,
			Header:     r.Header,
			Extensions: ext,
		},
		body: body,
	}
}

// New builds a Request from scratch. It is mostly useful in tests and in
// code that constructs synthetic requests; server code should use FromHTTP.
// A nil body yields a request whose body is http.NoBody.
func New(method string, u *url.URL, body io.ReadCloser) *Request {
	if body == nil {
		body = http.NoBody
	}
	if u == nil {
		u = &url.URL{Path: "/"}
	}
	return &Request{
		Parts: Parts{
			Method:     method,
			URL:        u,
			Proto:      "HTTP/1.1",
			Header:     make(http.Header),
			Extensions: NewExtensions(),
		},
		body: body,
	}
}

// TakeBody returns the body stream and marks it consumed. Subsequent calls
// return http.NoBody, so a second body-consuming extractor observes an
// empty body rather than a duplicate of prior bytes.
func (r *Request) TakeBody() io.ReadCloser {
	body := r.body
	r.body = http.NoBody
	return body
}

// BodyConsumed reports whether the body has already been taken.
func (r *Request) BodyConsumed() bool {
	return r.body == http.NoBody
}

// Attach splices this request's metadata back into a net/http request
// derived from hr and reattaches the (possibly untouched) body. The
// extension store is carried in the returned request's context so that
// downstream handlers and extractors observe the same store.
//
// Splicing moves pointers, not values: the header map and URL are handed
// over as-is, so repeated metadata extraction is O(1) per field.
func (r *Request) Attach(hr *http.Request) *http.Request {
	out := hr.WithContext(WithExtensions(hr.Context(), r.Extensions))
	out.Method = r.Method
	out.URL = r.URL
	out.Proto = r.Proto
	out.Header = r.Header
	out.Body = r.body
	return out
}
