package extract

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/dmitrymomot/httpkit/core/request"
)

// Built-in extractors for the request's own fields. The metadata ones are
// infallible and clone the field they return, so callers can hold on to
// the value without aliasing the live request. All of them are generic
// over the application state so they slot into any extraction pipeline:
//
//	method, _ := extract.ExtractParts(ctx, req, extract.Method[struct{}])

// Method returns the request method.
func Method[S any](_ context.Context, parts *request.Parts, _ S) (string, error) {
	return parts.Method, nil
}

// URI returns a copy of the request URL.
func URI[S any](_ context.Context, parts *request.Parts, _ S) (*url.URL, error) {
	u := *parts.URL
	return &u, nil
}

// Proto returns the protocol version token, e.g. "HTTP/1.1".
func Proto[S any](_ context.Context, parts *request.Parts, _ S) (string, error) {
	return parts.Proto, nil
}

// Headers returns a clone of the header multimap.
func Headers[S any](_ context.Context, parts *request.Parts, _ S) (http.Header, error) {
	return parts.Header.Clone(), nil
}

// RawQuery returns the raw query string without parsing it, or "" when
// the request has none.
func RawQuery[S any](_ context.Context, parts *request.Parts, _ S) (string, error) {
	return parts.URL.RawQuery, nil
}

// Bytes reads the body to completion with the body-limit policy applied
// and returns the raw bytes. It consumes the body, so it must run after
// any metadata extractors that still need the request.
//
// Failures are buffering rejections: ErrBodyTooLarge when the limit is
// crossed, ErrFailedToBuffer for I/O or protocol errors, both wrapping
// the underlying error.
func Bytes[S any](ctx context.Context, req *request.Request, _ S) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrFailedToBuffer.Wrap(err)
	}

	body, _ := req.LimitedBody()
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, failedToBuffer(err)
	}
	return data, nil
}

// Text reads the body via Bytes and decodes it as UTF-8.
//
// A buffering failure passes through unchanged; bytes that buffered
// successfully but are not valid UTF-8 fail with ErrInvalidUTF8, which
// carries no buffering cause.
func Text[S any](ctx context.Context, req *request.Request, state S) (string, error) {
	data, err := Bytes(ctx, req, state)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}
