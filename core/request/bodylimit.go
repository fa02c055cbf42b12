package request

import (
	"fmt"
	"io"
)

// DefaultBodyLimit is the process-wide cap on body size, applied whenever
// no BodyLimit marker is present in the request's extension store.
const DefaultBodyLimit int64 = 2_097_152 // 2 MB

// BodyLimit is the extension-store marker that overrides the default body
// limit for a single request. The zero value is not meaningful; use
// LimitBody or DisableBodyLimit.
type BodyLimit struct {
	disabled bool
	max      int64
}

// LimitBody returns a marker capping the body at n bytes.
func LimitBody(n int64) BodyLimit {
	return BodyLimit{max: n}
}

// DisableBodyLimit returns a marker that bypasses limiting entirely.
// Consumers of the raw body must apply their own discipline.
func DisableBodyLimit() BodyLimit {
	return BodyLimit{disabled: true}
}

// Disabled reports whether limiting is bypassed.
func (l BodyLimit) Disabled() bool {
	return l.disabled
}

// Max returns the configured cap in bytes. Only meaningful when limiting
// is not disabled.
func (l BodyLimit) Max() int64 {
	return l.max
}

// BodyLimitExceededError is returned by a limited body once the cumulative
// byte count would exceed the configured cap.
type BodyLimitExceededError struct {
	Limit int64
}

func (e *BodyLimitExceededError) Error() string {
	return fmt.Sprintf("request body exceeds limit of %d bytes", e.Limit)
}

// LimitedBody consumes the request body with the body-limit policy applied.
//
// The extension store is consulted for a BodyLimit marker: a disabled
// marker returns the raw body and limited=false, an explicit marker wraps
// the body with that cap, and absence of a marker applies DefaultBodyLimit.
// The returned reader fails with *BodyLimitExceededError on the read that
// would cross the cap; a body of exactly the cap's size reads to EOF
// without error.
func (r *Request) LimitedBody() (body io.ReadCloser, limited bool) {
	raw := r.TakeBody()

	mark, ok := Get[BodyLimit](r.Extensions)
	switch {
	case ok && mark.Disabled():
		return raw, false
	case ok:
		return newLimitReader(raw, mark.Max()), true
	default:
		return newLimitReader(raw, DefaultBodyLimit), true
	}
}

// limitReader enforces a byte cap on an underlying body stream.
//
// An I/O error from the underlying stream is returned from the read where
// it occurs, as-is; the limit error is only produced by a read that crosses
// the cap. Whichever condition happens first chronologically wins.
type limitReader struct {
	rc    io.ReadCloser
	limit int64
	read  int64
}

func newLimitReader(rc io.ReadCloser, limit int64) *limitReader {
	return &limitReader{rc: rc, limit: limit}
}

func (lr *limitReader) Read(p []byte) (int, error) {
	if lr.read > lr.limit {
		return 0, &BodyLimitExceededError{Limit: lr.limit}
	}

	// Allow reading one byte past the cap so an oversized body is detected
	// even when its length equals a buffer boundary.
	if remaining := lr.limit - lr.read + 1; int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := lr.rc.Read(p)
	lr.read += int64(n)

	if lr.read > lr.limit {
		return n, &BodyLimitExceededError{Limit: lr.limit}
	}
	return n, err
}

func (lr *limitReader) Close() error {
	return lr.rc.Close()
}
