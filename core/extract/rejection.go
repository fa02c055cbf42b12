package extract

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/httpkit/core/request"
)

// Rejection is a typed extraction failure convertible to an HTTP response.
// Distinct failure kinds carry distinct codes; composite failures wrap
// their cause, reachable through errors.Unwrap.
type Rejection struct {
	Status  int    // HTTP status code
	Code    string // Machine-readable failure code
	Message string // Human-readable message

	err error // wrapped cause, if any
}

// Error implements the error interface.
func (r Rejection) Error() string {
	if r.err != nil {
		return r.Message + ": " + r.err.Error()
	}
	return r.Message
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (r Rejection) Unwrap() error {
	return r.err
}

// Is matches rejections by code, so errors.Is(err, ErrBodyTooLarge) works
// on wrapped and re-messaged copies.
func (r Rejection) Is(target error) bool {
	t, ok := target.(Rejection)
	return ok && t.Code == r.Code
}

// Wrap returns a copy of the rejection carrying err as its cause.
func (r Rejection) Wrap(err error) Rejection {
	r.err = err
	return r
}

// WithMessage returns a copy of the rejection with a custom message.
func (r Rejection) WithMessage(message string) Rejection {
	r.Message = message
	return r
}

// Render writes the rejection as a plain-text response. It satisfies the
// contract that every rejection is convertible to a response.
func (r Rejection) Render(w http.ResponseWriter, _ *http.Request) error {
	status := r.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	http.Error(w, r.Message, status)
	return nil
}

// Predefined rejections produced by the built-in extractors.
var (
	// ErrBodyTooLarge is the buffering failure for a body that exceeds the
	// configured limit.
	ErrBodyTooLarge = Rejection{
		Status:  http.StatusRequestEntityTooLarge,
		Code:    "PAYLOAD_TOO_LARGE",
		Message: "request body is larger than the configured limit",
	}

	// ErrFailedToBuffer is the buffering failure for an I/O or protocol
	// error while reading the body to completion.
	ErrFailedToBuffer = Rejection{
		Status:  http.StatusInternalServerError,
		Code:    "FAILED_TO_BUFFER_BODY",
		Message: "failed to buffer the request body",
	}

	// ErrInvalidUTF8 is the encoding failure for body bytes that are not
	// valid UTF-8. It never wraps a buffering error: it can only occur
	// after a successful buffering stage.
	ErrInvalidUTF8 = Rejection{
		Status:  http.StatusBadRequest,
		Code:    "INVALID_UTF8",
		Message: "request body didn't contain valid UTF-8",
	}
)

// failedToBuffer maps a body-read error to its buffering rejection:
// limit violations become ErrBodyTooLarge, everything else
// ErrFailedToBuffer. The underlying error stays reachable via Unwrap.
func failedToBuffer(err error) Rejection {
	var limitErr *request.BodyLimitExceededError
	if errors.As(err, &limitErr) {
		return ErrBodyTooLarge.Wrap(err)
	}
	return ErrFailedToBuffer.Wrap(err)
}

// RenderError funnels any extraction failure into a response. Rejections
// render themselves; anything else becomes an opaque 500 so low-level
// transport errors never leak to the client.
func RenderError(w http.ResponseWriter, r *http.Request, err error) error {
	var rej Rejection
	if errors.As(err, &rej) {
		return rej.Render(w, r)
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	return nil
}
