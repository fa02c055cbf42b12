package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/httpkit/core/extract"
	"github.com/dmitrymomot/httpkit/core/request"
)

// RequestID is the per-request identifier stored in the extension store
// by WithRequestID and read back by ExtractRequestID.
type RequestID string

// ErrMissingRequestID is the rejection for requests that reached
// ExtractRequestID without passing through WithRequestID.
var ErrMissingRequestID = extract.Rejection{
	Status:  http.StatusInternalServerError,
	Code:    "MISSING_REQUEST_ID",
	Message: "no request ID assigned to this request",
}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	// Generator creates new request IDs (default: UUID v4)
	Generator func() string

	// HeaderName specifies the response header for the request ID
	// (default: "X-Request-ID")
	HeaderName string

	// UseExisting reuses a request ID already present in the incoming
	// request's headers instead of generating a new one
	UseExisting bool
}

// WithRequestID creates request ID middleware with default configuration.
// It assigns a unique identifier to each request, stores it in the
// extension store, and echoes it in the response headers.
func WithRequestID() func(http.Handler) http.Handler {
	return WithRequestIDConfig(RequestIDConfig{})
}

// WithRequestIDConfig creates request ID middleware with custom
// configuration.
func WithRequestIDConfig(cfg RequestIDConfig) func(http.Handler) http.Handler {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			var id string
			if cfg.UseExisting {
				id = r.Header.Get(cfg.HeaderName)
			}
			if id == "" {
				id = cfg.Generator()
			}

			ext, ok := request.ExtensionsFrom(r.Context())
			if !ok {
				ext = request.NewExtensions()
				r = r.WithContext(request.WithExtensions(r.Context(), ext))
			}
			request.Set(ext, RequestID(id))

			w.Header().Set(cfg.HeaderName, id)
			next.ServeHTTP(w, r)
		})
	}
}

// ExtractRequestID is a metadata extractor for the request ID assigned by
// WithRequestID. It fails with ErrMissingRequestID when no ID was
// assigned.
func ExtractRequestID[S any](_ context.Context, parts *request.Parts, _ S) (RequestID, error) {
	id, ok := request.Get[RequestID](parts.Extensions)
	if !ok {
		return "", ErrMissingRequestID
	}
	return id, nil
}
