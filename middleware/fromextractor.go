package middleware

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/httpkit/core/extract"
	"github.com/dmitrymomot/httpkit/core/logger"
	"github.com/dmitrymomot/httpkit/core/request"
)

// FromExtractorConfig configures the extractor-as-middleware adapter.
type FromExtractorConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	// Logger records rejected requests (default: slog.Default())
	Logger *slog.Logger

	// ErrorHandler converts the extraction failure into the response sent
	// to the client (default: extract.RenderError)
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// FromExtractor turns a metadata extractor into request-filtering
// middleware with default configuration.
//
// The extraction runs against the request's metadata view with the body
// left untouched. On success the extracted value is discarded and the
// request is reassembled, carrying any mutations the extractor made (such
// as inserted extensions), before the inner handler runs exactly once.
// On failure the rejection is converted to a response and the inner
// handler is never invoked.
//
// This is useful for validation that produces no output of its own, e.g.
// running an authorization extractor in front of several handlers without
// repeating it in each one:
//
//	mux.Handle("/admin/", middleware.FromExtractor(requireAuth, state)(adminHandler))
func FromExtractor[T, S any](fn extract.PartsFunc[T, S], state S) func(http.Handler) http.Handler {
	return FromExtractorWithConfig(fn, state, FromExtractorConfig{})
}

// FromExtractorWithConfig is FromExtractor with custom configuration.
func FromExtractorWithConfig[T, S any](fn extract.PartsFunc[T, S], state S, cfg FromExtractorConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			_ = extract.RenderError(w, r, err)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			// Phase one: run the extraction over the metadata view. The
			// body stays attached to req and is reassembled below whether
			// or not the extraction succeeds.
			req := request.FromHTTP(r)

			if _, err := fn(r.Context(), &req.Parts, state); err != nil {
				cfg.Logger.LogAttrs(r.Context(), slog.LevelWarn, "request rejected by extractor",
					logger.Component("middleware"),
					logger.Event("extractor_rejected"),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.Error(err),
				)
				cfg.ErrorHandler(w, r, err)
				return
			}

			// Phase two: hand the reassembled request to the inner handler.
			next.ServeHTTP(w, req.Attach(r))
		})
	}
}
