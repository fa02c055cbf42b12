package middleware

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/httpkit/core/config"
	"github.com/dmitrymomot/httpkit/core/extract"
	"github.com/dmitrymomot/httpkit/core/request"
)

// BodyLimitConfig configures the body limit middleware. The env tags allow
// loading it through core/config for deployments that size limits per
// environment.
type BodyLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool `env:"-"`

	// MaxSize is the maximum allowed body size in bytes
	// (default: request.DefaultBodyLimit)
	MaxSize int64 `env:"BODY_LIMIT_MAX_SIZE" envDefault:"2097152"`

	// Disabled bypasses body limiting entirely for matched requests
	Disabled bool `env:"BODY_LIMIT_DISABLED" envDefault:"false"`

	// DisableContentLengthCheck skips the Content-Length preflight and
	// only enforces the limit when the body is actually consumed
	DisableContentLengthCheck bool `env:"BODY_LIMIT_NO_PREFLIGHT" envDefault:"false"`
}

// BodyLimit creates body limit middleware with the process-wide default cap.
//
// The middleware does not wrap the body itself: it stores a request.BodyLimit
// marker in the request's extension store, and the limit is applied lazily
// when (and only when) an extractor chooses to consume the body.
func BodyLimit() func(http.Handler) http.Handler {
	return BodyLimitWithConfig(BodyLimitConfig{})
}

// BodyLimitWithSize creates body limit middleware with an explicit cap.
func BodyLimitWithSize(maxSize int64) func(http.Handler) http.Handler {
	return BodyLimitWithConfig(BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitDisabled creates middleware that disables body limiting for
// the requests it covers. Downstream consumers receive the raw body and
// must apply their own discipline.
func BodyLimitDisabled() func(http.Handler) http.Handler {
	return BodyLimitWithConfig(BodyLimitConfig{Disabled: true})
}

// BodyLimitFromEnv creates body limit middleware configured from the
// environment (BODY_LIMIT_MAX_SIZE, BODY_LIMIT_DISABLED,
// BODY_LIMIT_NO_PREFLIGHT). It panics if the environment cannot be
// parsed, which is the intended failure mode at process startup.
func BodyLimitFromEnv() func(http.Handler) http.Handler {
	var cfg BodyLimitConfig
	config.MustLoad(&cfg)
	return BodyLimitWithConfig(cfg)
}

// BodyLimitWithConfig creates body limit middleware with custom
// configuration.
func BodyLimitWithConfig(cfg BodyLimitConfig) func(http.Handler) http.Handler {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = request.DefaultBodyLimit
	}

	mark := request.LimitBody(cfg.MaxSize)
	if cfg.Disabled {
		mark = request.DisableBodyLimit()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			// Declared-length preflight: reject obviously oversized bodies
			// before anything reads them.
			if !cfg.Disabled && !cfg.DisableContentLengthCheck {
				if cl := r.Header.Get("Content-Length"); cl != "" {
					if length, err := strconv.ParseInt(cl, 10, 64); err == nil && length > cfg.MaxSize {
						_ = extract.ErrBodyTooLarge.Render(w, r)
						return
					}
				}
			}

			ext, ok := request.ExtensionsFrom(r.Context())
			if !ok {
				ext = request.NewExtensions()
				r = r.WithContext(request.WithExtensions(r.Context(), ext))
			}
			request.Set(ext, mark)

			next.ServeHTTP(w, r)
		})
	}
}
