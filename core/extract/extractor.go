package extract

import (
	"context"

	"github.com/dmitrymomot/httpkit/core/request"
)

// PartsFunc extracts a typed value from the request's metadata view.
//
// Metadata extractors must not touch the body, so any number of them can
// run against one request in any order: they only read or mutate the
// metadata view and the shared application state S, and extension-store
// writes for distinct types commute.
//
// A failed extraction returns a Rejection (or any error convertible to a
// response via RenderError). Infallible extractors always return nil.
type PartsFunc[T, S any] func(ctx context.Context, parts *request.Parts, state S) (T, error)

// RequestFunc extracts a typed value from the full request and may consume
// the body. Because the body can be consumed at most once, at most one
// body-consuming extractor should run per request, after every metadata
// extractor that still needs the request.
type RequestFunc[T, S any] func(ctx context.Context, req *request.Request, state S) (T, error)

// FromParts upgrades a metadata extractor to a full-request extractor.
// The extraction runs against the request's metadata view; the body is
// left alone. This lets metadata-only and body-consuming extractors be
// mixed behind one contract without bespoke glue.
func FromParts[T, S any](fn PartsFunc[T, S]) RequestFunc[T, S] {
	return func(ctx context.Context, req *request.Request, state S) (T, error) {
		return fn(ctx, &req.Parts, state)
	}
}

// MapState adapts a metadata extractor that only needs a projection of the
// application state, so it can be used where the full state S is threaded:
//
//	userStore := func(s AppState) *UserStore { return s.Users }
//	ex := extract.MapState(currentUser, userStore)
func MapState[T, S, Sub any](fn PartsFunc[T, Sub], project func(S) Sub) PartsFunc[T, S] {
	return func(ctx context.Context, parts *request.Parts, state S) (T, error) {
		return fn(ctx, parts, project(state))
	}
}

// MapStateRequest is MapState for full-request extractors.
func MapStateRequest[T, S, Sub any](fn RequestFunc[T, Sub], project func(S) Sub) RequestFunc[T, S] {
	return func(ctx context.Context, req *request.Request, state S) (T, error) {
		return fn(ctx, req, project(state))
	}
}
