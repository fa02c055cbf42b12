package extract

import (
	"context"

	"github.com/dmitrymomot/httpkit/core/request"
)

// Extract runs a full-request extractor with no application state.
// It consumes the request if the extractor consumes the body; use
// ExtractParts when the body should be preserved for a later extractor.
func Extract[T any](ctx context.Context, req *request.Request, fn RequestFunc[T, struct{}]) (T, error) {
	return fn(ctx, req, struct{}{})
}

// ExtractWithState runs a full-request extractor with an explicit
// application state.
func ExtractWithState[T, S any](ctx context.Context, req *request.Request, fn RequestFunc[T, S], state S) (T, error) {
	return fn(ctx, req, state)
}

// ExtractParts runs a metadata extractor against the request's metadata
// view in place, leaving the body untouched. Any mutations the extractor
// makes (consumed headers, inserted extensions) land directly on the
// request, so several metadata extractions can precede the final
// body-consuming one on a single request object.
func ExtractParts[T any](ctx context.Context, req *request.Request, fn PartsFunc[T, struct{}]) (T, error) {
	return fn(ctx, &req.Parts, struct{}{})
}

// ExtractPartsWithState is ExtractParts with an explicit application state.
func ExtractPartsWithState[T, S any](ctx context.Context, req *request.Request, fn PartsFunc[T, S], state S) (T, error) {
	return fn(ctx, &req.Parts, state)
}

// ExtractFromParts runs a metadata extractor against a bare metadata view
// with no application state.
func ExtractFromParts[T any](ctx context.Context, parts *request.Parts, fn PartsFunc[T, struct{}]) (T, error) {
	return fn(ctx, parts, struct{}{})
}

// ExtractFromPartsWithState is ExtractFromParts with an explicit
// application state.
func ExtractFromPartsWithState[T, S any](ctx context.Context, parts *request.Parts, fn PartsFunc[T, S], state S) (T, error) {
	return fn(ctx, parts, state)
}
