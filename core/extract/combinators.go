package extract

import (
	"context"

	"github.com/dmitrymomot/httpkit/core/request"
)

// Result carries an extractor's own outcome when the caller wants to
// handle failures manually instead of aborting the composite extraction.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok reports whether the extraction succeeded.
func (r Result[T]) Ok() bool {
	return r.Err == nil
}

// Optional adapts a full-request extractor into one that never fails:
// on inner failure it yields nil and discards the rejection entirely.
func Optional[T, S any](fn RequestFunc[T, S]) RequestFunc[*T, S] {
	return func(ctx context.Context, req *request.Request, state S) (*T, error) {
		v, err := fn(ctx, req, state)
		if err != nil {
			return nil, nil
		}
		return &v, nil
	}
}

// OptionalParts is Optional for metadata extractors.
func OptionalParts[T, S any](fn PartsFunc[T, S]) PartsFunc[*T, S] {
	return func(ctx context.Context, parts *request.Parts, state S) (*T, error) {
		v, err := fn(ctx, parts, state)
		if err != nil {
			return nil, nil
		}
		return &v, nil
	}
}

// Try adapts a full-request extractor into one that never fails at the
// outer level, surfacing the inner outcome as a Result for the caller to
// inspect.
func Try[T, S any](fn RequestFunc[T, S]) RequestFunc[Result[T], S] {
	return func(ctx context.Context, req *request.Request, state S) (Result[T], error) {
		v, err := fn(ctx, req, state)
		return Result[T]{Value: v, Err: err}, nil
	}
}

// TryParts is Try for metadata extractors.
func TryParts[T, S any](fn PartsFunc[T, S]) PartsFunc[Result[T], S] {
	return func(ctx context.Context, parts *request.Parts, state S) (Result[T], error) {
		v, err := fn(ctx, parts, state)
		return Result[T]{Value: v, Err: err}, nil
	}
}
