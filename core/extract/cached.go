package extract

import (
	"context"

	"github.com/dmitrymomot/httpkit/core/request"
)

// cacheEntry is the extension-store key for memoized results. It is a
// distinct type per T, so a cached value never collides with a plain T
// stored in the extensions by user code.
type cacheEntry[T any] struct {
	value T
}

// Cached memoizes a metadata extractor in the request's extension store.
//
// On a cache hit the stored value is returned without re-running the
// extraction: no side effect, no re-execution of fallible logic. On a
// miss the extraction runs once; a success is stored and returned, a
// failure propagates unchanged and is not cached. For a fixed request and
// type T the underlying extraction therefore runs at most once, no matter
// how many extractors depend on Cached(fn) transitively.
//
// The cache is purely type-based: one value per T per request, never
// shared across requests. Values are copied in and out by assignment, so
// T should be a value type or tolerate shallow copies.
//
// This is useful when a tree of extractors shares an expensive
// sub-extraction, e.g. loading a session that both an authorization
// extractor and the handler need:
//
//	session := extract.Cached(loadSession)
func Cached[T, S any](fn PartsFunc[T, S]) PartsFunc[T, S] {
	return func(ctx context.Context, parts *request.Parts, state S) (T, error) {
		if entry, ok := request.Get[cacheEntry[T]](parts.Extensions); ok {
			return entry.value, nil
		}

		v, err := fn(ctx, parts, state)
		if err != nil {
			return v, err
		}

		request.Set(parts.Extensions, cacheEntry[T]{value: v})
		return v, nil
	}
}
