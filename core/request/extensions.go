package request

import (
	"context"
	"reflect"
)

// Extensions is a per-request store mapping type identity to a single value
// of that type. Later inserts of the same type replace earlier ones, never
// merge. The store lives exactly as long as the request and is never shared
// across requests, so access needs no locking: a request's extractors run
// one at a time on a single logical task.
type Extensions struct {
	values map[reflect.Type]any
}

// NewExtensions creates an empty extension store.
func NewExtensions() *Extensions {
	return &Extensions{values: make(map[reflect.Type]any)}
}

// Len returns the number of stored values.
func (e *Extensions) Len() int {
	return len(e.values)
}

// Clear removes all stored values.
func (e *Extensions) Clear() {
	clear(e.values)
}

// Set stores value under T's type identity, replacing any previous value
// of the same type.
func Set[T any](e *Extensions, value T) {
	e.values[typeOf[T]()] = value
}

// Get returns the value stored under T's type identity, if any.
func Get[T any](e *Extensions) (T, bool) {
	v, ok := e.values[typeOf[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Delete removes the value stored under T's type identity, if any.
func Delete[T any](e *Extensions) {
	delete(e.values, typeOf[T]())
}

// typeOf resolves T's runtime type descriptor without allocating a value,
// which also works for interface types.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// extensionsContextKey is used to carry the extension store across the
// net/http boundary between middleware and handlers.
type extensionsContextKey struct{}

// WithExtensions attaches an extension store to a context.
func WithExtensions(ctx context.Context, e *Extensions) context.Context {
	return context.WithValue(ctx, extensionsContextKey{}, e)
}

// ExtensionsFrom retrieves the extension store attached to a context.
func ExtensionsFrom(ctx context.Context) (*Extensions, bool) {
	e, ok := ctx.Value(extensionsContextKey{}).(*Extensions)
	return e, ok
}
