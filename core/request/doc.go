// Package request models an incoming HTTP request as a metadata view
// (Parts) plus an at-most-once body stream, with a per-request type-keyed
// extension store and a configurable body-size limit.
//
// The package bridges net/http rather than replacing it: FromHTTP projects
// a *http.Request into a Request that extractors can work on, and Attach
// splices any metadata mutations back for downstream handlers.
//
// # Extension store
//
// Extensions maps type identity to a single value of that type. It is used
// both by the framework (the BodyLimit marker) and by user code (memoized
// extraction results, injected values):
//
//	request.Set(req.Extensions, CurrentUser{ID: 42})
//	user, ok := request.Get[CurrentUser](req.Extensions)
//
// Entries live exactly as long as the request and are never shared across
// requests.
//
// # Body limit
//
// Body consumption is gated by a process-wide default of 2,097,152 bytes,
// overridable per request by storing a BodyLimit marker before the body is
// read:
//
//	request.Set(req.Extensions, request.LimitBody(1<<20))
//	// or
//	request.Set(req.Extensions, request.DisableBodyLimit())
//
// LimitedBody applies whichever policy is in effect and reports whether
// the returned body is actually limited.
package request
