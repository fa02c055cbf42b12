// Package extract implements declarative, typed extraction of values from
// HTTP requests with composable success/failure semantics.
//
// # Capability contracts
//
// Two function contracts, both parameterized by an application state S:
//
//   - PartsFunc extracts from the metadata view only. Any number of
//     metadata extractors can run per request, in any order.
//   - RequestFunc extracts from the full request and may consume the
//     body. At most one body-consuming extractor can run per request,
//     and it must run last.
//
// FromParts upgrades any PartsFunc to a RequestFunc, so handler plumbing
// can treat both uniformly.
//
// # Running extractors
//
// Extract and ExtractWithState run a full-request extractor; ExtractParts
// and ExtractPartsWithState run a metadata extractor against a request
// without consuming it, leaving the body for a later extraction:
//
//	req := request.FromHTTP(r)
//	method, _ := extract.ExtractParts(ctx, req, extract.Method[struct{}])
//	hdrs, _ := extract.ExtractParts(ctx, req, extract.Headers[struct{}])
//	body, err := extract.Extract(ctx, req, extract.Text[struct{}])
//
// # Failure semantics
//
// Failures are values: a Rejection carries a status, a machine-readable
// code, and optionally a wrapped cause, and renders itself as a response.
// The Optional and Try combinators absorb inner failures, converting them
// into absence (nil) or a surfaced Result respectively.
//
// # Memoization
//
// Cached wraps a metadata extractor so that, within one request, its
// underlying extraction runs at most once; the result is kept in the
// request's extension store keyed by its type.
package extract
