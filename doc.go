// Package httpkit is a request-extraction toolkit for net/http services:
// typed values are pulled out of an incoming request (or its metadata
// view) before a handler runs, with composable success/failure semantics,
// body-size protection, per-request memoization, and an adapter that
// turns any extractor into request-filtering middleware.
//
// # Package Organization
//
//	github.com/dmitrymomot/httpkit/core/request - request/parts model, extension store, body limit
//	github.com/dmitrymomot/httpkit/core/extract - extraction contracts, combinators, built-ins, cache
//	github.com/dmitrymomot/httpkit/core/config  - type-safe environment variable loading
//	github.com/dmitrymomot/httpkit/core/logger  - structured logging attribute helpers
//	github.com/dmitrymomot/httpkit/middleware   - extractor adapter, body limit, request ID
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/httpkit/core/extract
//	go doc -all github.com/dmitrymomot/httpkit/middleware
package httpkit
