// Package middleware provides net/http middleware built around the
// extraction core: an adapter that turns any metadata extractor into a
// request filter, body-limit configuration via the per-request extension
// store, and request ID assignment.
//
// # Extractor as middleware
//
// FromExtractor runs an extractor before the inner handler. A successful
// extraction is discarded and the request continues inward, including any
// extension-store mutations the extractor made; a failed extraction
// short-circuits with the rejection's response:
//
//	requireAuth := func(ctx context.Context, p *request.Parts, _ struct{}) (Token, error) {
//		...
//	}
//
//	handler = middleware.FromExtractor(requireAuth, struct{}{})(handler)
//
// # Body limit
//
// BodyLimit and friends do not wrap the body; they store a
// request.BodyLimit marker in the extension store, which body-consuming
// extractors apply lazily. BodyLimitFromEnv reads the cap from the
// environment through core/config.
package middleware
