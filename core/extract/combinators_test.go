package extract_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/httpkit/core/extract"
	"github.com/dmitrymomot/httpkit/core/request"
)

var errAlways = extract.Rejection{
	Status:  http.StatusUnauthorized,
	Code:    "ALWAYS_FAILS",
	Message: "this extractor always fails",
}

func alwaysFails(_ context.Context, _ *request.Parts, _ struct{}) (string, error) {
	return "", errAlways
}

func TestOptional(t *testing.T) {
	t.Parallel()

	t.Run("absorbs_inner_failure_into_absence", func(t *testing.T) {
		t.Parallel()

		req := newRequest(t, http.MethodGet, "http://example.com/", "")

		got, err := extract.ExtractParts(context.Background(), req, extract.OptionalParts(alwaysFails))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("passes_successful_values_through", func(t *testing.T) {
		t.Parallel()

		req := newRequest(t, http.MethodGet, "http://example.com/", "")

		got, err := extract.ExtractParts(context.Background(), req, extract.OptionalParts(extract.Method[struct{}]))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, http.MethodGet, *got)
	})

	t.Run("composes_with_the_coercion_rule", func(t *testing.T) {
		t.Parallel()

		req := newRequest(t, http.MethodPost, "http://example.com/", "oversized")
		request.Set(req.Extensions, request.LimitBody(4))

		got, err := extract.Extract(context.Background(), req, extract.Optional(extract.Bytes[struct{}]))
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestTry(t *testing.T) {
	t.Parallel()

	t.Run("surfaces_the_inner_rejection", func(t *testing.T) {
		t.Parallel()

		req := newRequest(t, http.MethodGet, "http://example.com/", "")

		res, err := extract.ExtractParts(context.Background(), req, extract.TryParts(alwaysFails))
		require.NoError(t, err)
		assert.False(t, res.Ok())
		assert.ErrorIs(t, res.Err, errAlways)
	})

	t.Run("surfaces_the_inner_value", func(t *testing.T) {
		t.Parallel()

		req := newRequest(t, http.MethodGet, "http://example.com/", "")

		res, err := extract.ExtractParts(context.Background(), req, extract.TryParts(extract.Method[struct{}]))
		require.NoError(t, err)
		assert.True(t, res.Ok())
		assert.Equal(t, http.MethodGet, res.Value)
	})

	t.Run("full_request_variant", func(t *testing.T) {
		t.Parallel()

		req := newRequest(t, http.MethodPost, "http://example.com/", "hello")

		res, err := extract.Extract(context.Background(), req, extract.Try(extract.Text[struct{}]))
		require.NoError(t, err)
		assert.True(t, res.Ok())
		assert.Equal(t, "hello", res.Value)
	})
}
