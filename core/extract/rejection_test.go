package extract_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/httpkit/core/extract"
)

func TestRejection(t *testing.T) {
	t.Parallel()

	t.Run("matches_by_code_through_wrapping", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("pipe closed")
		rej := extract.ErrFailedToBuffer.Wrap(cause)

		assert.ErrorIs(t, rej, extract.ErrFailedToBuffer)
		assert.ErrorIs(t, rej, cause)
		assert.NotErrorIs(t, rej, extract.ErrBodyTooLarge)
	})

	t.Run("with_message_keeps_identity", func(t *testing.T) {
		t.Parallel()

		rej := extract.ErrInvalidUTF8.WithMessage("custom message")
		assert.ErrorIs(t, rej, extract.ErrInvalidUTF8)
		assert.Equal(t, "custom message", rej.Error())
	})

	t.Run("error_string_includes_cause", func(t *testing.T) {
		t.Parallel()

		rej := extract.ErrFailedToBuffer.Wrap(errors.New("pipe closed"))
		assert.Contains(t, rej.Error(), "pipe closed")
	})

	t.Run("renders_status_and_message", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", nil)

		require.NoError(t, extract.ErrBodyTooLarge.Render(w, r))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), extract.ErrBodyTooLarge.Message)
	})

	t.Run("zero_status_renders_as_500", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		rej := extract.Rejection{Code: "NO_STATUS", Message: "boom"}
		require.NoError(t, rej.Render(w, r))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRenderError(t *testing.T) {
	t.Parallel()

	t.Run("rejections_render_themselves", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		require.NoError(t, extract.RenderError(w, r, extract.ErrInvalidUTF8))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrapped_rejections_are_unwrapped", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		err := errors.Join(errors.New("outer"), extract.ErrBodyTooLarge)
		require.NoError(t, extract.RenderError(w, r, err))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("transport_errors_never_leak", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		require.NoError(t, extract.RenderError(w, r, errors.New("dial tcp 10.0.0.1: connection refused")))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "dial tcp")
	})
}
