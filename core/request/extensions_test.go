package request_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/httpkit/core/request"
)

type firstMarker struct{ n int }

type secondMarker struct{ s string }

func TestExtensions_SetGet(t *testing.T) {
	t.Parallel()

	t.Run("missing_type_reports_absent", func(t *testing.T) {
		t.Parallel()

		ext := request.NewExtensions()

		_, ok := request.Get[firstMarker](ext)
		assert.False(t, ok)
		assert.Equal(t, 0, ext.Len())
	})

	t.Run("stores_one_value_per_type", func(t *testing.T) {
		t.Parallel()

		ext := request.NewExtensions()
		request.Set(ext, firstMarker{n: 1})
		request.Set(ext, secondMarker{s: "a"})

		first, ok := request.Get[firstMarker](ext)
		require.True(t, ok)
		assert.Equal(t, 1, first.n)

		second, ok := request.Get[secondMarker](ext)
		require.True(t, ok)
		assert.Equal(t, "a", second.s)

		assert.Equal(t, 2, ext.Len())
	})

	t.Run("later_insert_replaces_earlier", func(t *testing.T) {
		t.Parallel()

		ext := request.NewExtensions()
		request.Set(ext, firstMarker{n: 1})
		request.Set(ext, firstMarker{n: 2})

		got, ok := request.Get[firstMarker](ext)
		require.True(t, ok)
		assert.Equal(t, 2, got.n)
		assert.Equal(t, 1, ext.Len())
	})

	t.Run("writes_for_distinct_types_commute", func(t *testing.T) {
		t.Parallel()

		left := request.NewExtensions()
		request.Set(left, firstMarker{n: 7})
		request.Set(left, secondMarker{s: "x"})

		right := request.NewExtensions()
		request.Set(right, secondMarker{s: "x"})
		request.Set(right, firstMarker{n: 7})

		lf, _ := request.Get[firstMarker](left)
		rf, _ := request.Get[firstMarker](right)
		assert.Equal(t, lf, rf)

		ls, _ := request.Get[secondMarker](left)
		rs, _ := request.Get[secondMarker](right)
		assert.Equal(t, ls, rs)
	})

	t.Run("delete_and_clear", func(t *testing.T) {
		t.Parallel()

		ext := request.NewExtensions()
		request.Set(ext, firstMarker{n: 1})
		request.Set(ext, secondMarker{s: "a"})

		request.Delete[firstMarker](ext)
		_, ok := request.Get[firstMarker](ext)
		assert.False(t, ok)
		assert.Equal(t, 1, ext.Len())

		ext.Clear()
		assert.Equal(t, 0, ext.Len())
	})
}

func TestExtensions_ContextBridge(t *testing.T) {
	t.Parallel()

	t.Run("round_trips_through_context", func(t *testing.T) {
		t.Parallel()

		ext := request.NewExtensions()
		request.Set(ext, firstMarker{n: 42})

		ctx := request.WithExtensions(context.Background(), ext)

		got, ok := request.ExtensionsFrom(ctx)
		require.True(t, ok)
		assert.Same(t, ext, got)
	})

	t.Run("absent_from_bare_context", func(t *testing.T) {
		t.Parallel()

		_, ok := request.ExtensionsFrom(context.Background())
		assert.False(t, ok)
	})
}
