package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	page := "docs/rules/aria_role/index.html"
	body := "<!doctype html><title>aria_role</title>"

	t.Run("Save creates parent directories", func(t *testing.T) {
		n, err := store.Save(ctx, page, strings.NewReader(body))

		require.NoError(t, err)
		assert.Equal(t, int64(len(body)), n)

		isDir, err := afero.IsDir(memFs, "docs/rules/aria_role")
		require.NoError(t, err)
		assert.True(t, isDir)
	})

	t.Run("Open", func(t *testing.T) {
		f, err := store.Open(ctx, page)
		require.NoError(t, err)
		defer f.Close()

		got, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, body, string(got))
	})

	t.Run("Save overwrites", func(t *testing.T) {
		_, err := store.Save(ctx, page, strings.NewReader("short"))
		require.NoError(t, err)

		got, err := afero.ReadFile(memFs, page)
		require.NoError(t, err)
		assert.Equal(t, "short", string(got))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, page))

		exists, err := afero.Exists(memFs, page)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Open non-existent file", func(t *testing.T) {
		_, err := store.Open(ctx, "nothing.html")
		assert.Error(t, err)
	})

	t.Run("Save honours cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Save(cctx, "index.html", strings.NewReader(body))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
