package credstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebulohub/mobile/core/credstore"
)

func TestMemory_GetSet(t *testing.T) {
	t.Parallel()

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()

		store := credstore.NewMemory()
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "token", "abc123"))

		value, err := store.Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "abc123", value)
	})

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		t.Parallel()

		store := credstore.NewMemory()

		_, err := store.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, credstore.ErrNotFound)
	})

	t.Run("set overwrites previous value", func(t *testing.T) {
		t.Parallel()

		store := credstore.NewMemory()
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "token", "old"))
		require.NoError(t, store.Set(ctx, "token", "new"))

		value, err := store.Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "new", value)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		store := credstore.NewMemory()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.Get(ctx, "token")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemory_RemoveAll(t *testing.T) {
	t.Parallel()

	t.Run("removes all given keys", func(t *testing.T) {
		t.Parallel()

		store := credstore.NewMemory()
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "token", "t"))
		require.NoError(t, store.Set(ctx, "user", "u"))
		require.NoError(t, store.Set(ctx, "expires_at", "123"))

		require.NoError(t, store.RemoveAll(ctx, "token", "user", "expires_at"))

		for _, key := range []string{"token", "user", "expires_at"} {
			_, err := store.Get(ctx, key)
			assert.ErrorIs(t, err, credstore.ErrNotFound)
		}
	})

	t.Run("missing keys are not an error", func(t *testing.T) {
		t.Parallel()

		store := credstore.NewMemory()
		assert.NoError(t, store.RemoveAll(context.Background(), "a", "b"))
	})
}
