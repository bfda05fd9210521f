package bbolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebulohub/mobile/core/credstore"
	credbolt "github.com/nebulohub/mobile/integration/credstore/bbolt"
)

func openStore(t *testing.T) *credbolt.Store {
	t.Helper()

	store, err := credbolt.Open(filepath.Join(t.TempDir(), "credentials.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStore_GetSet(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a value", func(t *testing.T) {
		t.Parallel()

		store := openStore(t)
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "token", "bearer-value"))

		value, err := store.Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "bearer-value", value)
	})

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		t.Parallel()

		store := openStore(t)

		_, err := store.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, credstore.ErrNotFound)
	})

	t.Run("empty database returns ErrNotFound", func(t *testing.T) {
		t.Parallel()

		store := openStore(t)

		_, err := store.Get(context.Background(), "token")
		assert.ErrorIs(t, err, credstore.ErrNotFound)
	})
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.db")
	ctx := context.Background()

	store, err := credbolt.Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "token", "persisted"))
	require.NoError(t, store.Close())

	reopened, err := credbolt.Open(path, nil)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, err := reopened.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "persisted", value)
}

func TestStore_RemoveAll(t *testing.T) {
	t.Parallel()

	t.Run("removes all given keys", func(t *testing.T) {
		t.Parallel()

		store := openStore(t)
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "token", "t"))
		require.NoError(t, store.Set(ctx, "user", "u"))

		require.NoError(t, store.RemoveAll(ctx, "token", "user"))

		_, err := store.Get(ctx, "token")
		assert.ErrorIs(t, err, credstore.ErrNotFound)
		_, err = store.Get(ctx, "user")
		assert.ErrorIs(t, err, credstore.ErrNotFound)
	})

	t.Run("missing keys are not an error", func(t *testing.T) {
		t.Parallel()

		store := openStore(t)
		assert.NoError(t, store.RemoveAll(context.Background(), "never-set"))
	})
}
