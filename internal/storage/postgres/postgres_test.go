package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/pasajeros/internal/storage"
)

// Runs against a real server only when PASAJEROS_TEST_POSTGRES_DSN is set.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("PASAJEROS_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("PASAJEROS_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	store, err := New(ctx, dsn)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.pool.Exec(ctx, "DELETE FROM kv")
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, storage.KeyPassengers)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(ctx, storage.KeyPassengers, "[]"))
	require.NoError(t, store.Set(ctx, storage.KeyPassengers, `[{"id":1}]`))

	value, ok, err := store.Get(ctx, storage.KeyPassengers)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":1}]`, value)
}

func TestNew_InvalidDSN(t *testing.T) {
	_, err := New(context.Background(), "postgres://%zz")
	require.Error(t, err)
}
