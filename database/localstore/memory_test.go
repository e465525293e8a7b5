package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyScoping(t *testing.T) {
	assert.Equal(t, "favorites:s1", Key(KeyFavorites, "s1"))
	assert.NotEqual(t, Key(KeyFavorites, "s1"), Key(KeyFavorites, "s2"))
}

func TestSchemaAheadOfBinaryIsRejected(t *testing.T) {
	assert.NoError(t, ensureSupportedSchema(0))
	assert.NoError(t, ensureSupportedSchema(CurrentSchemaVersion))
	assert.Error(t, ensureSupportedSchema(CurrentSchemaVersion+1), "never downgrade a newer store")
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	type profile struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}

	in := profile{Name: "Asha", Phone: "+919800000000"}
	require.NoError(t, store.Set(ctx, Key(KeyUserProfile, "s1"), in))

	var out profile
	require.NoError(t, store.Get(ctx, Key(KeyUserProfile, "s1"), &out))
	assert.Equal(t, in, out)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()

	var out string
	err := store.Get(context.Background(), "nope", &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Delete(ctx, "k"))

	var out string
	assert.ErrorIs(t, store.Get(ctx, "k", &out), ErrNotFound)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SetTTL(ctx, "k", "v", 10*time.Millisecond))

	var out string
	require.NoError(t, store.Get(ctx, "k", &out))
	assert.Equal(t, "v", out)

	time.Sleep(20 * time.Millisecond)
	assert.ErrorIs(t, store.Get(ctx, "k", &out), ErrNotFound)
}

func TestMemoryStoreSetClearsTTL(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SetTTL(ctx, "k", "v1", 10*time.Millisecond))
	require.NoError(t, store.Set(ctx, "k", "v2"))

	time.Sleep(20 * time.Millisecond)
	var out string
	require.NoError(t, store.Get(ctx, "k", &out))
	assert.Equal(t, "v2", out)
}
