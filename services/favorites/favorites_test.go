// File: services/favorites/favorites_test.go
package favorites

import (
	"context"
	"testing"

	"hobyhub/database/localstore"
	"hobyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActivity(id string) models.Activity {
	return models.Activity{ID: id, Title: "Activity " + id, CategoryID: "art"}
}

func TestToggleRoundTrip(t *testing.T) {
	svc := &DefaultFavoritesService{Store: localstore.NewMemoryStore()}
	ctx := context.Background()

	favorited, err := svc.Toggle(ctx, "s1", testActivity("a1"))
	require.NoError(t, err)
	assert.True(t, favorited)

	on, err := svc.IsFavorited(ctx, "s1", "a1")
	require.NoError(t, err)
	assert.True(t, on)

	favorited, err = svc.Toggle(ctx, "s1", testActivity("a1"))
	require.NoError(t, err)
	assert.False(t, favorited)

	on, err = svc.IsFavorited(ctx, "s1", "a1")
	require.NoError(t, err)
	assert.False(t, on)
}

func TestToggleKeepsCardSnapshot(t *testing.T) {
	svc := &DefaultFavoritesService{Store: localstore.NewMemoryStore()}
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "s1", testActivity("a1"))
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "s1", testActivity("a2"))
	require.NoError(t, err)

	list, err := svc.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Activity a1", list["a1"].Title)
}

func TestToggleRejectsMissingID(t *testing.T) {
	svc := &DefaultFavoritesService{Store: localstore.NewMemoryStore()}

	_, err := svc.Toggle(context.Background(), "s1", models.Activity{})
	assert.Error(t, err)
}

func TestListEmptyWithoutStoredValue(t *testing.T) {
	svc := &DefaultFavoritesService{Store: localstore.NewMemoryStore()}

	list, err := svc.List(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Another tab may write favorites behind our back; every read must see the
// latest stored value, not a cached one.
func TestReadsSeeExternalWrites(t *testing.T) {
	store := localstore.NewMemoryStore()
	svc := &DefaultFavoritesService{Store: store}
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "s1", testActivity("a1"))
	require.NoError(t, err)

	external := models.FavoritesMap{"a9": testActivity("a9")}
	require.NoError(t, store.Set(ctx, localstore.Key(localstore.KeyFavorites, "s1"), external))

	on, err := svc.IsFavorited(ctx, "s1", "a9")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = svc.IsFavorited(ctx, "s1", "a1")
	require.NoError(t, err)
	assert.False(t, on)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := &DefaultFavoritesService{Store: localstore.NewMemoryStore()}
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "s1", testActivity("a1"))
	require.NoError(t, err)

	on, err := svc.IsFavorited(ctx, "s2", "a1")
	require.NoError(t, err)
	assert.False(t, on)
}
