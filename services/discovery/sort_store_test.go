// File: services/discovery/sort_store_test.go
package discovery

import (
	"testing"

	"hobyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortStoreNotifiesOnEveryEdit(t *testing.T) {
	store := NewSortStore(models.SortCriteria{
		Key:        models.SortProximity,
		DistanceKm: 10,
		Mode:       models.ActivityOffline,
	})

	var seen []models.SortCriteria
	store.Subscribe(func(c models.SortCriteria) { seen = append(seen, c) })

	store.SetKey(models.SortNewest)
	store.SetDistance(25)
	store.SetMode(models.ActivityOnline)

	require.Len(t, seen, 3, "sort edits commit immediately, one notification each")
	assert.Equal(t, models.SortNewest, seen[0].Key)
	assert.Equal(t, 25, seen[1].DistanceKm)
	assert.Equal(t, models.ActivityOnline, seen[2].Mode)
	assert.Equal(t, seen[2], store.Criteria())
}

func TestSortStoreUnsubscribe(t *testing.T) {
	store := NewSortStore(models.SortCriteria{Key: models.SortProximity})

	calls := 0
	unsubscribe := store.Subscribe(func(models.SortCriteria) { calls++ })

	store.SetKey(models.SortPopular)
	unsubscribe()
	store.SetKey(models.SortNewest)

	assert.Equal(t, 1, calls)
}
