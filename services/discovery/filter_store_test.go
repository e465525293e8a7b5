package discovery

import (
	"testing"

	"hobyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterStoreEditsAreDrafts(t *testing.T) {
	store := NewFilterStore()

	var snapshots []models.FilterSnapshot
	store.Subscribe(func(snap models.FilterSnapshot) {
		snapshots = append(snapshots, snap)
	})

	store.SetGender("female")
	store.SetAge("8-12")
	store.SetTime("morning")
	store.SetPriceRange(500, 2000)
	store.SetLocation("Kothrud")
	store.SetCoordinates(18.5074, 73.8077)
	store.SetCategory("cat-1", "sub-3")
	store.SetFiltersApplied(true)

	assert.Empty(t, snapshots, "edits alone must not notify")

	store.TriggerUpdate()

	require.Len(t, snapshots, 1, "one trigger delivers exactly one snapshot")
	snap := snapshots[0]
	assert.Equal(t, uint64(1), snap.Trigger)
	assert.Equal(t, "female", snap.Criteria.Gender)
	assert.Equal(t, "8-12", snap.Criteria.Age)
	assert.Equal(t, "morning", snap.Criteria.Time)
	assert.Equal(t, [2]int{500, 2000}, snap.Criteria.PriceRange)
	assert.Equal(t, "Kothrud", snap.Criteria.Location)
	assert.Equal(t, "cat-1", snap.Criteria.CategoryID)
	assert.Equal(t, "sub-3", snap.Criteria.SubCategoryID)
	assert.True(t, snap.Criteria.FiltersApplied)
}

func TestFilterStoreTriggerWithoutEdits(t *testing.T) {
	store := NewFilterStore()

	var count int
	store.Subscribe(func(models.FilterSnapshot) { count++ })

	// The counter advances even when nothing changed, forcing consumers to
	// re-run on repeated searches.
	store.TriggerUpdate()
	store.TriggerUpdate()

	assert.Equal(t, 2, count)
	assert.Equal(t, uint64(2), store.Trigger())
}

func TestFilterStoreClearResetsDefaults(t *testing.T) {
	store := NewFilterStore()
	store.SetGender("male")
	store.SetAge("13-18")
	store.SetTime("evening")
	store.SetPriceRange(100, 900)
	store.SetFiltersApplied(true)

	var last models.FilterSnapshot
	store.Subscribe(func(snap models.FilterSnapshot) { last = snap })

	store.Clear()

	require.Equal(t, uint64(1), last.Trigger, "clear triggers once")
	assert.Empty(t, last.Criteria.Gender)
	assert.Empty(t, last.Criteria.Age)
	assert.Empty(t, last.Criteria.Time)
	assert.Equal(t, [2]int{models.DefaultPriceMin, models.DefaultPriceMax}, last.Criteria.PriceRange)
	assert.False(t, last.Criteria.FiltersApplied)
}

func TestFilterStoreUnsubscribe(t *testing.T) {
	store := NewFilterStore()

	var count int
	unsubscribe := store.Subscribe(func(models.FilterSnapshot) { count++ })

	store.TriggerUpdate()
	unsubscribe()
	store.TriggerUpdate()

	assert.Equal(t, 1, count)
}
