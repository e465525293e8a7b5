// File: services/discovery/manager_test.go
package discovery

import (
	"context"
	"testing"
	"time"

	"hobyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGeocoder struct{ name string }

func (g staticGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	return g.name, nil
}

func newTestManager(lister ActivityLister) *Manager {
	return NewManager(lister, staticGeocoder{name: "Mumbai"}, "Pune", testPageSize, models.SortCriteria{
		Key:        models.SortProximity,
		DistanceKm: 10,
		Mode:       models.ActivityOffline,
	}, time.Minute)
}

func TestManagerReusesSession(t *testing.T) {
	m := newTestManager(&fakeLister{})

	a := m.Get("s1")
	b := m.Get("s1")
	c := m.Get("s2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, m.Count())
}

func TestManagerFilterEditsFetchOnlyOnTrigger(t *testing.T) {
	lister := &fakeLister{pages: map[int][]models.Activity{
		1: genActivities("p1", testPageSize),
	}}
	m := newTestManager(lister)
	sess := m.Get("s1")

	// A burst of edits is one draft; nothing hits the upstream until the
	// caller triggers.
	sess.Filters.SetGender("female")
	sess.Filters.SetAge("8-12")
	sess.Filters.SetTime("morning")
	sess.Filters.SetPriceRange(500, 2000)
	sess.Filters.SetFiltersApplied(true)
	require.Equal(t, 0, lister.queryCount())

	sess.Filters.TriggerUpdate()
	require.Equal(t, 1, lister.queryCount())

	q := lastQueryOf(t, lister)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, "female", q.Gender)
	assert.Equal(t, "8-12", q.Age)
	assert.Equal(t, "morning", q.Time)
	assert.Equal(t, [2]int{500, 2000}, q.PriceRange)
	assert.True(t, q.FiltersApplied)
}

func TestManagerSortEditCommitsImmediately(t *testing.T) {
	lister := &fakeLister{pages: map[int][]models.Activity{
		1: genActivities("p1", testPageSize),
	}}
	m := newTestManager(lister)
	sess := m.Get("s1")

	sess.Sort.SetKey(models.SortPriceAsc)
	require.Equal(t, 1, lister.queryCount())
	assert.Equal(t, models.SortPriceAsc, lastQueryOf(t, lister).Sort)
}
