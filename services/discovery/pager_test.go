// File: services/discovery/pager_test.go
package discovery

import (
	"context"
	"sync"
	"testing"
	"time"

	"hobyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoPagerAdvancesWhenIdle(t *testing.T) {
	lister := &fakeLister{pages: map[int][]models.Activity{
		1: genActivities("p1", testPageSize),
		2: genActivities("p2", testPageSize),
	}}
	feed := newTestFeed(lister)
	pager := NewAutoPager(feed)
	ctx := context.Background()

	feed.Refresh(ctx)
	require.True(t, pager.OnSentinelVisible(ctx))
	assert.Len(t, feed.Items(), 2*testPageSize)
	assert.Equal(t, 2, feed.State().Page)
}

func TestAutoPagerStopsAtEndOfList(t *testing.T) {
	lister := &fakeLister{pages: map[int][]models.Activity{
		1: genActivities("p1", testPageSize-1),
	}}
	feed := newTestFeed(lister)
	pager := NewAutoPager(feed)
	ctx := context.Background()

	feed.Refresh(ctx)
	require.False(t, feed.State().HasMore)

	assert.False(t, pager.OnSentinelVisible(ctx))
	assert.Equal(t, 1, lister.queryCount(), "no fetch once the list is exhausted")
}

func TestAutoPagerDropsSignalsDuringFetch(t *testing.T) {
	lister := &blockingLister{}
	feed := newTestFeed(lister)
	pager := NewAutoPager(feed)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		feed.Refresh(ctx)
	}()
	require.Eventually(t, func() bool { return lister.callCount() == 1 },
		time.Second, time.Millisecond)

	// The first page is still in flight; visibility signals arriving now are
	// dropped, not queued.
	assert.False(t, pager.OnSentinelVisible(ctx))
	assert.False(t, pager.OnSentinelVisible(ctx))
	assert.Equal(t, 1, lister.callCount())

	lister.release(0, genActivities("p1", testPageSize))
	wg.Wait()

	assert.True(t, pager.OnSentinelVisible(ctx))
	assert.Equal(t, 2, feed.State().Page)
}
