package discovery

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"hobyhub/api"
	"hobyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPageSize = 4

// fakeLister serves canned pages and records every query it saw.
type fakeLister struct {
	mu      sync.Mutex
	pages   map[int][]models.Activity
	err     error
	queries []api.ActivityQuery
}

func (l *fakeLister) ListActivities(ctx context.Context, q api.ActivityQuery) (*models.ActivityPage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queries = append(l.queries, q)
	if l.err != nil {
		return nil, l.err
	}
	return &models.ActivityPage{
		Activities: l.pages[q.Page],
		Page:       q.Page,
		PageSize:   q.PageSize,
	}, nil
}

func (l *fakeLister) queryCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queries)
}

func (l *fakeLister) lastQuery() api.ActivityQuery {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queries[len(l.queries)-1]
}

func genActivities(prefix string, n int) []models.Activity {
	out := make([]models.Activity, n)
	for i := range out {
		out[i] = models.Activity{ID: fmt.Sprintf("%s-%d", prefix, i), Title: prefix}
	}
	return out
}

func newTestFeed(lister ActivityLister) *Feed {
	return NewFeed(lister, testPageSize, models.SortCriteria{
		Key:        models.SortProximity,
		DistanceKm: 10,
		Mode:       models.ActivityOffline,
	})
}

func TestFeedRefreshReplacesAndLoadMoreAppends(t *testing.T) {
	lister := &fakeLister{pages: map[int][]models.Activity{
		1: genActivities("p1", testPageSize),
		2: genActivities("p2", testPageSize),
		3: genActivities("p3", 2),
	}}
	feed := newTestFeed(lister)

	feed.Refresh(context.Background())
	require.Len(t, feed.Items(), testPageSize)
	assert.True(t, feed.State().HasMore, "full page leaves hasMore pending the next fetch")

	feed.LoadMore(context.Background())
	items := feed.Items()
	require.Len(t, items, 2*testPageSize)
	assert.Equal(t, "p1-0", items[0].ID)
	assert.Equal(t, "p2-0", items[testPageSize].ID)

	feed.LoadMore(context.Background())
	require.Len(t, feed.Items(), 2*testPageSize+2)
	assert.False(t, feed.State().HasMore, "short page ends the list")

	// End reached: further signals must not fetch.
	before := lister.queryCount()
	feed.LoadMore(context.Background())
	assert.Equal(t, before, lister.queryCount())
}

func TestFeedEmptyFirstPage(t *testing.T) {
	lister := &fakeLister{pages: map[int][]models.Activity{1: {}}}
	feed := newTestFeed(lister)

	feed.Refresh(context.Background())

	assert.Empty(t, feed.Items())
	assert.False(t, feed.State().HasMore)
	assert.Equal(t, 1, feed.State().Page)
}

func TestFeedExactPageSizeKeepsHasMore(t *testing.T) {
	lister := &fakeLister{pages: map[int][]models.Activity{
		1: genActivities("p1", testPageSize),
		2: {},
	}}
	feed := newTestFeed(lister)

	feed.Refresh(context.Background())
	assert.True(t, feed.State().HasMore)

	feed.LoadMore(context.Background())
	assert.False(t, feed.State().HasMore)
	assert.Len(t, feed.Items(), testPageSize)
}

func TestFeedFetchErrorStopsPagination(t *testing.T) {
	lister := &fakeLister{pages: map[int][]models.Activity{
		1: genActivities("p1", testPageSize),
	}}
	feed := newTestFeed(lister)
	feed.Refresh(context.Background())

	lister.mu.Lock()
	lister.err = fmt.Errorf("upstream unreachable")
	lister.mu.Unlock()

	feed.LoadMore(context.Background())

	assert.False(t, feed.State().HasMore, "a fetch error forces hasMore false")
	assert.Len(t, feed.Items(), testPageSize, "already loaded items survive the error")
}

func TestFeedFilterChangeResetsToPageOne(t *testing.T) {
	lister := &fakeLister{pages: map[int][]models.Activity{
		1: genActivities("p1", testPageSize),
		2: genActivities("p2", testPageSize),
	}}
	feed := newTestFeed(lister)

	feed.Refresh(context.Background())
	feed.LoadMore(context.Background())
	require.Len(t, feed.Items(), 2*testPageSize)

	criteria := models.DefaultFilterCriteria()
	criteria.Gender = "female"
	criteria.FiltersApplied = true
	feed.OnFilterChange(context.Background(), models.FilterSnapshot{Criteria: criteria, Trigger: 1})

	assert.Equal(t, 1, feed.State().Page)
	assert.Len(t, feed.Items(), testPageSize, "page 1 replaces the accumulated list")
	assert.Equal(t, "female", lister.lastQuery().Gender)
	assert.True(t, lister.lastQuery().FiltersApplied)
}

func TestFeedSortChangeResetsToPageOne(t *testing.T) {
	lister := &fakeLister{pages: map[int][]models.Activity{
		1: genActivities("p1", 2),
	}}
	feed := newTestFeed(lister)

	feed.OnSortChange(context.Background(), models.SortCriteria{
		Key:        models.SortPriceAsc,
		DistanceKm: 25,
		Mode:       models.ActivityOnline,
	})

	q := lastQueryOf(t, lister)
	assert.Equal(t, models.SortPriceAsc, q.Sort)
	assert.Equal(t, 25, q.DistanceKm)
	assert.Equal(t, models.ActivityOnline, q.Mode)
	assert.Equal(t, models.ActivityOnline, q.Type, "the listing-type parameter tracks the mode toggle")
	assert.Equal(t, 1, q.Page)
}

func lastQueryOf(t *testing.T, lister *fakeLister) api.ActivityQuery {
	t.Helper()
	require.NotZero(t, lister.queryCount())
	return lister.lastQuery()
}

// blockingLister parks every call until the test releases it, so response
// arrival order can be forced.
type blockingLister struct {
	mu    sync.Mutex
	calls []chan []models.Activity
}

func (l *blockingLister) ListActivities(ctx context.Context, q api.ActivityQuery) (*models.ActivityPage, error) {
	ch := make(chan []models.Activity)
	l.mu.Lock()
	l.calls = append(l.calls, ch)
	l.mu.Unlock()
	activities := <-ch
	return &models.ActivityPage{Activities: activities, Page: q.Page, PageSize: q.PageSize}, nil
}

func (l *blockingLister) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

func (l *blockingLister) release(i int, activities []models.Activity) {
	l.mu.Lock()
	ch := l.calls[i]
	l.mu.Unlock()
	ch <- activities
}

func TestFeedStaleResponseIsDiscarded(t *testing.T) {
	lister := &blockingLister{}
	feed := newTestFeed(lister)

	// Trigger A, then trigger B before A's response lands.
	go feed.Refresh(context.Background())
	require.Eventually(t, func() bool { return lister.callCount() == 1 }, time.Second, time.Millisecond)

	go feed.Refresh(context.Background())
	require.Eventually(t, func() bool { return lister.callCount() == 2 }, time.Second, time.Millisecond)

	// B's response arrives first.
	lister.release(1, genActivities("b", 2))
	require.Eventually(t, func() bool { return len(feed.Items()) == 2 }, time.Second, time.Millisecond)

	// A's response straggles in afterwards and must be dropped: its
	// generation predates B's reset.
	lister.release(0, genActivities("a", 3))

	assert.Eventually(t, func() bool {
		items := feed.Items()
		return len(items) == 2 && items[0].ID == "b-0"
	}, time.Second, time.Millisecond, "the list must keep reflecting trigger B")
	assert.Never(t, func() bool {
		return len(feed.Items()) == 3
	}, 100*time.Millisecond, time.Millisecond)
}
