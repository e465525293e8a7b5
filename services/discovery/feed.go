// File: services/discovery/feed.go
package discovery

import (
	"context"
	"sync"

	"hobyhub/api"
	"hobyhub/models"
	"hobyhub/utils"

	"go.uber.org/zap"
)

// ActivityLister is the slice of the upstream client the feed needs.
type ActivityLister interface {
	ListActivities(ctx context.Context, q api.ActivityQuery) (*models.ActivityPage, error)
}

// Feed owns one session's paginated result list. It consumes filter and sort
// changes, resets to page 1 on any of them, and appends pages as LoadMore is
// driven by the scroll sentinel.
//
// Every fetch is tagged with the generation current at issue time. A response
// whose generation is older than the latest reset is discarded, so rapid
// filter changes cannot leave a stale result list on screen.
type Feed struct {
	lister ActivityLister
	logger *zap.Logger

	mu         sync.Mutex
	criteria   models.FilterCriteria
	sort       models.SortCriteria
	items      []models.Activity
	state      models.PaginationState
	generation uint64
}

// NewFeed builds a feed with the given page size and initial sort criteria.
func NewFeed(lister ActivityLister, pageSize int, sort models.SortCriteria) *Feed {
	return &Feed{
		lister:   lister,
		logger:   utils.GetLogger(),
		criteria: models.DefaultFilterCriteria(),
		sort:     sort,
		items:    []models.Activity{},
		state: models.PaginationState{
			Page:     1,
			PageSize: pageSize,
			HasMore:  true,
		},
	}
}

// Items returns a copy of the accumulated result list.
func (f *Feed) Items() []models.Activity {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Activity, len(f.items))
	copy(out, f.items)
	return out
}

// State returns the current pagination state.
func (f *Feed) State() models.PaginationState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// OnFilterChange installs the triggered criteria and refreshes from page 1.
func (f *Feed) OnFilterChange(ctx context.Context, snap models.FilterSnapshot) {
	f.mu.Lock()
	f.criteria = snap.Criteria
	f.mu.Unlock()
	f.Refresh(ctx)
}

// OnSortChange installs new sort criteria and refreshes from page 1.
func (f *Feed) OnSortChange(ctx context.Context, sort models.SortCriteria) {
	f.mu.Lock()
	f.sort = sort
	f.mu.Unlock()
	f.Refresh(ctx)
}

// Refresh clears the list, resets to page 1 and fetches the first page.
// The generation bump invalidates any fetch still in flight.
func (f *Feed) Refresh(ctx context.Context) {
	f.mu.Lock()
	f.generation++
	gen := f.generation
	f.items = []models.Activity{}
	f.state.Page = 1
	f.state.HasMore = true
	f.state.Loading = true
	f.state.LoadingMore = false
	query := f.queryLocked(1)
	f.mu.Unlock()

	f.fetch(ctx, gen, 1, query)
}

// LoadMore advances to the next page. It is a no-op while a fetch is in
// flight or once the end of the list has been reached; callers signaling
// during a fetch are dropped, not queued.
func (f *Feed) LoadMore(ctx context.Context) {
	f.mu.Lock()
	if !f.state.HasMore || f.state.Loading || f.state.LoadingMore {
		f.mu.Unlock()
		return
	}
	f.state.Page++
	f.state.LoadingMore = true
	gen := f.generation
	page := f.state.Page
	query := f.queryLocked(page)
	f.mu.Unlock()

	f.fetch(ctx, gen, page, query)
}

// queryLocked builds the upstream query for the given page. Caller holds f.mu.
func (f *Feed) queryLocked(page int) api.ActivityQuery {
	return api.ActivityQuery{
		Latitude:       f.criteria.Latitude,
		Longitude:      f.criteria.Longitude,
		CategoryID:     f.criteria.CategoryID,
		SubCategoryID:  f.criteria.SubCategoryID,
		Mode:           f.sort.Mode,
		Type:           f.sort.Mode,
		Sort:           f.sort.Key,
		Location:       f.criteria.Location,
		Age:            f.criteria.Age,
		Gender:         f.criteria.Gender,
		Time:           f.criteria.Time,
		PriceRange:     f.criteria.PriceRange,
		FiltersApplied: f.criteria.FiltersApplied,
		Page:           page,
		PageSize:       f.state.PageSize,
		DistanceKm:     f.sort.DistanceKm,
	}
}

func (f *Feed) fetch(ctx context.Context, gen uint64, page int, query api.ActivityQuery) {
	result, err := f.lister.ListActivities(ctx, query)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		// A newer reset superseded this fetch; its result no longer belongs
		// to the list on screen.
		f.logger.Debug("Discarding stale feed response",
			zap.Uint64("generation", gen), zap.Uint64("current", f.generation))
		return
	}

	f.state.Loading = false
	f.state.LoadingMore = false

	if err != nil {
		f.logger.Error("Feed fetch failed", zap.Int("page", page), zap.Error(err))
		f.state.HasMore = false
		return
	}

	if page == 1 {
		f.items = result.Activities
	} else {
		// Appends are keyed by arrival order only; there is no dedup by
		// activity id across pages.
		f.items = append(f.items, result.Activities...)
	}
	if len(result.Activities) < f.state.PageSize {
		f.state.HasMore = false
	}
}
