// File: services/discovery/pager.go
package discovery

import "context"

// AutoPager advances the feed as the client scrolls. The client reports when
// the last rendered card becomes visible; there is no load-more button.
type AutoPager struct {
	feed *Feed
}

// NewAutoPager wraps a feed.
func NewAutoPager(feed *Feed) *AutoPager {
	return &AutoPager{feed: feed}
}

// OnSentinelVisible handles one visibility signal. It advances the page only
// when more results exist and no fetch is in flight; signals arriving during
// a fetch are ignored rather than queued. Returns whether a fetch was issued.
func (p *AutoPager) OnSentinelVisible(ctx context.Context) bool {
	state := p.feed.State()
	if !state.HasMore || state.Loading || state.LoadingMore {
		return false
	}
	p.feed.LoadMore(ctx)
	return true
}
