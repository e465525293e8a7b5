package models

// PaginationState tracks where the feed is in its paged fetch loop.
// Page only advances when HasMore is true and no fetch is in flight; it
// resets to 1 whenever filter, sort or mode state changes.
type PaginationState struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	HasMore     bool `json:"hasMore"`
	Loading     bool `json:"loading"`
	LoadingMore bool `json:"loadingMore"`
}
