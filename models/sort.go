package models

// SortKey enumerates the supported result orderings.
type SortKey string

const (
	SortProximity SortKey = "proximity"
	SortPopular   SortKey = "popular"
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

// ValidSortKey reports whether k is one of the supported orderings.
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortProximity, SortPopular, SortNewest, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// SortCriteria holds the sort order and distance radius edited from the top
// bar. It lives in its own store, separate from FilterCriteria, because it is
// committed immediately rather than behind an apply trigger.
type SortCriteria struct {
	Key        SortKey      `json:"key"`
	DistanceKm int          `json:"distanceKm"`
	Mode       ActivityType `json:"mode"`
}
