// models/filter.go
package models

// Price range bounds used when filters are cleared.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 100000
)

// FilterCriteria holds the search refinement state edited from the filter
// surfaces. Edits are drafts: consumers only see them once the owning store's
// trigger counter advances.
type FilterCriteria struct {
	PriceRange    [2]int  `json:"priceRange"`
	Gender        string  `json:"gender"`
	Age           string  `json:"age"`
	Time          string  `json:"time"`
	Location      string  `json:"location"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	CategoryID    string  `json:"categoryId"`
	SubCategoryID string  `json:"subCategoryId"`

	// FiltersApplied marks whether the advanced filter selections should be
	// honored by the fetch loop. When false the age/gender/time/price fields
	// are sent as zero values regardless of what they hold.
	FiltersApplied bool `json:"areFiltersApplied"`
}

// DefaultFilterCriteria returns the criteria installed at session creation
// and restored by Clear.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		PriceRange: [2]int{DefaultPriceMin, DefaultPriceMax},
	}
}

// FilterSnapshot is the value delivered to subscribers on each trigger: the
// criteria as of trigger time plus the monotonic trigger counter.
type FilterSnapshot struct {
	Criteria FilterCriteria
	Trigger  uint64
}
