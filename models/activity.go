// models/activity.go
package models

// ActivityType distinguishes online classes from in-person ones.
type ActivityType string

const (
	ActivityOnline  ActivityType = "online"
	ActivityOffline ActivityType = "offline"
)

// Activity is a hobby class listing as served by the upstream API.
// Listings are created vendor-side; this service only reads them, apart
// from the view-count increment side effect on detail visits.
type Activity struct {
	ID            string       `json:"id"`
	VendorID      string       `json:"vendorId"`
	Type          ActivityType `json:"type"`
	CategoryID    string       `json:"categoryId"`
	SubCategoryID string       `json:"subCategoryId"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnailImage"`

	AgeRestrictionMin int `json:"ageRestrictionMin"`
	AgeRestrictionMax int `json:"ageRestrictionMax"`
	SessionCountMin   int `json:"sessionCountMin"`
	SessionCountMax   int `json:"sessionCountMax"`

	Rate     float64 `json:"rate"`
	Currency string  `json:"currency"`

	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Pincode  string `json:"pincode"`
	// Latitude/longitude come over the wire as strings, matching the upstream contract.
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`

	ViewCount int `json:"viewCount"`
}

// ActivityPage is one page of a paginated activity listing.
type ActivityPage struct {
	Activities []Activity `json:"activities"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
}

// ActivityClass is a weekly class schedule attached to an activity.
type ActivityClass struct {
	ID         string   `json:"id"`
	ActivityID string   `json:"activityId"`
	Title      string   `json:"title"`
	Days       []string `json:"days"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	AgeMin     int      `json:"ageMin"`
	AgeMax     int      `json:"ageMax"`
	Rate       float64  `json:"rate"`
	Currency   string   `json:"currency"`
}

// ActivityCourse is a fixed-duration course attached to an activity.
type ActivityCourse struct {
	ID         string  `json:"id"`
	ActivityID string  `json:"activityId"`
	Title      string  `json:"title"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Sessions   int     `json:"sessions"`
	Rate       float64 `json:"rate"`
	Currency   string  `json:"currency"`
}

// ActivityDetail bundles an activity with its class and course sub-lists,
// as handed off between the listing and detail surfaces.
type ActivityDetail struct {
	Activity Activity         `json:"activity"`
	Classes  []ActivityClass  `json:"classes"`
	Courses  []ActivityCourse `json:"courses"`
}
