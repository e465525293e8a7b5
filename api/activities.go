// File: api/activities.go
package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"hobyhub/models"
)

// ActivityQuery carries every parameter the upstream listing endpoint accepts.
type ActivityQuery struct {
	Latitude      float64
	Longitude     float64
	CategoryID    string
	SubCategoryID string
	Mode          models.ActivityType
	Type          models.ActivityType
	Sort          models.SortKey
	Location      string

	// Refinement fields, honored only when FiltersApplied is true.
	Age        string
	Gender     string
	Time       string
	PriceRange [2]int

	FiltersApplied bool

	Page       int
	PageSize   int
	DistanceKm int
}

// encode builds the query string. When FiltersApplied is false the
// age/gender/time/price parameters are sent as zero/empty defaults no matter
// what the caller set, matching the product's filter-apply contract.
func (q ActivityQuery) encode() url.Values {
	v := url.Values{}
	v.Set("latitude", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
	v.Set("longitude", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	v.Set("categoryId", q.CategoryID)
	v.Set("subCategoryId", q.SubCategoryID)
	v.Set("mode", string(q.Mode))
	// The endpoint takes the online/offline discriminator twice: "mode"
	// drives the search, "type" matches the listing classification field.
	v.Set("type", string(q.Type))
	v.Set("sortFilter", string(q.Sort))
	v.Set("location", q.Location)

	age, gender, timeOfDay := "", "", ""
	priceMin, priceMax := 0, 0
	if q.FiltersApplied {
		age, gender, timeOfDay = q.Age, q.Gender, q.Time
		priceMin, priceMax = q.PriceRange[0], q.PriceRange[1]
	}
	v.Set("age", age)
	v.Set("gender", gender)
	v.Set("time", timeOfDay)
	v.Set("priceMin", strconv.Itoa(priceMin))
	v.Set("priceMax", strconv.Itoa(priceMax))

	v.Set("pageNo", strconv.Itoa(q.Page))
	v.Set("pageSize", strconv.Itoa(q.PageSize))
	v.Set("distance", strconv.Itoa(q.DistanceKm))
	return v
}

// ListActivities fetches one page of the activity listing.
func (c *Client) ListActivities(ctx context.Context, q ActivityQuery) (*models.ActivityPage, error) {
	var page models.ActivityPage
	path := "/api/v1/activities?" + q.encode().Encode()
	if err := c.get(ctx, path, "", &page); err != nil {
		return nil, err
	}
	if page.Activities == nil {
		page.Activities = []models.Activity{}
	}
	for i, act := range page.Activities {
		if act.ID == "" {
			return nil, &Error{Code: "malformed_response",
				Message: fmt.Sprintf("activity at index %d is missing an id", i)}
		}
	}
	return &page, nil
}

// GetActivity fetches a single listing with its class and course sub-lists.
func (c *Client) GetActivity(ctx context.Context, id string) (*models.ActivityDetail, error) {
	var detail models.ActivityDetail
	if err := c.get(ctx, "/api/v1/activities/"+url.PathEscape(id), "", &detail); err != nil {
		return nil, err
	}
	if detail.Activity.ID == "" {
		return nil, &Error{Code: "malformed_response", Message: "activity detail is missing an id"}
	}
	return &detail, nil
}

// IncrementViewCount records a detail-page visit upstream. Fire and forget
// from the caller's perspective; failures only matter to the worker's log.
func (c *Client) IncrementViewCount(ctx context.Context, id string) error {
	return c.post(ctx, "/api/v1/activities/"+url.PathEscape(id)+"/view", nil, "", nil)
}
