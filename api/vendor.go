// File: api/vendor.go
package api

import (
	"context"
	"net/url"

	"hobyhub/models"
)

// RegisterVendor submits a completed registration and returns the created
// vendor record.
func (c *Client) RegisterVendor(ctx context.Context, reg models.VendorRegistration) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := c.post(ctx, "/api/v1/vendors/register", reg, "", &vendor); err != nil {
		return nil, err
	}
	if vendor.ID == "" {
		return nil, &Error{Code: "malformed_response", Message: "vendor response is missing an id"}
	}
	return &vendor, nil
}

// CreateClass adds a weekly class to one of the vendor's activities.
func (c *Client) CreateClass(ctx context.Context, token string, class models.ActivityClass) (*models.ActivityClass, error) {
	var created models.ActivityClass
	if err := c.post(ctx, "/api/v1/vendors/classes", class, token, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateClass replaces an existing class schedule.
func (c *Client) UpdateClass(ctx context.Context, token string, class models.ActivityClass) (*models.ActivityClass, error) {
	var updated models.ActivityClass
	if err := c.put(ctx, "/api/v1/vendors/classes/"+url.PathEscape(class.ID), class, token, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteClass removes a class schedule.
func (c *Client) DeleteClass(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/api/v1/vendors/classes/"+url.PathEscape(id), token)
}

// CreateCourse adds a fixed-duration course to one of the vendor's activities.
func (c *Client) CreateCourse(ctx context.Context, token string, course models.ActivityCourse) (*models.ActivityCourse, error) {
	var created models.ActivityCourse
	if err := c.post(ctx, "/api/v1/vendors/courses", course, token, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCourse replaces an existing course.
func (c *Client) UpdateCourse(ctx context.Context, token string, course models.ActivityCourse) (*models.ActivityCourse, error) {
	var updated models.ActivityCourse
	if err := c.put(ctx, "/api/v1/vendors/courses/"+url.PathEscape(course.ID), course, token, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/api/v1/vendors/courses/"+url.PathEscape(id), token)
}

// UploadImageMeta registers listing image metadata upstream. The binary
// upload itself goes straight to the media host; only the path lands here.
func (c *Client) UploadImageMeta(ctx context.Context, token string, meta models.ImageMeta) (*models.ImageMeta, error) {
	var created models.ImageMeta
	if err := c.post(ctx, "/api/v1/vendors/images", meta, token, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
