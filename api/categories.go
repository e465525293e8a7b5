package api

import (
	"context"
	"net/url"

	"hobyhub/models"
)

// ListCategories fetches all top-level categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/api/v1/categories", "", &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// ListSubCategories fetches the subcategories of one category.
func (c *Client) ListSubCategories(ctx context.Context, categoryID string) ([]models.SubCategory, error) {
	var subs []models.SubCategory
	path := "/api/v1/categories/" + url.PathEscape(categoryID) + "/subcategories"
	if err := c.get(ctx, path, "", &subs); err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []models.SubCategory{}
	}
	return subs, nil
}
