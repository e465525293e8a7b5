package models

// Category is a top-level activity classification.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IconPath string `json:"iconPath,omitempty"`
}

// SubCategory belongs to exactly one category.
type SubCategory struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}
