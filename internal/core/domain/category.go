package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")

// Category is a node in the catalog hierarchy. ParentID is nil for root
// categories. Deletion is soft: inactive categories stay in storage but
// disappear from listings.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID *int64 `json:"parent_id,omitempty"`
	IsActive bool   `json:"is_active"`
}
