package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product belongs to a category and is owned by the supplier that created
// it. SupplierID drives the owner-or-admin authorization check on updates
// and deletes. Deletion is soft.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	CategoryID  int64   `json:"category_id"`
	SupplierID  int64   `json:"supplier_id"`
	IsActive    bool    `json:"is_active"`
}
