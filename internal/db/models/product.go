package models

import (
	"time"
)

// Product represents a storefront product.
// Color variants are not part of the row: they live in the settings table
// under a per-product key and are cleared when the product is deleted.
type Product struct {
	// ID is the unique identifier for the product.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the display name of the product.
	Name string `gorm:"size:255;not null" json:"name"`
	// Slug is the URL-safe identifier of the product.
	Slug string `gorm:"size:255;unique" json:"slug"`
	// Description is the long form product description.
	Description string `gorm:"type:text" json:"description"`
	// Price is the product price as a decimal string (e.g. "19.99").
	Price string `gorm:"size:32;not null" json:"price"`
	// Image is the URL of the primary product image.
	Image string `gorm:"size:512" json:"image"`
	// Category is the product category name.
	Category string `gorm:"size:100" json:"category"`
	// Stock is the number of units in stock.
	Stock int `json:"stock"`
	// CreatedAt is the timestamp when the product was created (managed by GORM).
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the timestamp when the product was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updatedAt"`
}
