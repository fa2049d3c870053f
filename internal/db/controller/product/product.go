// Package product provides database operations for storefront products.
package product

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/db/models"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a product by its ID.
func Get(db *gorm.DB, id uint64) (*models.Product, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var product models.Product
	result := db.First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, result.Error
	}

	return &product, nil
}

// Delete deletes a product by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
