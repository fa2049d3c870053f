// Package order provides database operations for customer orders.
package order

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/db/models"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves an order by its ID.
func Get(db *gorm.DB, id uint64) (*models.Order, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var order models.Order
	result := db.First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, result.Error
	}

	return &order, nil
}

// UpdateFields applies a partial update to an order and returns the updated
// record. An empty field map leaves the order untouched.
func UpdateFields(db *gorm.DB, id uint64, fields map[string]any) (*models.Order, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var order models.Order
	result := db.First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, result.Error
	}

	if len(fields) == 0 {
		return &order, nil
	}

	result = db.Model(&order).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}

	// Reload so the caller sees the stored record, not the in-memory merge.
	result = db.First(&order, id)
	if result.Error != nil {
		return nil, result.Error
	}

	return &order, nil
}
