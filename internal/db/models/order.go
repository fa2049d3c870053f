package models

import (
	"time"
)

// Order represents a customer order. Admin routes apply partial updates to
// single fields (typically the status); the rest of the record is written
// once at checkout.
type Order struct {
	// ID is the unique identifier for the order.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// CustomerName is the full name the order was placed under.
	CustomerName string `gorm:"size:255" json:"customerName"`
	// CustomerEmail is the customer's email address.
	CustomerEmail string `gorm:"size:255" json:"customerEmail"`
	// Address is the street address of the shipping destination.
	Address string `gorm:"size:255" json:"address"`
	// City is the city of the shipping destination.
	City string `gorm:"size:100" json:"city"`
	// PostalCode is the postal code of the shipping destination.
	PostalCode string `gorm:"size:20" json:"postalCode"`
	// Country is the country of the shipping destination.
	Country string `gorm:"size:100" json:"country"`
	// Total is the order total as a decimal string.
	Total string `gorm:"size:32" json:"total"`
	// Status is the order status (pending, paid, shipped, ...).
	Status string `gorm:"size:50;default:'pending'" json:"status"`
	// PaymentMethod names the provider used to pay (stripe, paypal).
	PaymentMethod string `gorm:"size:50" json:"paymentMethod"`
	// PaymentID is the provider-side identifier of the payment.
	PaymentID string `gorm:"size:255" json:"paymentId"`
	// CreatedAt is the timestamp when the order was created (managed by GORM).
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the timestamp when the order was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updatedAt"`
}
