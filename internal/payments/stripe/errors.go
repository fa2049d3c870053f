package stripe

import (
	"errors"
)

var (
	// ErrInvalidAmount is returned for non-finite amounts and amounts below
	// the minimum charge unit.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotEnabled is returned when intent creation is attempted while
	// Stripe is disabled or the secret key is missing.
	ErrNotEnabled = errors.New("stripe is not enabled")
)
