// Package login provides the admin login and session-check handlers.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrNotConfigured is returned when the admin credentials are not set
	// in the environment.
	ErrNotConfigured = errors.New("admin login is not configured")

	// ErrInvalidCredentials is returned when the provided username and/or
	// password do not match the configured admin credentials.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
