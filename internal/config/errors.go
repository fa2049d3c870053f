package config

import (
	"errors"
)

var (
	// ErrSessionSecretRequired error if no session secret is configured.
	// The service refuses to start without one rather than falling back to
	// a built-in default.
	ErrSessionSecretRequired = errors.New("admin.sessionsecret (or SESSION_SECRET) must be set")
)
