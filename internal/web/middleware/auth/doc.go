// Package auth provides the admin session gate used by protected routes.
package auth
