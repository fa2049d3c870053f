// Package main provides the entry point for the storefront admin service.
// It initializes and runs a web server using the Fiber framework that serves
// the storefront JSON API: admin login backed by a signed session cookie,
// order and product management, and the public Stripe/PayPal provider
// configuration endpoints. The application uses gorm for data persistence
// and keeps feature flags and provider credentials in a key/value settings
// table.
package main
