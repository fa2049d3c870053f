package config

import (
	"github.com/storefront-admin/storefront-admin/internal/logger"
)

// Admin holds the environment-supplied admin credentials and the session
// cookie secret.
type Admin struct {
	Username      string
	Password      string
	SessionSecret string
}

// Stripe holds the environment-supplied Stripe credentials. Values left
// empty here fall back to the persisted settings.
type Stripe struct {
	SecretKey      string
	PublishableKey string
}

// PayPal holds the environment-supplied PayPal credentials. Values left
// empty here fall back to the persisted settings.
type PayPal struct {
	ClientID     string
	ClientSecret string
	Mode         string
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Admin     Admin
	Stripe    Stripe
	PayPal    PayPal
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}
