// Package config handles input from etc/*.toml files and the environment.
package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
)

const (
	// EnvConfigJSON is the environment variable holding a JSON config override.
	EnvConfigJSON = "STOREFRONT_CONFIG_JSON"

	defaultPort         = 8080
	defaultShutDownTime = 5
)

// ReadConfig reads the config file, merges the JSON env override and applies
// the environment variables consumed by the service. A missing config file
// is not an error: the service can be configured entirely from the
// environment.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}
	}

	// override it from env
	JSONConfigEnv := os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	applyEnv(&c)

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to merge json config from env")
	}

	return c, nil
}

// applyEnv overrides config fields from the environment variables the
// service consumes.
func applyEnv(c *Config) {
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.Admin.SessionSecret = v
	}

	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		c.Admin.Username = v
	}

	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Admin.Password = v
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DB.URL = v

		if c.DB.GormEngine == "" {
			c.DB.GormEngine = "postgres"
		}
	}

	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		c.Stripe.SecretKey = v
	}

	if v := os.Getenv("STRIPE_PUBLISHABLE_KEY"); v != "" {
		c.Stripe.PublishableKey = v
	}

	if v := os.Getenv("PAYPAL_CLIENT_ID"); v != "" {
		c.PayPal.ClientID = v
	}

	if v := os.Getenv("PAYPAL_CLIENT_SECRET"); v != "" {
		c.PayPal.ClientSecret = v
	}

	if v := os.Getenv("PAYPAL_MODE"); v != "" {
		c.PayPal.Mode = v
	}

	switch os.Getenv("APP_ENV") {
	case "production":
		c.DevMode = false
	case "development":
		c.DevMode = true
	}
}

// validate the minimal config settings the service needs at startup and
// apply defaults for the rest. The session secret is deliberately required:
// there is no fallback value, a missing secret fails the start.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Admin.SessionSecret == "" {
		return errors.Wrap(ErrSessionSecretRequired, invalidErrMessage)
	}

	if c.Webserver.Port == 0 {
		c.Webserver.Port = defaultPort
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	return nil
}
