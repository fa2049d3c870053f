// Package paypal resolves the PayPal provider configuration.
package paypal

import (
	"strings"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/db/controller/storesettings"
)

const (
	// ModeLive is the only mode honored literally; everything else
	// normalizes to ModeSandbox.
	ModeLive = "live"
	// ModeSandbox is the default PayPal environment.
	ModeSandbox = "sandbox"
)

// Config is the public-safe subset of the PayPal configuration. The client
// secret never appears here.
type Config struct {
	Enabled  bool   `json:"enabled"`
	ClientID string `json:"clientId"`
	Mode     string `json:"mode"`
}

// Resolve merges the environment-supplied PayPal credentials with the
// persisted settings. The provider counts as enabled when both credentials
// are present or the stored flag is set, but a missing client id always
// reads as disabled.
func Resolve(cfg *config.Config, s *storesettings.Settings) Config {
	clientID := cfg.PayPal.ClientID
	if clientID == "" {
		clientID = s.PaypalClientID
	}

	clientSecret := cfg.PayPal.ClientSecret
	if clientSecret == "" {
		clientSecret = s.PaypalClientSecret
	}

	mode := cfg.PayPal.Mode
	if mode == "" {
		mode = s.PaypalMode
	}

	mode = strings.ToLower(mode)
	if mode != ModeLive {
		mode = ModeSandbox
	}

	enabled := (clientID != "" && clientSecret != "") || s.PaypalEnabled

	return Config{
		Enabled:  enabled && clientID != "",
		ClientID: clientID,
		Mode:     mode,
	}
}
