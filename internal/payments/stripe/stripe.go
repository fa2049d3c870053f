// Package stripe resolves the Stripe provider configuration and creates
// payment intents through the Stripe API.
package stripe

import (
	"math"
	"strings"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/db/controller/storesettings"
)

const (
	// MinimumAmountCents is the smallest chargeable amount in minor units.
	MinimumAmountCents = 50

	defaultCurrency = "usd"
	currencyCodeLen = 3
)

// Config is the public-safe subset of the Stripe configuration. The secret
// key never appears here.
type Config struct {
	Enabled        bool   `json:"enabled"`
	PublishableKey string `json:"publishableKey"`
}

// Resolve merges the environment-supplied Stripe credentials with the
// persisted settings. The provider counts as enabled only when the stored
// flag is set and both keys are present.
func Resolve(cfg *config.Config, s *storesettings.Settings) Config {
	pub := strings.TrimSpace(cfg.Stripe.PublishableKey)
	if pub == "" {
		pub = strings.TrimSpace(s.StripePublicKey)
	}

	return Config{
		Enabled:        s.StripeEnabled && pub != "" && SecretKey(cfg, s) != "",
		PublishableKey: pub,
	}
}

// SecretKey returns the effective Stripe secret key: the environment value
// wins over the persisted setting. Empty means not configured.
func SecretKey(cfg *config.Config, s *storesettings.Settings) string {
	secret := strings.TrimSpace(cfg.Stripe.SecretKey)
	if secret == "" {
		secret = strings.TrimSpace(s.StripeSecretKey)
	}

	return secret
}

// AmountToCents converts a major-unit amount to minor units, rejecting
// non-finite values and anything below the minimum charge unit.
func AmountToCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}

	cents := int64(math.Round(amount * 100)) //nolint:mnd
	if cents < MinimumAmountCents {
		return 0, ErrInvalidAmount
	}

	return cents, nil
}

// NormalizeCurrency picks the requested currency, falling back to the
// stored default and finally to "usd". The result is lower-cased and
// truncated to the 3-letter code length.
func NormalizeCurrency(requested, stored string) string {
	currency := requested
	if currency == "" {
		currency = stored
	}
	if currency == "" {
		currency = defaultCurrency
	}

	currency = strings.ToLower(currency)
	if len(currency) > currencyCodeLen {
		currency = currency[:currencyCodeLen]
	}

	return currency
}

// IntentCreator creates a payment intent and returns its client secret.
type IntentCreator interface {
	CreateIntent(amountCents int64, currency string) (string, error)
}

// Client wraps the Stripe API client for payment intent creation.
type Client struct {
	api *client.API
}

// NewClient creates a Stripe API client bound to the given secret key.
func NewClient(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{api: api}
}

// CreateIntent creates a payment intent with automatic payment methods and
// returns the client secret the storefront hands to Stripe.js.
func (c *Client) CreateIntent(amountCents int64, currency string) (string, error) {
	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(amountCents),
		Currency: stripego.String(currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}
