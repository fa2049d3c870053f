// Package stripe provides the public Stripe provider-config and
// payment-intent routes.
package stripe

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/db/controller/storesettings"
	payments "github.com/storefront-admin/storefront-admin/internal/payments/stripe"
	"github.com/storefront-admin/storefront-admin/internal/web/handler"
)

const (
	// ConfigPath is the path of the Stripe provider-config route.
	ConfigPath = handler.APIRootPath + "/stripe/config"
	// IntentPath is the path of the payment-intent creation route.
	IntentPath = handler.APIRootPath + "/stripe/create-payment-intent"
)

// intentRequest is the payment-intent creation contract.
type intentRequest struct {
	Amount   float64 `json:"amount" validate:"required"`
	Currency string  `json:"currency"`
}

// Service is the stripe handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate

	// NewIntents builds the intent creator for a secret key. Swappable so
	// tests can stub the Stripe API.
	NewIntents func(secretKey string) payments.IntentCreator
}

// Handler is the stripe handler.
var Handler = Service{}

// Init initializes the stripe handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	if s.NewIntents == nil {
		s.NewIntents = func(secretKey string) payments.IntentCreator {
			return payments.NewClient(secretKey)
		}
	}

	app.Get(ConfigPath, s.GetConfig)
	app.Post(IntentPath, s.CreateIntent)

	return nil
}

// GetConfig returns the public-safe Stripe configuration.
func (s *Service) GetConfig(c *fiber.Ctx) error {
	settings, err := storesettings.Load(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load store settings")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load payment configuration",
		})
	}

	c.Set(fiber.HeaderCacheControl, handler.CacheControlProviderConfig)

	return c.JSON(payments.Resolve(s.cfg, settings))
}

// CreateIntent creates a Stripe payment intent and returns its client
// secret.
func (s *Service) CreateIntent(c *fiber.Ctx) error {
	req := new(intentRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := s.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	settings, err := storesettings.Load(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load store settings")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load payment configuration",
		})
	}

	secretKey := payments.SecretKey(s.cfg, settings)
	if !payments.Resolve(s.cfg, settings).Enabled || secretKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Stripe is not enabled",
		})
	}

	cents, err := payments.AmountToCents(req.Amount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid amount",
		})
	}

	currency := payments.NormalizeCurrency(req.Currency, settings.Currency)

	clientSecret, err := s.NewIntents(secretKey).CreateIntent(cents, currency)
	if err != nil {
		log.Error().Err(err).Int64("amount_cents", cents).Str("currency", currency).
			Msg("failed to create payment intent")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"clientSecret": clientSecret,
	})
}
