// Package paypal provides the public PayPal provider-config route.
package paypal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/db/controller/storesettings"
	payments "github.com/storefront-admin/storefront-admin/internal/payments/paypal"
	"github.com/storefront-admin/storefront-admin/internal/web/handler"
)

const (
	// ConfigPath is the path of the PayPal provider-config route.
	ConfigPath = handler.APIRootPath + "/paypal/config"
)

// Service is the paypal handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the paypal handler.
var Handler = Service{}

// Init initializes the paypal handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(ConfigPath, s.GetConfig)

	return nil
}

// GetConfig returns the public-safe PayPal configuration.
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
