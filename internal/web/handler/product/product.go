// Package product provides the admin product management routes.
package product

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/catalog/variant"
	"github.com/storefront-admin/storefront-admin/internal/config"
	controller "github.com/storefront-admin/storefront-admin/internal/db/controller/product"
	"github.com/storefront-admin/storefront-admin/internal/db/controller/setting"
	"github.com/storefront-admin/storefront-admin/internal/web/handler"
	"github.com/storefront-admin/storefront-admin/internal/web/middleware/auth"
)

const (
	// Path is the path of the product delete route.
	Path = handler.APIRootPath + "/products/:id"
)

// Service is the product handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the product handler.
var Handler = Service{}

// Init initializes the product handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	// register routes behind the session gate
	app.Delete(Path, auth.RequireAdmin(cfg), s.Delete)

	return nil
}

// Delete removes a product. The product's color-variant setting is cleared
// first so no orphaned variants survive the row delete.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product id",
		})
	}

	if err := setting.DeleteByName(s.db, variant.SettingKey(id)); err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			log.Error().Err(err).Uint64("product_id", id).Msg("failed to clear product color variants")

			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to delete product",
			})
		}
	}

	if err := controller.Delete(s.db, id); err != nil {
		log.Error().Err(err).Uint64("product_id", id).Msg("failed to delete product")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
