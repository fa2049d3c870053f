// Package order provides the admin order management routes.
package order

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/config"
	controller "github.com/storefront-admin/storefront-admin/internal/db/controller/order"
	"github.com/storefront-admin/storefront-admin/internal/web/handler"
	"github.com/storefront-admin/storefront-admin/internal/web/middleware/auth"
)

const (
	// Path is the path of the order update route.
	Path = handler.APIRootPath + "/orders/:id"
)

// updateRequest is the typed partial-update contract for an order. Only the
// fields present in the request body are applied.
type updateRequest struct {
	Status        *string `json:"status"`
	CustomerName  *string `json:"customerName"`
	CustomerEmail *string `json:"customerEmail" validate:"omitempty,email"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	PostalCode    *string `json:"postalCode"`
	Country       *string `json:"country"`
	Total         *string `json:"total"`
	PaymentMethod *string `json:"paymentMethod"`
	PaymentID     *string `json:"paymentId"`
}

// fields maps the set request fields onto their database columns.
func (r *updateRequest) fields() map[string]any {
	out := map[string]any{}

	set := func(column string, value *string) {
		if value != nil {
			out[column] = *value
		}
	}

	set("status", r.Status)
	set("customer_name", r.CustomerName)
	set("customer_email", r.CustomerEmail)
	set("address", r.Address)
	set("city", r.City)
	set("postal_code", r.PostalCode)
	set("country", r.Country)
	set("total", r.Total)
	set("payment_method", r.PaymentMethod)
	set("payment_id", r.PaymentID)

	return out
}

// Service is the order handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the order handler.
var Handler = Service{}

// Init initializes the order handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	// register routes behind the session gate
	app.Patch(Path, auth.RequireAdmin(cfg), s.Patch)

	return nil
}

// Patch applies a partial update to an order.
func (s *Service) Patch(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	req := new(updateRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := s.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order fields",
		})
	}

	updated, err := controller.UpdateFields(s.db, id, req.fields())
	if err != nil {
		if errors.Is(err, controller.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}

		log.Error().Err(err).Uint64("order_id", id).Msg("failed to update order")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order",
		})
	}

	return c.JSON(updated)
}
