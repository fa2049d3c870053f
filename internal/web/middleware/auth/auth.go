package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/web/session"
)

// RequireAdmin is a Fiber middleware that rejects requests without a valid
// admin session cookie.
func RequireAdmin(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !session.IsAdmin(c, cfg.Admin.SessionSecret) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		return c.Next()
	}
}
