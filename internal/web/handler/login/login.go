package login

import (
	"crypto/subtle"
	"errors"

	"github.com/alexedwards/argon2id"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/web/handler"
	"github.com/storefront-admin/storefront-admin/internal/web/session"
)

const (
	// Path is the path of the admin login route.
	Path = handler.APIRootPath + "/admin/login"

	// SessionPath is the path of the admin session check route.
	SessionPath = handler.APIRootPath + "/admin/session"
)

// request is the login request contract.
type request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate

	// passwordHash is the argon2id hash of the configured admin password,
	// computed once at init. Empty means login is not configured.
	passwordHash string
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		hash, err := argon2id.CreateHash(cfg.Admin.Password, argon2id.DefaultParams)
		if err != nil {
			return err
		}

		s.passwordHash = hash
	}

	// register routes
	app.Post(Path, s.Post)
	app.Get(SessionPath, s.Session)

	return nil
}

// Post handles the admin login request.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(request)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if s.cfg.Admin.Username == "" || s.passwordHash == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Admin login is not configured",
		})
	}

	// Missing credentials are a mismatch, not a malformed request.
	if err := s.validator.Struct(req); err != nil {
		return unauthorized(c)
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Admin.Username)) == 1

	passwordOK, err := argon2id.ComparePasswordAndHash(req.Password, s.passwordHash)
	if err != nil {
		log.Error().Err(err).Msg("failed to verify admin password")
		passwordOK = false
	}

	if !usernameOK || !passwordOK {
		return unauthorized(c)
	}

	token, err := session.Encode(session.New(), s.cfg.Admin.SessionSecret)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign session token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	c.Cookie(session.Cookie(token, s.cfg.DevMode))

	return c.JSON(fiber.Map{"success": true})
}

// Session handles the read-only admin session check.
func (s *Service) Session(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, handler.CacheControlNoStore)

	return c.JSON(fiber.Map{
		"isAdmin": session.IsAdmin(c, s.cfg.Admin.SessionSecret),
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Invalid credentials",
	})
}
