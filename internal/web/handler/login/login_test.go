package login

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/db/models"
	"github.com/storefront-admin/storefront-admin/internal/web/session"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	require.NoError(t, db.AutoMigrate(&models.Setting{}))

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		DevMode: true,
		Admin: config.Admin{
			Username:      "admin",
			Password:      "changeme",
			SessionSecret: "test-secret",
		},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()

	app := fiber.New()

	svc := Service{}
	require.NoError(t, svc.Init(app, cfg, newTestDB(t)))

	return app
}

func postLogin(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, Path, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)

	return resp
}

func sessionCheck(t *testing.T, app *fiber.App, cookies []*http.Cookie) (bool, *http.Response) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, SessionPath, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out struct {
		IsAdmin bool `json:"isAdmin"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out.IsAdmin, resp
}

func TestLoginSuccess(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	resp := postLogin(t, app, "admin", "changeme")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)

	// The session cookie now reads as admin.
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	isAdmin, _ := sessionCheck(t, app, cookies)
	assert.True(t, isAdmin)
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "nope"},
		{name: "wrong username", username: "root", password: "changeme"},
		{name: "both wrong", username: "root", password: "nope"},
		{name: "empty credentials", username: "", password: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postLogin(t, app, tc.username, tc.password)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			// No cookie means the session still reads as anonymous.
			isAdmin, _ := sessionCheck(t, app, resp.Cookies())
			assert.False(t, isAdmin)
		})
	}
}

func TestLoginNotConfigured(t *testing.T) {
	cfg := newTestConfig()
	cfg.Admin.Username = ""
	cfg.Admin.Password = ""

	app := newTestApp(t, cfg)

	resp := postLogin(t, app, "admin", "changeme")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestLoginInvalidBody(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	req := httptest.NewRequest(fiber.MethodPost, Path, bytes.NewReader([]byte("{broken")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSessionCheckNoCookie(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	isAdmin, resp := sessionCheck(t, app, nil)
	assert.False(t, isAdmin)
	assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))
}

func TestSessionCheckForgedCookie(t *testing.T) {
	app := newTestApp(t, newTestConfig())

	token, err := session.Encode(session.New(), "wrong-secret")
	require.NoError(t, err)

	isAdmin, _ := sessionCheck(t, app, []*http.Cookie{
		{Name: session.CookieName, Value: token},
	})
	assert.False(t, isAdmin)
}
