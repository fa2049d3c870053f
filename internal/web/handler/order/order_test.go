package order

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	require.NoError(t, db.AutoMigrate(&models.Order{}))

	return db
}

func newTestApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		DevMode: true,
		Admin:   config.Admin{SessionSecret: testSecret},
	}

	app := fiber.New()

	svc := Service{}
	require.NoError(t, svc.Init(app, cfg, db))

	return app
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()

	token, err := session.Encode(session.New(), testSecret)
	require.NoError(t, err)

	return &http.Cookie{Name: session.CookieName, Value: token}
}

func patchOrder(t *testing.T, app *fiber.App, path, body string, cookie *http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPatch, path, bytes.NewReader([]byte(body)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestPatchRequiresAdmin(t *testing.T) {
	app := newTestApp(t, newTestDB(t))

	resp := patchOrder(t, app, "/api/orders/1", `{"status":"paid"}`, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPatchInvalidID(t *testing.T) {
	app := newTestApp(t, newTestDB(t))

	resp := patchOrder(t, app, "/api/orders/abc", `{"status":"paid"}`, adminCookie(t))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPatchNotFound(t *testing.T) {
	app := newTestApp(t, newTestDB(t))

	resp := patchOrder(t, app, "/api/orders/999", `{"status":"paid"}`, adminCookie(t))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPatchUpdatesFields(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t, db)

	seeded := &models.Order{
		CustomerName:  "Sam Carter",
		CustomerEmail: "sam@example.com",
		Total:         "59.90",
		Status:        "pending",
	}
	require.NoError(t, db.Create(seeded).Error)

	resp := patchOrder(t, app, "/api/orders/1", `{"status":"shipped","paymentId":"pi_123"}`, adminCookie(t))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out models.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "shipped", out.Status)
	assert.Equal(t, "pi_123", out.PaymentID)
	// Untouched fields survive the partial update
	assert.Equal(t, "sam@example.com", out.CustomerEmail)
}

func TestPatchEmptyBody(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t, db)

	require.NoError(t, db.Create(&models.Order{Status: "pending"}).Error)

	resp := patchOrder(t, app, "/api/orders/1", `{}`, adminCookie(t))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out models.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "pending", out.Status)
}

func TestPatchInvalidEmail(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t, db)

	require.NoError(t, db.Create(&models.Order{Status: "pending"}).Error)

	resp := patchOrder(t, app, "/api/orders/1", `{"customerEmail":"not-an-email"}`, adminCookie(t))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPatchMalformedBody(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t, db)

	require.NoError(t, db.Create(&models.Order{Status: "pending"}).Error)

	resp := patchOrder(t, app, "/api/orders/1", `{broken`, adminCookie(t))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateRequestFields(t *testing.T) {
	status := "paid"
	email := "sam@example.com"

	req := updateRequest{Status: &status, CustomerEmail: &email}
	fields := req.fields()

	assert.Len(t, fields, 2)
	assert.Equal(t, "paid", fields["status"])
	assert.Equal(t, "sam@example.com", fields["customer_email"])

	for column := range fields {
		assert.False(t, strings.ContainsAny(column, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"), "columns are snake_case")
	}
}
