// Package session implements the signed admin session cookie.
//
// The cookie is the only session store: there is no server-side record.
// The payload is a small JSON document carrying the admin flag and the
// expiry, signed with HMAC-SHA256 under the configured session secret.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	// CookieName is the fixed name of the session cookie.
	CookieName = "session"

	// TTL is the session lifetime.
	TTL = 24 * time.Hour

	tokenParts = 2
)

var (
	// ErrInvalidToken is returned when a token is malformed or its
	// signature does not verify.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpired is returned when a token's expiry has passed.
	ErrExpired = errors.New("session expired")
)

// Data represents the session data structure.
type Data struct {
	IsAdmin   bool  `json:"isAdmin"`
	ExpiresAt int64 `json:"exp"`
}

// Encode signs the session data and returns the cookie token
// (payload "." signature, both base64url).
func Encode(data Data, secret string) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)

	return encoded + "." + sign(encoded, secret), nil
}

// Decode verifies a token's signature and expiry and returns the session
// data. Any failure means the caller treats the request as unauthenticated.
func Decode(token, secret string) (Data, error) {
	parts := strings.Split(token, ".")
	if len(parts) != tokenParts {
		return Data{}, ErrInvalidToken
	}

	if !hmac.Equal([]byte(sign(parts[0], secret)), []byte(parts[1])) {
		return Data{}, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return Data{}, ErrInvalidToken
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return Data{}, ErrInvalidToken
	}

	if time.Now().Unix() >= data.ExpiresAt {
		return Data{}, ErrExpired
	}

	return data, nil
}

// New returns session data for a fresh admin login.
func New() Data {
	return Data{
		IsAdmin:   true,
		ExpiresAt: time.Now().Add(TTL).Unix(),
	}
}

// IsAdmin reads the session cookie off a request. An absent, invalid or
// expired cookie reads as false.
func IsAdmin(c *fiber.Ctx, secret string) bool {
	token := c.Cookies(CookieName)
	if token == "" {
		return false
	}

	data, err := Decode(token, secret)
	if err != nil {
		return false
	}

	return data.IsAdmin
}

// Cookie builds the session cookie for a signed token. The cookie is only
// marked Secure outside of dev mode.
func Cookie(token string, devMode bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		MaxAge:   int(TTL.Seconds()),
		Path:     "/",
		Secure:   !devMode,
		HTTPOnly: true,
		SameSite: "Lax",
	}
}

// sign computes the base64url HMAC-SHA256 signature of a payload.
func sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
