package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// AdminAuth guards the admin endpoints with HTTP basic auth against a single
// shared password. The username part of the credentials is ignored.
//
// Both sides are hashed before comparison so the check is constant-time and
// independent of password length.
func AdminAuth(password string) fiber.Handler {
	want := sha256.Sum256([]byte(password))

	return func(c fiber.Ctx) error {
		pass, okCred := basicPassword(c.Get(fiber.HeaderAuthorization))
		got := sha256.Sum256([]byte(pass))
		if !okCred || subtle.ConstantTimeCompare(got[:], want[:]) != 1 {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="restricted"`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "incorrect password"})
		}
		return c.Next()
	}
}

// basicPassword extracts the password from a Basic authorization header.
func basicPassword(header string) (string, bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", false
	}
	_, pass, found := strings.Cut(string(raw), ":")
	return pass, found
}
