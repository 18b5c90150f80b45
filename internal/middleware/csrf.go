package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/example/essence/internal/config"
)

// CSRFHeader carries the anti-forgery token on state-changing requests.
const CSRFHeader = "X-CSRF-Token"

// CSRFMiddleware enforces a double-submit token: state-changing
// requests that carry a session cookie must echo the CSRF cookie value
// in the X-CSRF-Token header. Requests authenticated via Bearer header
// are not cookie-based and are exempt.
func CSRFMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		if c.Cookies(cfg.CookieName) == "" {
			return c.Next()
		}

		cookie := c.Cookies(cfg.CSRFCookieName)
		header := c.Get(CSRFHeader)
		if !TokensMatch(cookie, header) {
			return fiber.NewError(fiber.StatusForbidden, "invalid csrf token")
		}

		return c.Next()
	}
}

// TokensMatch compares two CSRF tokens in constant time. Empty tokens
// never match.
func TokensMatch(cookie, header string) bool {
	if cookie == "" || header == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) == 1
}
