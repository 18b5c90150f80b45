package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/essence/internal/config"
	"github.com/example/essence/internal/models"
	"github.com/example/essence/internal/services"
	"github.com/example/essence/internal/utils"
)

const userContextKey = "currentUser"

// CurrentUser is the authenticated identity stored on the request.
type CurrentUser struct {
	ID       int64
	Username string
	Role     models.Role
}

// AuthMiddleware validates the session token and loads the
// authenticated identity into context. The token is read from the
// session cookie first, then from a Bearer header for non-browser
// clients. Revoked sessions (logout) are rejected.
func AuthMiddleware(cfg *config.Config, sessions *services.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(cfg.CookieName)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}

		claims, err := utils.ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		if sessions.IsRevoked(c.Context(), claims.ID) {
			return fiber.NewError(fiber.StatusUnauthorized, "session expired")
		}

		c.Locals(userContextKey, CurrentUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     models.Role(claims.Role),
		})
		return c.Next()
	}
}

// GetCurrentUser extracts the authenticated identity from context.
func GetCurrentUser(c *fiber.Ctx) (CurrentUser, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return CurrentUser{}, false
	}

	if user, ok := value.(CurrentUser); ok {
		return user, true
	}

	return CurrentUser{}, false
}
