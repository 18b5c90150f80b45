package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/essence/internal/models"
)

// RoleAllowed reports whether the role is in the allowed set.
func RoleAllowed(role models.Role, allowed ...models.Role) bool {
	for _, candidate := range allowed {
		if role == candidate {
			return true
		}
	}
	return false
}

// RequireRole rejects authenticated users whose role is not in the
// allowed set. Must run after AuthMiddleware.
func RequireRole(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetCurrentUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}

		if !RoleAllowed(user.Role, allowed...) {
			return fiber.NewError(fiber.StatusForbidden, "insufficient role")
		}

		return c.Next()
	}
}
