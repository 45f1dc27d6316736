package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/lucifer9973/task-manager-api/pkg/util"
)

// RequireAdmin gates a route on the resolved user's role. It must run
// after AuthMiddleware; a request that reaches it without an attached user
// is treated as unauthenticated. Pure predicate, no side effects.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("Access denied. Please login first.")
		}
		if !user.IsAdmin() {
			return apperrors.NewForbidden("Access denied. Admin privileges required.")
		}
		return c.Next()
	}
}
