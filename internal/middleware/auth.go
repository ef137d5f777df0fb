package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/quickbite/internal/services"
)

const principalContextKey = "principal"

// AuthMiddleware validates the bearer token and loads the caller into context.
func AuthMiddleware(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := auth.Authenticate(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}

		c.Locals(principalContextKey, principal)
		return c.Next()
	}
}

// RequireAdmin lets only admins through. It must run after AuthMiddleware.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.RequireAdmin(GetPrincipal(c)); err != nil {
			return err
		}
		return c.Next()
	}
}

// GetPrincipal returns the authenticated caller, or nil outside AuthMiddleware.
func GetPrincipal(c *fiber.Ctx) *services.Principal {
	p, _ := c.Locals(principalContextKey).(*services.Principal)
	return p
}
