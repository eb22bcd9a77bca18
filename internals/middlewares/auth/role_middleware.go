package auth

import (
	"github.com/gofiber/fiber/v2"

	authhelper "edufranchise_backend/internals/helpers/auth"
)

// OnlyRoles gates a route group on the resolved role.
func OnlyRoles(forbiddenMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tc, ok := c.Locals(authhelper.LocalsTenantContext).(authhelper.TenantContext)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, authhelper.MsgNoToken)
		}
		if !authhelper.HasAnyRole(tc, roles...) {
			if forbiddenMessage == "" {
				forbiddenMessage = "You are not allowed to access this resource"
			}
			return fiber.NewError(fiber.StatusForbidden, forbiddenMessage)
		}
		return c.Next()
	}
}
