package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authhelper "edufranchise_backend/internals/helpers/auth"

	blacklistModel "edufranchise_backend/internals/features/users/auth/model"
)

// Webhook paths that carry their own verification and skip bearer auth.
var skipPaths = map[string]struct{}{
	"/api/payments/notification": {},
}

// AuthMiddleware verifies the bearer token, resolves the tenant context
// and parks it in Locals. Everything behind it can assume a valid,
// company-scoped identity.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		tokenString, ok := authhelper.ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, authhelper.MsgNoToken)
		}

		// revoked tokens are dead even if the signature still checks out
		var revoked blacklistModel.TokenBlacklistModel
		err := db.Where("token_blacklist_token = ?", tokenString).First(&revoked).Error
		if err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, authhelper.MsgInvalidToken)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] blacklist lookup failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		claims, err := authhelper.VerifyToken(tokenString)
		if err != nil {
			return err
		}
		tc, err := authhelper.TenantContextFromClaims(claims)
		if err != nil {
			return err
		}

		c.Locals(authhelper.LocalsTenantContext, tc)
		c.Locals("user_id", tc.UserID.String())
		c.Locals("user_role", tc.Role)
		return c.Next()
	}
}
