package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"edufranchise_backend/internals/configs"
)

// Messages surfaced on 401 responses. Kept stable because clients and
// tests match on them.
const (
	MsgNoToken        = "No authentication token provided"
	MsgInvalidToken   = "Invalid token"
	MsgMissingCompany = "Invalid token: missing company context"
)

// LocalsTenantContext is where the auth middleware parks the resolved
// context for the rest of the request.
const LocalsTenantContext = "tenant_context"

// TenantContext is the per-request identity + scope derived from the
// access token. It is owned by the request that resolved it and must
// never be cached across requests.
type TenantContext struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	CompanyID uuid.UUID
	BranchID  *uuid.UUID // nil for company-wide roles
}

// ExtractBearerToken pulls the raw token out of an Authorization header
// value. Anything that is not "Bearer <token>" yields ok=false.
func ExtractBearerToken(header string) (string, bool) {
	fields := strings.Fields(strings.TrimSpace(header))
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", false
	}
	tok := strings.Trim(fields[1], "\"'")
	if tok == "" {
		return "", false
	}
	return tok, true
}

// VerifyToken parses and verifies an access token (HS256, exp enforced
// by the parser). A missing signing secret is a 500, never a pass.
func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	secret, err := configs.JWTSecret()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Authentication unavailable")
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, MsgInvalidToken)
	}
	return claims, nil
}

// TenantContextFromClaims builds a TenantContext from verified claims.
// A token without a company claim is an authentication failure, not an
// authorization one: such tokens predate multi-tenancy or were crafted,
// and nothing downstream may run without a tenant.
func TenantContextFromClaims(claims jwt.MapClaims) (TenantContext, error) {
	userID, err := claimUUID(claims, "id")
	if err != nil {
		return TenantContext{}, fiber.NewError(fiber.StatusUnauthorized, MsgInvalidToken)
	}

	companyID, err := claimUUID(claims, "company_id")
	if err != nil || companyID == uuid.Nil {
		return TenantContext{}, fiber.NewError(fiber.StatusUnauthorized, MsgMissingCompany)
	}

	tc := TenantContext{
		UserID:    userID,
		CompanyID: companyID,
	}
	if v, ok := claims["email"].(string); ok {
		tc.Email = strings.TrimSpace(v)
	}
	if v, ok := claims["role"].(string); ok {
		tc.Role = strings.TrimSpace(v)
	}
	if branchID, err := claimUUID(claims, "branch_id"); err == nil && branchID != uuid.Nil {
		tc.BranchID = &branchID
	}
	return tc, nil
}

// ResolveTenantContext is the single choke point every handler goes
// through before touching storage. It prefers the context stored by the
// auth middleware and falls back to resolving the header itself.
func ResolveTenantContext(c *fiber.Ctx) (TenantContext, error) {
	if tc, ok := c.Locals(LocalsTenantContext).(TenantContext); ok {
		return tc, nil
	}

	token, ok := ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return TenantContext{}, fiber.NewError(fiber.StatusUnauthorized, MsgNoToken)
	}
	claims, err := VerifyToken(token)
	if err != nil {
		return TenantContext{}, err
	}
	tc, err := TenantContextFromClaims(claims)
	if err != nil {
		return TenantContext{}, err
	}
	c.Locals(LocalsTenantContext, tc)
	return tc, nil
}

func claimUUID(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	raw, ok := claims[key]
	if !ok || raw == nil {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	return uuid.Parse(strings.TrimSpace(s))
}
