package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"edufranchise_backend/internals/configs"
	userModel "edufranchise_backend/internals/features/users/auth/model"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// CreateAccessToken issues the HS256 access token carrying the tenant
// claims the resolver expects: id, email, role, company_id, branch_id.
func CreateAccessToken(u *userModel.UserModel) (string, error) {
	secret, err := configs.JWTSecret()
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Authentication unavailable")
	}

	claims := jwt.MapClaims{
		"id":         u.UserID.String(),
		"email":      u.UserEmail,
		"role":       u.UserRole,
		"company_id": u.UserCompanyID.String(),
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(AccessTokenTTL).Unix(),
	}
	if u.UserBranchID != nil {
		claims["branch_id"] = u.UserBranchID.String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// CreateRefreshToken issues the long-lived refresh token. Only the
// user id travels in it; everything else is re-read at refresh time so
// role or branch changes take effect.
func CreateRefreshToken(u *userModel.UserModel) (string, time.Time, error) {
	secret, err := configs.JWTRefreshSecret()
	if err != nil {
		return "", time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "Authentication unavailable")
	}

	expiresAt := time.Now().Add(RefreshTokenTTL)
	claims := jwt.MapClaims{
		"id":  u.UserID.String(),
		"typ": "refresh",
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ParseRefreshToken verifies a refresh token and returns its user id
// claim.
func ParseRefreshToken(tokenString string) (string, error) {
	secret, err := configs.JWTRefreshSecret()
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Authentication unavailable")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}); err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	return id, nil
}
