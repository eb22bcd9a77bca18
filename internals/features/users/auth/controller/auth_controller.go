package controller

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/configs"
	"edufranchise_backend/internals/features/users/auth/dto"
	userModel "edufranchise_backend/internals/features/users/auth/model"
	"edufranchise_backend/internals/features/users/auth/service"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

// POST /api/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := service.RegisterCompany(ctl.DB, service.RegisterCompanyInput{
		CompanyName:  req.CompanyName,
		CompanyEmail: req.CompanyEmail,
		CompanyPhone: req.CompanyPhone,
		BranchName:   req.BranchName,
		OwnerName:    req.OwnerName,
		OwnerEmail:   req.OwnerEmail,
		Password:     req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompanyNameTaken):
			return helper.JsonError(c, fiber.StatusConflict, "Company name already registered")
		case errors.Is(err, service.ErrEmailTaken):
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
		}
	}

	auth, err := ctl.issueTokens(result.Owner)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration succeeded but login failed, please sign in")
	}
	return helper.JsonCreated(c, "Company registered", auth)
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := ctl.findActiveUserByEmail(req.Email)
	if err != nil {
		// same answer for unknown email and wrong password
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !service.CheckPassword(user.UserPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	auth, err := ctl.issueTokens(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	return helper.JsonOK(c, "Logged in", auth)
}

// POST /api/auth/login-google
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	clientID := configs.GetEnv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google sign-in is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{clientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	user, err := ctl.findActiveUserByEmail(claimSet.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No account for this Google user")
	}

	auth, err := ctl.issueTokens(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	return helper.JsonOK(c, "Logged in", auth)
}

// POST /api/auth/refresh
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var stored userModel.RefreshTokenModel
	if err := ctl.DB.
		Where("refresh_token_token = ? AND refresh_token_expires_at > ?", req.RefreshToken, time.Now()).
		First(&stored).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token expired or revoked")
	}

	var user userModel.UserModel
	if err := ctl.DB.
		Where("user_id = ? AND user_is_active = TRUE AND user_deleted_at IS NULL", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account no longer active")
	}

	// rotate: the presented token dies with this request
	var auth *dto.AuthResponse
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&stored).Error; err != nil {
			return err
		}
		issued, err := ctl.issueTokensTx(tx, &user)
		if err != nil {
			return err
		}
		auth = issued
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Refresh failed")
	}
	return helper.JsonOK(c, "Token refreshed", auth)
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, ok := authhelper.ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, authhelper.MsgNoToken)
	}

	// blacklist until the token's own expiry
	expiresAt := time.Now().Add(service.AccessTokenTTL)
	if claims, err := authhelper.VerifyToken(tokenString); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(exp), 0)
		}
	}

	row := userModel.TokenBlacklistModel{
		TokenBlacklistToken:     tokenString,
		TokenBlacklistExpiresAt: expiresAt,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonOK(c, "Logged out", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, authhelper.MsgInvalidToken)
	}

	return helper.JsonOK(c, "", fiber.Map{
		"user_id":    tc.UserID,
		"email":      tc.Email,
		"role":       tc.Role,
		"company_id": tc.CompanyID,
		"branch_id":  tc.BranchID,
	})
}

/* ========== internals ========== */

func (ctl *AuthController) findActiveUserByEmail(email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := ctl.DB.
		Where("lower(user_email) = lower(?) AND user_is_active = TRUE AND user_deleted_at IS NULL",
			strings.TrimSpace(email)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ctl *AuthController) issueTokens(u *userModel.UserModel) (*dto.AuthResponse, error) {
	return ctl.issueTokensTx(ctl.DB, u)
}

func (ctl *AuthController) issueTokensTx(db *gorm.DB, u *userModel.UserModel) (*dto.AuthResponse, error) {
	access, err := service.CreateAccessToken(u)
	if err != nil {
		return nil, err
	}
	refresh, expiresAt, err := service.CreateRefreshToken(u)
	if err != nil {
		return nil, err
	}
	row := userModel.RefreshTokenModel{
		RefreshTokenUserID:    u.UserID,
		RefreshTokenToken:     refresh,
		RefreshTokenExpiresAt: expiresAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.NewUserResponse(u),
	}, nil
}
