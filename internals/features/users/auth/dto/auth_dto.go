package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "edufranchise_backend/internals/features/users/auth/model"
)

/* ========== REQUEST DTOs ========== */

type RegisterCompanyRequest struct {
	CompanyName  string  `json:"company_name" validate:"required,min=2,max=160"`
	CompanyEmail string  `json:"company_email" validate:"required,email"`
	CompanyPhone *string `json:"company_phone" validate:"omitempty,max=30"`
	BranchName   string  `json:"branch_name" validate:"omitempty,min=2,max=120"`
	OwnerName    string  `json:"owner_name" validate:"required,min=2,max=120"`
	OwnerEmail   string  `json:"owner_email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

/* ========== RESPONSE DTOs ========== */

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserCompanyID uuid.UUID  `json:"user_company_id"`
	UserBranchID  *uuid.UUID `json:"user_branch_id,omitempty"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	UserRole      string     `json:"user_role"`
	UserIsActive  bool       `json:"user_is_active"`
	UserCreatedAt time.Time  `json:"user_created_at"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

func NewUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserCompanyID: m.UserCompanyID,
		UserBranchID:  m.UserBranchID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
