package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the `users` table. Every user belongs to one
// company; branch staff additionally carry the branch they work at.
type UserModel struct {
	UserID        uuid.UUID  `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserCompanyID uuid.UUID  `json:"user_company_id" gorm:"column:user_company_id;type:uuid;not null;index"`
	UserBranchID  *uuid.UUID `json:"user_branch_id,omitempty" gorm:"column:user_branch_id;type:uuid"` // NULL for company-wide roles

	UserName     string `json:"user_name" gorm:"column:user_name;type:varchar(120);not null"`
	UserEmail    string `json:"user_email" gorm:"column:user_email;type:varchar(160);unique;not null"`
	UserPassword string `json:"-" gorm:"column:user_password;type:text;not null"`
	UserRole     string `json:"user_role" gorm:"column:user_role;type:varchar(40);not null"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time  `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt *time.Time `json:"user_updated_at,omitempty" gorm:"column:user_updated_at"`
	UserDeletedAt *time.Time `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at"`
}

func (UserModel) TableName() string {
	return "users"
}
