package model

import (
	"time"

	"github.com/google/uuid"
)

type RefreshTokenModel struct {
	RefreshTokenID        uuid.UUID `json:"refresh_token_id" gorm:"column:refresh_token_id;type:uuid;default:gen_random_uuid();primaryKey"`
	RefreshTokenUserID    uuid.UUID `json:"refresh_token_user_id" gorm:"column:refresh_token_user_id;type:uuid;not null;index"`
	RefreshTokenToken     string    `json:"-" gorm:"column:refresh_token_token;type:text;unique;not null"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at" gorm:"column:refresh_token_expires_at;not null"`
	RefreshTokenCreatedAt time.Time `json:"refresh_token_created_at" gorm:"column:refresh_token_created_at;not null;autoCreateTime"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
