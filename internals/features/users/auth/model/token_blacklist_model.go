package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel holds access tokens revoked by logout until they
// would have expired anyway. A scheduler prunes stale rows.
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID `json:"token_blacklist_id" gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TokenBlacklistToken     string    `json:"-" gorm:"column:token_blacklist_token;type:text;unique;not null"`
	TokenBlacklistExpiresAt time.Time `json:"token_blacklist_expires_at" gorm:"column:token_blacklist_expires_at;not null;index"`
	TokenBlacklistCreatedAt time.Time `json:"token_blacklist_created_at" gorm:"column:token_blacklist_created_at;not null;autoCreateTime"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
