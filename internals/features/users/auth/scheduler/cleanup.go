package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "edufranchise_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler prunes expired blacklist and refresh-token
// rows periodically so the tables stay small.
func StartTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(6 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()

			res := db.Where("token_blacklist_expires_at < ?", now).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[ERROR] blacklist cleanup failed: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup removed %d rows", res.RowsAffected)
			}

			res = db.Where("refresh_token_expires_at < ?", now).
				Delete(&authModel.RefreshTokenModel{})
			if res.Error != nil {
				log.Printf("[ERROR] refresh token cleanup failed: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] refresh token cleanup removed %d rows", res.RowsAffected)
			}
		}
	}()
}
