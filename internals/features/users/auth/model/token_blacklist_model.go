// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: token_blacklists
   ========================= */

// TokenBlacklist menampung access token yang sudah di-logout sebelum expired.
type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID `json:"token_blacklist_id" gorm:"column:token_blacklist_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	TokenBlacklistToken     string    `json:"token_blacklist_token"      gorm:"column:token_blacklist_token;type:text;not null;uniqueIndex:uq_token_blacklists_token"`
	TokenBlacklistExpiredAt time.Time `json:"token_blacklist_expired_at" gorm:"column:token_blacklist_expired_at;type:timestamptz;not null"`

	TokenBlacklistCreatedAt time.Time  `json:"token_blacklist_created_at"           gorm:"column:token_blacklist_created_at;type:timestamptz;not null;default:now()"`
	TokenBlacklistDeletedAt *time.Time `json:"token_blacklist_deleted_at,omitempty" gorm:"column:token_blacklist_deleted_at;type:timestamptz"`
}

func (TokenBlacklist) TableName() string { return "token_blacklists" }
