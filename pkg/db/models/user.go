package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/honestpc/honestpc-backend/pkg/enums"
)

// User represents the canonical identity entity.
type User struct {
	ID           uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string           `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string           `gorm:"column:password_hash;not null"`
	Name         string           `gorm:"column:name;not null"`
	Role         enums.MemberRole `gorm:"column:role;type:text;not null;default:'customer'"`
	IsActive     bool             `gorm:"column:is_active;not null;default:true"`
	LastLoginAt  *time.Time       `gorm:"column:last_login_at"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// IsAdmin reports whether the user may drive the fulfillment pipeline.
func (u User) IsAdmin() bool {
	return u.Role == enums.MemberRoleAdmin
}
