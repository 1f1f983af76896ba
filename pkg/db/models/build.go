package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/honestpc/honestpc-backend/pkg/types"
)

// Build is a named saved configuration: a snapshot of the derived parts
// list and its pricing at the moment the user hit save. Immutable apart
// from explicit delete.
type Build struct {
	ID         uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	Name       string              `gorm:"column:name;not null"`
	TierID     string              `gorm:"column:tier_id;not null"`
	TierName   string              `gorm:"column:tier_name;not null"`
	Components types.ComponentList `gorm:"column:components;type:jsonb;serializer:json"`
	Pricing    types.Pricing       `gorm:"column:pricing;type:jsonb;serializer:json"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
