package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/honestpc/honestpc-backend/pkg/enums"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

// Order is a committed purchase. The build and pricing snapshots are
// frozen at checkout; only status and status_history mutate afterwards,
// and both only through the lifecycle service.
type Order struct {
	ID              uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	UserEmail       string              `gorm:"column:user_email;not null"`
	UserName        string              `gorm:"column:user_name;not null"`
	BuildID         *uuid.UUID          `gorm:"column:build_id;type:uuid"`
	TierID          string              `gorm:"column:tier_id;not null"`
	TierName        string              `gorm:"column:tier_name;not null"`
	Components      types.ComponentList `gorm:"column:components;type:jsonb;serializer:json"`
	Pricing         types.Pricing       `gorm:"column:pricing;type:jsonb;serializer:json"`
	ShippingAddress types.Address       `gorm:"column:shipping_address;type:jsonb;serializer:json"`
	Phone           string              `gorm:"column:phone;not null"`
	Status          enums.OrderStatus   `gorm:"column:status;type:text;not null;default:'pending'"`
	OrderNumber     int64               `gorm:"column:order_number;not null;uniqueIndex"`
	OrderRef        string              `gorm:"column:order_ref;not null;uniqueIndex"`
	StatusHistory   types.StatusHistory `gorm:"column:status_history;type:jsonb;serializer:json"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
