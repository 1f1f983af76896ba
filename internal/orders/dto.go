package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/honestpc/honestpc-backend/internal/configurator"
	"github.com/honestpc/honestpc-backend/pkg/db/models"
	"github.com/honestpc/honestpc-backend/pkg/enums"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

// CreateOrderRequest is the checkout payload. Either a saved build or a
// tier (with optional overrides) must be provided.
type CreateOrderRequest struct {
	BuildID         *uuid.UUID    `json:"buildId,omitempty"`
	TierID          string        `json:"tierId,omitempty"`
	RAMID           *string       `json:"ramId,omitempty"`
	StorageID       *string       `json:"storageId,omitempty"`
	ShippingAddress types.Address `json:"shippingAddress" validate:"required"`
	Phone           string        `json:"phone" validate:"required,min=7,max=20"`
}

// Overrides converts the optional slot choices into configurator overrides.
func (r CreateOrderRequest) Overrides() configurator.Overrides {
	overrides := configurator.Overrides{}
	if r.RAMID != nil {
		overrides[enums.ComponentTypeRAM] = *r.RAMID
	}
	if r.StorageID != nil {
		overrides[enums.ComponentTypeStorage] = *r.StorageID
	}
	return overrides
}

// AdvanceOrderRequest is the admin payload to move an order one step
// forward in the pipeline.
type AdvanceOrderRequest struct {
	Status string  `json:"status" validate:"required"`
	Note   *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// OrderDTO is the transport shape for an order.
type OrderDTO struct {
	ID              uuid.UUID           `json:"id"`
	OrderRef        string              `json:"orderRef"`
	OrderNumber     int64               `json:"orderNumber"`
	UserID          uuid.UUID           `json:"userId"`
	UserEmail       string              `json:"userEmail"`
	UserName        string              `json:"userName"`
	BuildID         *uuid.UUID          `json:"buildId,omitempty"`
	TierID          string              `json:"tierId"`
	TierName        string              `json:"tierName"`
	Components      types.ComponentList `json:"components"`
	Pricing         types.Pricing       `json:"pricing"`
	ShippingAddress types.Address       `json:"shippingAddress"`
	Phone           string              `json:"phone"`
	Status          enums.OrderStatus   `json:"status"`
	StatusLabel     string              `json:"statusLabel"`
	StatusHistory   types.StatusHistory `json:"statusHistory"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		ID:              o.ID,
		OrderRef:        o.OrderRef,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		UserEmail:       o.UserEmail,
		UserName:        o.UserName,
		BuildID:         o.BuildID,
		TierID:          o.TierID,
		TierName:        o.TierName,
		Components:      o.Components,
		Pricing:         o.Pricing,
		ShippingAddress: o.ShippingAddress,
		Phone:           o.Phone,
		Status:          o.Status,
		StatusLabel:     o.Status.Label(),
		StatusHistory:   o.StatusHistory,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func fromModels(items []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}
