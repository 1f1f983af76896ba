package builds

import (
	"time"

	"github.com/google/uuid"

	"github.com/honestpc/honestpc-backend/internal/configurator"
	"github.com/honestpc/honestpc-backend/pkg/db/models"
	"github.com/honestpc/honestpc-backend/pkg/enums"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

// SaveBuildRequest is the payload to save a configured build.
type SaveBuildRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	TierID    string  `json:"tierId" validate:"required"`
	RAMID     *string `json:"ramId,omitempty"`
	StorageID *string `json:"storageId,omitempty"`
}

// Overrides converts the optional slot choices into configurator overrides.
func (r SaveBuildRequest) Overrides() configurator.Overrides {
	overrides := configurator.Overrides{}
	if r.RAMID != nil {
		overrides[enums.ComponentTypeRAM] = *r.RAMID
	}
	if r.StorageID != nil {
		overrides[enums.ComponentTypeStorage] = *r.StorageID
	}
	return overrides
}

// BuildDTO is the transport shape for a saved build.
type BuildDTO struct {
	ID         uuid.UUID           `json:"id"`
	Name       string              `json:"name"`
	TierID     string              `json:"tierId"`
	TierName   string              `json:"tierName"`
	Components types.ComponentList `json:"components"`
	Pricing    types.Pricing       `json:"pricing"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

func FromModel(b *models.Build) *BuildDTO {
	if b == nil {
		return nil
	}
	return &BuildDTO{
		ID:         b.ID,
		Name:       b.Name,
		TierID:     b.TierID,
		TierName:   b.TierName,
		Components: b.Components,
		Pricing:    b.Pricing,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func fromModels(items []models.Build) []BuildDTO {
	out := make([]BuildDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}
