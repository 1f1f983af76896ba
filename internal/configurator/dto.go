package configurator

import "github.com/honestpc/honestpc-backend/pkg/enums"

// QuoteRequest asks for the derived components and pricing of a tier with
// optional slot upgrades, without persisting anything.
type QuoteRequest struct {
	TierID    string  `json:"tierId" validate:"required"`
	RAMID     *string `json:"ramId,omitempty"`
	StorageID *string `json:"storageId,omitempty"`
}

// Overrides converts the optional slot choices into overrides.
func (r QuoteRequest) Overrides() Overrides {
	overrides := Overrides{}
	if r.RAMID != nil {
		overrides[enums.ComponentTypeRAM] = *r.RAMID
	}
	if r.StorageID != nil {
		overrides[enums.ComponentTypeStorage] = *r.StorageID
	}
	return overrides
}
