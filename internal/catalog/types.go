package catalog

import (
	"github.com/honestpc/honestpc-backend/pkg/enums"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

// Tier is a curated budget band with a fixed base build and the upgrade
// choices allowed per configurable slot.
type Tier struct {
	ID          string                                    `json:"id"`
	Name        string                                    `json:"name"`
	RangeLabel  string                                    `json:"rangeLabel"`
	MinBudget   int                                       `json:"minBudget"`
	MaxBudget   int                                       `json:"maxBudget"`
	Description string                                    `json:"description"`
	BaseBuild   types.ComponentList                       `json:"baseBuild"`
	Upgrades    map[enums.ComponentType][]types.Component `json:"upgrades"`
}

// UpgradeChoice returns the upgrade component with the given ID for the slot,
// if the tier offers it.
func (t Tier) UpgradeChoice(slot enums.ComponentType, componentID string) (types.Component, bool) {
	for _, c := range t.Upgrades[slot] {
		if c.ID == componentID {
			return c, true
		}
	}
	return types.Component{}, false
}
