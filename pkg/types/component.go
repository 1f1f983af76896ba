package types

import "github.com/honestpc/honestpc-backend/pkg/enums"

// Component is a single catalog part. Catalog entries are immutable;
// builds and orders embed copies as JSON snapshots so later catalog
// edits never rewrite what a customer was quoted.
type Component struct {
	ID       string              `json:"id"`
	Type     enums.ComponentType `json:"type"`
	Name     string              `json:"name"`
	Price    int                 `json:"price"`
	Specs    string              `json:"specs,omitempty"`
	Image    string              `json:"image,omitempty"`
	IsLocked bool                `json:"isLocked"`
}

// ComponentList is an ordered build snapshot, stored as a jsonb column.
type ComponentList []Component

// PartsTotal sums the component prices in whole rupees.
func (l ComponentList) PartsTotal() int {
	total := 0
	for _, c := range l {
		total += c.Price
	}
	return total
}

// FindByType returns the first component occupying the given slot.
func (l ComponentList) FindByType(t enums.ComponentType) (Component, bool) {
	for _, c := range l {
		if c.Type == t {
			return c, true
		}
	}
	return Component{}, false
}
