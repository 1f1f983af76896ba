package types

import (
	"fmt"
	"strings"
)

// Address is the shipping destination captured at checkout, stored as a
// jsonb column.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Validate checks the fields a courier cannot do without.
func (a Address) Validate() error {
	if strings.TrimSpace(a.Street) == "" {
		return fmt.Errorf("address: missing street")
	}
	if strings.TrimSpace(a.City) == "" {
		return fmt.Errorf("address: missing city")
	}
	if strings.TrimSpace(a.State) == "" {
		return fmt.Errorf("address: missing state")
	}
	if strings.TrimSpace(a.Pincode) == "" {
		return fmt.Errorf("address: missing pincode")
	}
	return nil
}
