package catalog

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/honestpc/honestpc-backend/pkg/enums"
	pkgerrors "github.com/honestpc/honestpc-backend/pkg/errors"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

// Registry holds the validated tier lineup. The catalog is compiled in, so
// the registry is built once at startup and read-only afterwards.
type Registry struct {
	tiers []Tier
	byID  map[string]int
}

// NewRegistry validates and indexes the compiled-in catalog.
func NewRegistry() (*Registry, error) {
	return newRegistry(buildTiers)
}

func newRegistry(tiers []Tier) (*Registry, error) {
	if err := validateTiers(tiers); err != nil {
		return nil, fmt.Errorf("catalog validation: %w", err)
	}

	byID := make(map[string]int, len(tiers))
	for i, tier := range tiers {
		byID[tier.ID] = i
	}
	return &Registry{tiers: tiers, byID: byID}, nil
}

// Tiers returns the lineup in display order.
func (r *Registry) Tiers() []Tier {
	out := make([]Tier, len(r.tiers))
	copy(out, r.tiers)
	return out
}

// TierByID returns the tier with the given ID.
func (r *Registry) TierByID(id string) (Tier, error) {
	idx, ok := r.byID[id]
	if !ok {
		return Tier{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("tier %q not found", id)).
			WithDetails(map[string]any{"tierId": id})
	}
	return r.tiers[idx], nil
}

func validateTiers(tiers []Tier) error {
	var err error

	seen := map[string]bool{}
	for _, tier := range tiers {
		if tier.ID == "" {
			err = multierr.Append(err, fmt.Errorf("tier with empty id"))
			continue
		}
		if seen[tier.ID] {
			err = multierr.Append(err, fmt.Errorf("duplicate tier id %q", tier.ID))
		}
		seen[tier.ID] = true
		err = multierr.Append(err, validateTier(tier))
	}
	return err
}

func validateTier(tier Tier) error {
	var err error

	if tier.MinBudget < 0 || tier.MaxBudget <= tier.MinBudget {
		err = multierr.Append(err, fmt.Errorf("tier %s: invalid budget range [%d, %d]", tier.ID, tier.MinBudget, tier.MaxBudget))
	}

	slots := map[enums.ComponentType]int{}
	for _, c := range tier.BaseBuild {
		err = multierr.Append(err, validateComponent(tier.ID, c))
		slots[c.Type]++
	}
	for slot, count := range slots {
		if count > 1 {
			err = multierr.Append(err, fmt.Errorf("tier %s: %d base components for slot %s", tier.ID, count, slot))
		}
	}

	for slot, choices := range tier.Upgrades {
		if !slot.IsConfigurable() {
			err = multierr.Append(err, fmt.Errorf("tier %s: slot %s is not configurable", tier.ID, slot))
		}
		if len(choices) == 0 {
			err = multierr.Append(err, fmt.Errorf("tier %s: slot %s has no upgrade choices", tier.ID, slot))
			continue
		}

		base, ok := tier.BaseBuild.FindByType(slot)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("tier %s: upgrades for slot %s but no base component", tier.ID, slot))
		}

		baseIncluded := false
		for _, c := range choices {
			err = multierr.Append(err, validateComponent(tier.ID, c))
			if c.Type != slot {
				err = multierr.Append(err, fmt.Errorf("tier %s: upgrade %s is %s, expected %s", tier.ID, c.ID, c.Type, slot))
			}
			if ok && c.ID == base.ID {
				baseIncluded = true
			}
		}
		if ok && !baseIncluded {
			err = multierr.Append(err, fmt.Errorf("tier %s: base component %s missing from %s upgrade choices", tier.ID, base.ID, slot))
		}
	}

	return err
}

func validateComponent(tierID string, c types.Component) error {
	var err error
	if c.ID == "" {
		err = multierr.Append(err, fmt.Errorf("tier %s: component with empty id", tierID))
	}
	if !c.Type.IsValid() {
		err = multierr.Append(err, fmt.Errorf("tier %s: component %s has unknown type %q", tierID, c.ID, c.Type))
	}
	if c.Price < 0 {
		err = multierr.Append(err, fmt.Errorf("tier %s: component %s has negative price", tierID, c.ID))
	}
	if c.IsLocked && c.Type.IsConfigurable() {
		err = multierr.Append(err, fmt.Errorf("tier %s: component %s is locked but occupies a configurable slot", tierID, c.ID))
	}
	return err
}
