package configurator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/honestpc/honestpc-backend/internal/catalog"
	"github.com/honestpc/honestpc-backend/pkg/config"
	"github.com/honestpc/honestpc-backend/pkg/enums"
	pkgerrors "github.com/honestpc/honestpc-backend/pkg/errors"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

// Overrides maps a configurable slot to the chosen component ID. Slots
// left out keep the tier's base choice.
type Overrides map[enums.ComponentType]string

// Build is a fully derived configuration: the component snapshot plus its
// price breakdown. Downstream code treats it as immutable.
type Build struct {
	TierID     string              `json:"tierId"`
	TierName   string              `json:"tierName"`
	Components types.ComponentList `json:"components"`
	Pricing    types.Pricing       `json:"pricing"`
}

// Service derives builds and pricing from the tier catalog. All methods are
// pure: same inputs, same outputs, no stored state beyond the catalog and
// the pricing constants.
type Service struct {
	registry    *catalog.Registry
	assemblyFee int
	taxRate     decimal.Decimal
}

// NewService constructs the configurator.
func NewService(registry *catalog.Registry, pricing config.PricingConfig) (*Service, error) {
	if registry == nil {
		return nil, fmt.Errorf("catalog registry required")
	}
	rate, err := pricing.Rate()
	if err != nil {
		return nil, err
	}
	if pricing.AssemblyFee < 0 {
		return nil, fmt.Errorf("assembly fee cannot be negative")
	}
	return &Service{
		registry:    registry,
		assemblyFee: pricing.AssemblyFee,
		taxRate:     rate,
	}, nil
}

// TierSelection is the payload for entering a tier: the tier itself, the
// default slot configuration (the tier's own RAM and Storage choices), and
// the priced base build that configuration derives.
type TierSelection struct {
	Tier          catalog.Tier `json:"tier"`
	Configuration Overrides    `json:"configuration"`
	Build         Build        `json:"build"`
}

// Tiers returns the full lineup for the storefront.
func (s *Service) Tiers() []catalog.Tier {
	return s.registry.Tiers()
}

// SelectTier looks up a tier and initializes its default configuration.
// The derived build equals the tier's base build exactly.
func (s *Service) SelectTier(tierID string) (*TierSelection, error) {
	tier, err := s.registry.TierByID(tierID)
	if err != nil {
		return nil, err
	}

	configuration := Overrides{}
	for _, c := range tier.BaseBuild {
		if c.Type.IsConfigurable() {
			configuration[c.Type] = c.ID
		}
	}

	build, err := s.DeriveBuild(tier.ID, nil)
	if err != nil {
		return nil, err
	}

	return &TierSelection{
		Tier:          tier,
		Configuration: configuration,
		Build:         *build,
	}, nil
}

// DeriveBuild produces the component list for a tier with the given
// overrides applied. Slot order follows the tier's base build; an override
// replaces the base component in place. Unknown slots or choices the tier
// does not offer are rejected.
func (s *Service) DeriveBuild(tierID string, overrides Overrides) (*Build, error) {
	tier, err := s.registry.TierByID(tierID)
	if err != nil {
		return nil, err
	}

	components := make(types.ComponentList, 0, len(tier.BaseBuild))
	components = append(components, tier.BaseBuild...)

	for slot, componentID := range overrides {
		if componentID == "" {
			continue
		}
		if !slot.IsConfigurable() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("slot %s is not configurable", slot)).
				WithDetails(map[string]any{"slot": slot.String()})
		}

		choice, ok := tier.UpgradeChoice(slot, componentID)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("component %q is not offered for %s on tier %s", componentID, slot, tier.ID)).
				WithDetails(map[string]any{"slot": slot.String(), "componentId": componentID, "tierId": tier.ID})
		}

		replaced := false
		for i, c := range components {
			if c.Type == slot {
				components[i] = choice
				replaced = true
				break
			}
		}
		if !replaced {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("tier %s has no %s slot", tier.ID, slot))
		}
	}

	return &Build{
		TierID:     tier.ID,
		TierName:   tier.Name,
		Components: components,
		Pricing:    s.ComputePricing(components),
	}, nil
}

// ComputePricing returns the breakdown for a component list. GST applies to
// parts plus the assembly fee; no intermediate rounding.
func (s *Service) ComputePricing(components types.ComponentList) types.Pricing {
	partsTotal := components.PartsTotal()
	subtotal := partsTotal + s.assemblyFee

	gst := decimal.NewFromInt(int64(subtotal)).Mul(s.taxRate)
	total := decimal.NewFromInt(int64(subtotal)).Add(gst)

	return types.Pricing{
		PartsTotal:  partsTotal,
		AssemblyFee: s.assemblyFee,
		Subtotal:    subtotal,
		GST:         gst,
		Total:       total,
	}
}
