package configurator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honestpc/honestpc-backend/internal/catalog"
	"github.com/honestpc/honestpc-backend/pkg/config"
	"github.com/honestpc/honestpc-backend/pkg/enums"
	pkgerrors "github.com/honestpc/honestpc-backend/pkg/errors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	registry, err := catalog.NewRegistry()
	require.NoError(t, err)
	svc, err := NewService(registry, config.PricingConfig{AssemblyFee: 999, TaxRate: "0.18"})
	require.NoError(t, err)
	return svc
}

func TestDeriveBuildBaseConfiguration(t *testing.T) {
	svc := newTestService(t)

	build, err := svc.DeriveBuild("entry_student", nil)
	require.NoError(t, err)

	assert.Equal(t, "entry_student", build.TierID)
	assert.Equal(t, "Student Essentials", build.TierName)
	require.Len(t, build.Components, 8)

	// 8500+6500+1800+3200+10500+3200+2800+0
	assert.Equal(t, 36500, build.Pricing.PartsTotal)
	assert.Equal(t, 999, build.Pricing.AssemblyFee)
	assert.Equal(t, 37499, build.Pricing.Subtotal)
	assert.True(t, build.Pricing.GST.Equal(decimal.RequireFromString("6749.82")), build.Pricing.GST.String())
	assert.True(t, build.Pricing.Total.Equal(decimal.RequireFromString("44248.82")), build.Pricing.Total.String())
}

func TestDeriveBuildRAMOverrideAdjustsDelta(t *testing.T) {
	svc := newTestService(t)

	base, err := svc.DeriveBuild("entry_student", nil)
	require.NoError(t, err)

	upgraded, err := svc.DeriveBuild("entry_student", Overrides{
		enums.ComponentTypeRAM: "ram_16gb",
	})
	require.NoError(t, err)

	// 16GB swaps in for the 8GB stick, delta 3400-1800.
	assert.Equal(t, base.Pricing.PartsTotal+1600, upgraded.Pricing.PartsTotal)

	ram, ok := upgraded.Components.FindByType(enums.ComponentTypeRAM)
	require.True(t, ok)
	assert.Equal(t, "ram_16gb", ram.ID)

	// Slot order is preserved under substitution.
	for i := range base.Components {
		if base.Components[i].Type == enums.ComponentTypeRAM {
			continue
		}
		assert.Equal(t, base.Components[i].ID, upgraded.Components[i].ID)
	}
}

func TestSelectTierInitializesDefaults(t *testing.T) {
	svc := newTestService(t)

	selection, err := svc.SelectTier("entry_student")
	require.NoError(t, err)

	assert.Equal(t, "entry_student", selection.Tier.ID)
	assert.Equal(t, Overrides{
		enums.ComponentTypeRAM:     "ram_8gb",
		enums.ComponentTypeStorage: "ssd_500gb",
	}, selection.Configuration)

	// The default selection derives the base build exactly.
	base, err := svc.DeriveBuild("entry_student", nil)
	require.NoError(t, err)
	assert.Equal(t, base.Components, selection.Build.Components)
	assert.Equal(t, base.Pricing, selection.Build.Pricing)

	_, err = svc.SelectTier("quantum_rig")
	require.Error(t, err)
	domainErr := pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeNotFound, domainErr.Code())
}

func TestDeriveBuildUnknownTier(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.DeriveBuild("quantum_rig", nil)
	require.Error(t, err)
	domainErr := pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeNotFound, domainErr.Code())
}

func TestDeriveBuildRejectsBadOverrides(t *testing.T) {
	svc := newTestService(t)

	cases := map[string]Overrides{
		"component not offered on tier": {enums.ComponentTypeRAM: "ram_32gb"},
		"component from wrong slot":     {enums.ComponentTypeStorage: "ram_16gb"},
		"non-configurable slot":         {enums.ComponentTypeCPU: "cpu_i7"},
		"unknown component":             {enums.ComponentTypeStorage: "ssd_9tb"},
	}

	for name, overrides := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.DeriveBuild("entry_student", overrides)
			require.Error(t, err)
			domainErr := pkgerrors.As(err)
			require.NotNil(t, domainErr)
			assert.Equal(t, pkgerrors.CodeValidation, domainErr.Code())
		})
	}
}

func TestDeriveBuildEmptyOverrideKeepsBase(t *testing.T) {
	svc := newTestService(t)

	build, err := svc.DeriveBuild("mid_gamer", Overrides{
		enums.ComponentTypeRAM: "",
	})
	require.NoError(t, err)

	ram, ok := build.Components.FindByType(enums.ComponentTypeRAM)
	require.True(t, ok)
	assert.Equal(t, "ram_16gb", ram.ID)
}

func TestComputePricingIsMonotonic(t *testing.T) {
	svc := newTestService(t)

	cheap, err := svc.DeriveBuild("mid_gamer", nil)
	require.NoError(t, err)
	pricey, err := svc.DeriveBuild("mid_gamer", Overrides{
		enums.ComponentTypeRAM:     "ram_32gb",
		enums.ComponentTypeStorage: "ssd_2tb",
	})
	require.NoError(t, err)

	assert.True(t, pricey.Pricing.Total.GreaterThan(cheap.Pricing.Total))
	assert.Equal(t, pricey.Pricing.Subtotal, pricey.Pricing.PartsTotal+999)
}

func TestDeriveBuildIsDeterministic(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.DeriveBuild("pro_creator", Overrides{enums.ComponentTypeStorage: "ssd_2tb"})
	require.NoError(t, err)
	second, err := svc.DeriveBuild("pro_creator", Overrides{enums.ComponentTypeStorage: "ssd_2tb"})
	require.NoError(t, err)

	assert.Equal(t, first.Components, second.Components)
	assert.True(t, first.Pricing.Total.Equal(second.Pricing.Total))
}
