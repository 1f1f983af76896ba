package builds

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/honestpc/honestpc-backend/internal/catalog"
	"github.com/honestpc/honestpc-backend/internal/configurator"
	"github.com/honestpc/honestpc-backend/pkg/config"
	"github.com/honestpc/honestpc-backend/pkg/db/models"
	"github.com/honestpc/honestpc-backend/pkg/enums"
	pkgerrors "github.com/honestpc/honestpc-backend/pkg/errors"
)

type memoryBuildRepo struct {
	byID map[uuid.UUID]*models.Build
}

func newMemoryBuildRepo() *memoryBuildRepo {
	return &memoryBuildRepo{byID: map[uuid.UUID]*models.Build{}}
}

func (m *memoryBuildRepo) Create(_ context.Context, build *models.Build) (*models.Build, error) {
	clone := *build
	m.byID[build.ID] = &clone
	return build, nil
}

func (m *memoryBuildRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Build, error) {
	if build, ok := m.byID[id]; ok {
		clone := *build
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryBuildRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Build, error) {
	var out []models.Build
	for _, build := range m.byID {
		if build.UserID == userID {
			out = append(out, *build)
		}
	}
	return out, nil
}

func (m *memoryBuildRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.byID, id)
	return nil
}

func newBuildsService(t *testing.T) (Service, *memoryBuildRepo) {
	t.Helper()
	registry, err := catalog.NewRegistry()
	require.NoError(t, err)
	deriver, err := configurator.NewService(registry, config.PricingConfig{AssemblyFee: 999, TaxRate: "0.18"})
	require.NoError(t, err)

	repo := newMemoryBuildRepo()
	svc, err := NewService(repo, deriver)
	require.NoError(t, err)
	return svc, repo
}

func TestSaveDerivesAndPersistsSnapshot(t *testing.T) {
	svc, repo := newBuildsService(t)
	userID := uuid.New()
	ramID := "ram_16gb"

	dto, err := svc.Save(context.Background(), userID, SaveBuildRequest{
		Name:   "study rig",
		TierID: "entry_student",
		RAMID:  &ramID,
	})
	require.NoError(t, err)

	assert.Equal(t, "study rig", dto.Name)
	assert.Equal(t, "Student Essentials", dto.TierName)
	ram, ok := dto.Components.FindByType(enums.ComponentTypeRAM)
	require.True(t, ok)
	assert.Equal(t, "ram_16gb", ram.ID)

	stored, ok := repo.byID[dto.ID]
	require.True(t, ok)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, dto.Pricing.Subtotal, stored.Pricing.Subtotal)
}

func TestSaveRejectsInvalidOverride(t *testing.T) {
	svc, _ := newBuildsService(t)
	badRAM := "ram_32gb"

	_, err := svc.Save(context.Background(), uuid.New(), SaveBuildRequest{
		Name:   "bad rig",
		TierID: "entry_student",
		RAMID:  &badRAM,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestGetAndDeleteAreOwnerGated(t *testing.T) {
	svc, _ := newBuildsService(t)
	owner := uuid.New()
	stranger := uuid.New()

	dto, err := svc.Save(context.Background(), owner, SaveBuildRequest{
		Name:   "mine",
		TierID: "mid_gamer",
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), stranger, dto.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())

	err = svc.Delete(context.Background(), stranger, dto.ID)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())

	got, err := svc.Get(context.Background(), owner, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.ID, got.ID)

	require.NoError(t, svc.Delete(context.Background(), owner, dto.ID))

	_, err = svc.Get(context.Background(), owner, dto.ID)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestListReturnsOnlyOwnBuilds(t *testing.T) {
	svc, _ := newBuildsService(t)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Save(context.Background(), alice, SaveBuildRequest{Name: "a1", TierID: "entry_student"})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), alice, SaveBuildRequest{Name: "a2", TierID: "pro_creator"})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), bob, SaveBuildRequest{Name: "b1", TierID: "mid_gamer"})
	require.NoError(t, err)

	mine, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
