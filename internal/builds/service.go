package builds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/honestpc/honestpc-backend/internal/configurator"
	"github.com/honestpc/honestpc-backend/pkg/db/models"
	pkgerrors "github.com/honestpc/honestpc-backend/pkg/errors"
)

// Service exposes saved-build management for customers.
type Service interface {
	Save(ctx context.Context, userID uuid.UUID, req SaveBuildRequest) (*BuildDTO, error)
	List(ctx context.Context, userID uuid.UUID) ([]BuildDTO, error)
	Get(ctx context.Context, userID, buildID uuid.UUID) (*BuildDTO, error)
	Delete(ctx context.Context, userID, buildID uuid.UUID) error
}

type buildRepository interface {
	Create(ctx context.Context, build *models.Build) (*models.Build, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Build, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Build, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type buildDeriver interface {
	DeriveBuild(tierID string, overrides configurator.Overrides) (*configurator.Build, error)
}

type service struct {
	repo         buildRepository
	configurator buildDeriver
}

// NewService constructs a builds service.
func NewService(repo buildRepository, deriver buildDeriver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("builds repository is required")
	}
	if deriver == nil {
		return nil, fmt.Errorf("configurator is required")
	}
	return &service{repo: repo, configurator: deriver}, nil
}

// Save derives the build from the tier and overrides, then persists the
// snapshot under the user's account.
func (s *service) Save(ctx context.Context, userID uuid.UUID, req SaveBuildRequest) (*BuildDTO, error) {
	derived, err := s.configurator.DeriveBuild(req.TierID, req.Overrides())
	if err != nil {
		return nil, err
	}

	build := &models.Build{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       strings.TrimSpace(req.Name),
		TierID:     derived.TierID,
		TierName:   derived.TierName,
		Components: derived.Components,
		Pricing:    derived.Pricing,
	}
	saved, err := s.repo.Create(ctx, build)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save build")
	}
	return FromModel(saved), nil
}

// List returns the user's saved builds.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]BuildDTO, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list builds")
	}
	return fromModels(items), nil
}

// Get returns one of the user's builds.
func (s *service) Get(ctx context.Context, userID, buildID uuid.UUID) (*BuildDTO, error) {
	build, err := s.ownedBuild(ctx, userID, buildID)
	if err != nil {
		return nil, err
	}
	return FromModel(build), nil
}

// Delete removes one of the user's builds.
func (s *service) Delete(ctx context.Context, userID, buildID uuid.UUID) error {
	if _, err := s.ownedBuild(ctx, userID, buildID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, buildID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete build")
	}
	return nil
}

func (s *service) ownedBuild(ctx context.Context, userID, buildID uuid.UUID) (*models.Build, error) {
	build, err := s.repo.FindByID(ctx, buildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "build not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load build")
	}
	if build.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "build belongs to another user")
	}
	return build, nil
}
