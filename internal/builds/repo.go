package builds

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/honestpc/honestpc-backend/pkg/db/models"
)

// Repository exposes saved-build persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a builds repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repo bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts the build and returns the persisted model.
func (r *Repository) Create(ctx context.Context, build *models.Build) (*models.Build, error) {
	if err := r.db.WithContext(ctx).Create(build).Error; err != nil {
		return nil, err
	}
	return build, nil
}

// FindByID loads a build by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Build, error) {
	var build models.Build
	if err := r.db.WithContext(ctx).First(&build, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &build, nil
}

// ListByUser returns the user's saved builds, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Build, error) {
	var items []models.Build
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes the build.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Build{}, "id = ?", id).Error
}
