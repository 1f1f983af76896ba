package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/honestpc/honestpc-backend/pkg/db/models"
	"github.com/honestpc/honestpc-backend/pkg/enums"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

// Repository defines persistence operations for orders.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	NextOrderNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	List(ctx context.Context, status *enums.OrderStatus) ([]models.Order, error)
	AdvanceStatus(ctx context.Context, id uuid.UUID, from, to enums.OrderStatus, history types.StatusHistory) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// NextOrderNumber allocates the next monotonic order number. Call inside
// the creation transaction; the unique index on order_number turns a
// racing allocation into a retriable insert failure.
func (r *repository) NextOrderNumber(ctx context.Context) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(MAX(order_number), 0) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var items []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) List(ctx context.Context, status *enums.OrderStatus) ([]models.Order, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var items []models.Order
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AdvanceStatus performs the compare-and-swap transition: the row only
// moves when its current status still matches `from`. Returns the number
// of rows updated; zero means a concurrent writer won. The update goes
// through a struct so the json serializer handles status_history; a map
// update would hand the slice to database/sql raw.
func (r *repository) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to enums.OrderStatus, history types.StatusHistory) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Select("status", "status_history").
		Updates(&models.Order{Status: to, StatusHistory: history})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
