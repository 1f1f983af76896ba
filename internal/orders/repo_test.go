package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/honestpc/honestpc-backend/pkg/db/models"
	"github.com/honestpc/honestpc-backend/pkg/enums"
	"github.com/honestpc/honestpc-backend/pkg/types"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ordersDDL := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  user_email TEXT NOT NULL,
  user_name TEXT NOT NULL,
  build_id TEXT,
  tier_id TEXT NOT NULL,
  tier_name TEXT NOT NULL,
  components TEXT NOT NULL,
  pricing TEXT NOT NULL,
  shipping_address TEXT NOT NULL,
  phone TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  order_number INTEGER NOT NULL UNIQUE,
  order_ref TEXT NOT NULL UNIQUE,
  status_history TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ordersDDL).Error)
	require.NoError(t, db.Exec("DELETE FROM orders").Error)

	return db
}

func fixtureOrder(userID uuid.UUID, number int64, status enums.OrderStatus) *models.Order {
	placedAt := time.Now().UTC().Add(-time.Duration(number) * time.Minute)
	return &models.Order{
		ID:        uuid.New(),
		UserID:    userID,
		UserEmail: "buyer@example.com",
		UserName:  "Buyer",
		TierID:    "entry_student",
		TierName:  "Student Essentials",
		Components: types.ComponentList{
			{ID: "cpu_i3", Type: enums.ComponentTypeCPU, Name: "Intel Core i3-12100F", Price: 8500, IsLocked: true},
		},
		Pricing: types.Pricing{PartsTotal: 8500, AssemblyFee: 999, Subtotal: 9499},
		ShippingAddress: types.Address{
			Street: "12 MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "560001",
		},
		Phone:       "9876543210",
		Status:      status,
		OrderNumber: number,
		OrderRef:    FormatOrderRef(placedAt.Year(), number),
		StatusHistory: types.StatusHistory{{
			Status:    enums.OrderStatusPending,
			Timestamp: placedAt,
			Note:      orderPlacedNote,
		}},
		CreatedAt: placedAt,
	}
}

func TestNextOrderNumberStartsAtOneAndIncrements(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	next, err := repo.NextOrderNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)

	_, err = repo.Create(ctx, fixtureOrder(uuid.New(), 1, enums.OrderStatusPending))
	require.NoError(t, err)
	_, err = repo.Create(ctx, fixtureOrder(uuid.New(), 7, enums.OrderStatusPending))
	require.NoError(t, err)

	next, err = repo.NextOrderNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), next)
}

func TestCreateRejectsDuplicateOrderNumber(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, fixtureOrder(uuid.New(), 42, enums.OrderStatusPending))
	require.NoError(t, err)

	_, err = repo.Create(ctx, fixtureOrder(uuid.New(), 42, enums.OrderStatusPending))
	assert.Error(t, err)
}

func TestFindByIDRoundTripsSnapshots(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, fixtureOrder(uuid.New(), 1, enums.OrderStatusPending))
	require.NoError(t, err)

	loaded, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, saved.OrderRef, loaded.OrderRef)
	require.Len(t, loaded.Components, 1)
	assert.Equal(t, "cpu_i3", loaded.Components[0].ID)
	assert.Equal(t, "Bengaluru", loaded.ShippingAddress.City)
	require.Len(t, loaded.StatusHistory, 1)
	assert.Equal(t, orderPlacedNote, loaded.StatusHistory[0].Note)
}

func TestListByUserNewestFirst(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	// Higher fixture numbers are older.
	for _, n := range []int64{3, 1, 2} {
		_, err := repo.Create(ctx, fixtureOrder(userID, n, enums.OrderStatusPending))
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, fixtureOrder(uuid.New(), 9, enums.OrderStatusPending))
	require.NoError(t, err)

	items, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(1), items[0].OrderNumber)
	assert.Equal(t, int64(2), items[1].OrderNumber)
	assert.Equal(t, int64(3), items[2].OrderNumber)
}

func TestListFiltersByStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, fixtureOrder(uuid.New(), 1, enums.OrderStatusPending))
	require.NoError(t, err)
	_, err = repo.Create(ctx, fixtureOrder(uuid.New(), 2, enums.OrderStatusShipped))
	require.NoError(t, err)
	_, err = repo.Create(ctx, fixtureOrder(uuid.New(), 3, enums.OrderStatusShipped))
	require.NoError(t, err)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	shipped := enums.OrderStatusShipped
	filtered, err := repo.List(ctx, &shipped)
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
	for _, o := range filtered {
		assert.Equal(t, enums.OrderStatusShipped, o.Status)
	}
}

func TestAdvanceStatusCompareAndSwap(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, fixtureOrder(uuid.New(), 1, enums.OrderStatusPending))
	require.NoError(t, err)

	history := saved.StatusHistory.Append(types.StatusHistoryEntry{
		Status:    enums.OrderStatusConfirmed,
		Timestamp: time.Now().UTC(),
		Note:      "Status updated to Confirmed",
	})

	affected, err := repo.AdvanceStatus(ctx, saved.ID, enums.OrderStatusPending, enums.OrderStatusConfirmed, history)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// A second writer holding the stale pending status loses the race.
	affected, err = repo.AdvanceStatus(ctx, saved.ID, enums.OrderStatusPending, enums.OrderStatusConfirmed, history)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	loaded, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, loaded.Status)
	require.Len(t, loaded.StatusHistory, 2)
	assert.Equal(t, enums.OrderStatusConfirmed, loaded.StatusHistory[1].Status)
	assert.Equal(t, "Status updated to Confirmed", loaded.StatusHistory[1].Note)
}
