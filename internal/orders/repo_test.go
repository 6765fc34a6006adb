package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/communityexpress/laundry-client/pkg/db/models"
	"github.com/communityexpress/laundry-client/pkg/enums"
)

func setupOrderCacheDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	orders := `
CREATE TABLE IF NOT EXISTS laundry_orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  laundry_vendor_id TEXT NOT NULL,
  order_number TEXT NOT NULL,
  pickup_address TEXT NOT NULL,
  pickup_date TEXT NOT NULL,
  pickup_time_slot TEXT NOT NULL,
  pickup_instructions TEXT,
  delivery_address TEXT NOT NULL,
  delivery_instructions TEXT,
  status TEXT NOT NULL DEFAULT 'pending',
  subtotal NUMERIC NOT NULL,
  pickup_charge NUMERIC NOT NULL,
  delivery_charge NUMERIC NOT NULL,
  tax_amount NUMERIC NOT NULL,
  total_amount NUMERIC NOT NULL,
  payment_status TEXT NOT NULL DEFAULT 'pending',
  payment_method TEXT,
  payment_reference TEXT,
  confirmed_at DATETIME,
  picked_up_at DATETIME,
  ready_at DATETIME,
  delivered_at DATETIME,
  cancelled_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	items := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  laundry_item_id TEXT NOT NULL,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL,
  line_total NUMERIC NOT NULL,
  special_instructions TEXT,
  created_at DATETIME
);`

	require.NoError(t, db.Exec(orders).Error)
	require.NoError(t, db.Exec(items).Error)
	require.NoError(t, db.Exec("DELETE FROM order_items").Error)
	require.NoError(t, db.Exec("DELETE FROM laundry_orders").Error)

	return db
}

func cachedOrder(status enums.OrderStatus, createdAt time.Time) *models.LaundryOrder {
	orderID := uuid.New()
	return &models.LaundryOrder{
		ID:              orderID,
		UserID:          uuid.New(),
		LaundryVendorID: uuid.New(),
		OrderNumber:     "LDY-2026-000042",
		PickupAddress:   "12 Juniper Lane",
		PickupDate:      "2026-03-20",
		PickupTimeSlot:  enums.TimeSlot0810,
		DeliveryAddress: "12 Juniper Lane",
		Status:          status,
		Subtotal:        decimal.RequireFromString("120"),
		PickupCharge:    decimal.RequireFromString("20"),
		DeliveryCharge:  decimal.RequireFromString("30"),
		TaxAmount:       decimal.RequireFromString("30.6"),
		TotalAmount:     decimal.RequireFromString("200.6"),
		PaymentStatus:   enums.PaymentStatusPending,
		CreatedAt:       createdAt,
		Items: []models.OrderItem{
			{
				ID:            uuid.New(),
				OrderID:       orderID,
				LaundryItemID: uuid.New(),
				Name:          "Shirt",
				Category:      enums.LaundryCategoryWashFold,
				Quantity:      2,
				UnitPrice:     decimal.RequireFromString("60"),
				LineTotal:     decimal.RequireFromString("120"),
			},
		},
	}
}

func TestRepositoryUpsertAndFind(t *testing.T) {
	db := setupOrderCacheDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := cachedOrder(enums.OrderStatusPending, time.Now().UTC())
	require.NoError(t, repo.Upsert(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, found.OrderNumber)
	assert.Equal(t, enums.OrderStatusPending, found.Status)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Shirt", found.Items[0].Name)
	assert.True(t, found.TotalAmount.Equal(decimal.RequireFromString("200.6")))
}

func TestRepositoryUpsertReplacesExisting(t *testing.T) {
	db := setupOrderCacheDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := cachedOrder(enums.OrderStatusPending, time.Now().UTC())
	require.NoError(t, repo.Upsert(ctx, order))

	confirmedAt := time.Now().UTC().Truncate(time.Second)
	order.Status = enums.OrderStatusConfirmed
	order.ConfirmedAt = &confirmedAt
	require.NoError(t, repo.Upsert(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, found.Status)
	require.NotNil(t, found.ConfirmedAt)
	// Items replaced, not duplicated.
	require.Len(t, found.Items, 1)

	var count int64
	require.NoError(t, db.Model(&models.LaundryOrder{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRepositoryFindMissing(t *testing.T) {
	db := setupOrderCacheDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListNewestFirstWithFilter(t *testing.T) {
	db := setupOrderCacheDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	older := cachedOrder(enums.OrderStatusDelivered, base.Add(-2*time.Hour))
	newer := cachedOrder(enums.OrderStatusPending, base)
	require.NoError(t, repo.Upsert(ctx, older))
	require.NoError(t, repo.Upsert(ctx, newer))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)

	delivered := enums.OrderStatusDelivered
	filtered, err := repo.List(ctx, &delivered)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, older.ID, filtered[0].ID)
}
