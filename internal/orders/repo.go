package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/communityexpress/laundry-client/pkg/db/models"
	"github.com/communityexpress/laundry-client/pkg/enums"
)

// Repository mirrors fetched orders into the local store so the order list
// stays readable offline.
type Repository interface {
	Upsert(ctx context.Context, order *models.LaundryOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.LaundryOrder, error)
	List(ctx context.Context, status *enums.OrderStatus) ([]models.LaundryOrder, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds the order cache repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, order *models.LaundryOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		stripped := *order
		stripped.Items = nil

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&stripped).Error; err != nil {
			return err
		}

		// Order items are immutable snapshots; replace wholesale.
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].OrderID = order.ID
			if items[i].ID == uuid.Nil {
				items[i].ID = uuid.New()
			}
		}
		return tx.Create(&items).Error
	})
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.LaundryOrder, error) {
	var order models.LaundryOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) List(ctx context.Context, status *enums.OrderStatus) ([]models.LaundryOrder, error) {
	query := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var out []models.LaundryOrder
	if err := query.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
