package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/communityexpress/laundry-client/pkg/enums"
)

// OrderItem is an immutable snapshot of a cart line taken at order creation.
// Later catalog edits never touch it.
type OrderItem struct {
	ID                  uuid.UUID             `json:"id" gorm:"column:id;type:text;primaryKey"`
	OrderID             uuid.UUID             `json:"order_id" gorm:"column:order_id;type:text;not null"`
	LaundryItemID       uuid.UUID             `json:"laundry_item_id" gorm:"column:laundry_item_id;type:text;not null"`
	Name                string                `json:"name" gorm:"column:name;not null"`
	Category            enums.LaundryCategory `json:"category" gorm:"column:category;type:text;not null"`
	Quantity            int                   `json:"quantity" gorm:"column:quantity;not null"`
	UnitPrice           decimal.Decimal       `json:"unit_price" gorm:"column:unit_price;type:numeric;not null"`
	LineTotal           decimal.Decimal       `json:"line_total" gorm:"column:line_total;type:numeric;not null"`
	SpecialInstructions *string               `json:"special_instructions,omitempty" gorm:"column:special_instructions"`
	CreatedAt           time.Time             `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
