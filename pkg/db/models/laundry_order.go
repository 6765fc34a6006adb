package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/communityexpress/laundry-client/pkg/enums"
)

// LaundryOrder is the durable order aggregate as served by the remote API
// and mirrored into the local cache.
type LaundryOrder struct {
	ID                   uuid.UUID            `json:"id" gorm:"column:id;type:text;primaryKey"`
	UserID               uuid.UUID            `json:"user_id" gorm:"column:user_id;type:text;not null"`
	LaundryVendorID      uuid.UUID            `json:"laundry_vendor_id" gorm:"column:laundry_vendor_id;type:text;not null"`
	OrderNumber          string               `json:"order_number" gorm:"column:order_number;not null"`
	PickupAddress        string               `json:"pickup_address" gorm:"column:pickup_address;not null"`
	PickupDate           string               `json:"pickup_date" gorm:"column:pickup_date;not null"`
	PickupTimeSlot       enums.TimeSlot       `json:"pickup_time_slot" gorm:"column:pickup_time_slot;type:text;not null"`
	PickupInstructions   *string              `json:"pickup_instructions,omitempty" gorm:"column:pickup_instructions"`
	DeliveryAddress      string               `json:"delivery_address" gorm:"column:delivery_address;not null"`
	DeliveryInstructions *string              `json:"delivery_instructions,omitempty" gorm:"column:delivery_instructions"`
	Status               enums.OrderStatus    `json:"status" gorm:"column:status;type:text;not null;default:'pending'"`
	Subtotal             decimal.Decimal      `json:"subtotal" gorm:"column:subtotal;type:numeric;not null"`
	PickupCharge         decimal.Decimal      `json:"pickup_charge" gorm:"column:pickup_charge;type:numeric;not null"`
	DeliveryCharge       decimal.Decimal      `json:"delivery_charge" gorm:"column:delivery_charge;type:numeric;not null"`
	TaxAmount            decimal.Decimal      `json:"tax_amount" gorm:"column:tax_amount;type:numeric;not null"`
	TotalAmount          decimal.Decimal      `json:"total_amount" gorm:"column:total_amount;type:numeric;not null"`
	PaymentStatus        enums.PaymentStatus  `json:"payment_status" gorm:"column:payment_status;type:text;not null;default:'pending'"`
	PaymentMethod        *enums.PaymentMethod `json:"payment_method,omitempty" gorm:"column:payment_method;type:text"`
	PaymentReference     *string              `json:"payment_reference,omitempty" gorm:"column:payment_reference"`
	ConfirmedAt          *time.Time           `json:"confirmed_at,omitempty" gorm:"column:confirmed_at"`
	PickedUpAt           *time.Time           `json:"picked_up_at,omitempty" gorm:"column:picked_up_at"`
	ReadyAt              *time.Time           `json:"ready_at,omitempty" gorm:"column:ready_at"`
	DeliveredAt          *time.Time           `json:"delivered_at,omitempty" gorm:"column:delivered_at"`
	CancelledAt          *time.Time           `json:"cancelled_at,omitempty" gorm:"column:cancelled_at"`
	Items                []OrderItem          `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time            `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time            `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (LaundryOrder) TableName() string {
	return "laundry_orders"
}
