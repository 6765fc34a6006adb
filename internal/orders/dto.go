package orders

import (
	"github.com/google/uuid"

	"github.com/communityexpress/laundry-client/pkg/enums"
)

// BookingInput carries the pickup/delivery metadata collected from the
// booking screen. Delivery address defaults to the pickup address.
type BookingInput struct {
	PickupAddress        string         `validate:"required"`
	PickupDate           string         `validate:"required,datetime=2006-01-02"`
	PickupTimeSlot       enums.TimeSlot `validate:"required"`
	PickupInstructions   *string        `validate:"-"`
	DeliveryAddress      string         `validate:"-"`
	DeliveryInstructions *string        `validate:"-"`
}

// createOrderRequest is the POST /laundry/orders body.
type createOrderRequest struct {
	LaundryVendorID      uuid.UUID          `json:"laundry_vendor_id"`
	PickupAddress        string             `json:"pickup_address"`
	PickupDate           string             `json:"pickup_date"`
	PickupTimeSlot       enums.TimeSlot     `json:"pickup_time_slot"`
	PickupInstructions   *string            `json:"pickup_instructions,omitempty"`
	DeliveryAddress      string             `json:"delivery_address,omitempty"`
	DeliveryInstructions *string            `json:"delivery_instructions,omitempty"`
	Items                []createOrderItem `json:"items"`
}

type createOrderItem struct {
	LaundryItemID       uuid.UUID `json:"laundry_item_id"`
	Quantity            int       `json:"quantity"`
	SpecialInstructions *string   `json:"special_instructions,omitempty"`
}

// updateOrderRequest is the PUT /laundry/orders/{id} body, used for both
// advancing and cancelling.
type updateOrderRequest struct {
	Status enums.OrderStatus `json:"status"`
}

// paymentRequest is the POST /laundry/orders/{id}/payment body.
type paymentRequest struct {
	PaymentMethod    enums.PaymentMethod `json:"payment_method"`
	PaymentReference *string             `json:"payment_reference,omitempty"`
}

// PaymentResult is the payment endpoint response.
type PaymentResult struct {
	Success          bool   `json:"success"`
	PaymentReference string `json:"payment_reference"`
	Message          string `json:"message"`
}

// ListFilter narrows the remote order listing. Owner scope (customer vs
// vendor) is determined by the bearer token, not by a parameter.
type ListFilter struct {
	Status *enums.OrderStatus
}
