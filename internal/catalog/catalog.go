package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/communityexpress/laundry-client/pkg/enums"
)

// LaundryVendor describes a vendor's booking parameters. Vendors are
// managed elsewhere; the order flow only reads them.
type LaundryVendor struct {
	ID                 uuid.UUID       `json:"id"`
	BusinessName       string          `json:"business_name"`
	PickupWindowStart  string          `json:"pickup_window_start"`
	PickupWindowEnd    string          `json:"pickup_window_end"`
	DeliveryLeadHours  int             `json:"delivery_lead_hours"`
	MinimumOrderAmount decimal.Decimal `json:"minimum_order_amount"`
	PickupCharge       decimal.Decimal `json:"pickup_charge"`
	DeliveryCharge     decimal.Decimal `json:"delivery_charge"`
	IsActive           bool            `json:"is_active"`
}

// LaundryItem is a priced catalog entry belonging to one vendor.
type LaundryItem struct {
	ID              uuid.UUID             `json:"id"`
	LaundryVendorID uuid.UUID             `json:"laundry_vendor_id"`
	Name            string                `json:"name"`
	Category        enums.LaundryCategory `json:"category"`
	PricePerPiece   decimal.Decimal       `json:"price_per_piece"`
	TurnaroundHours int                   `json:"estimated_turnaround_hours"`
	IsAvailable     bool                  `json:"is_available"`
}
