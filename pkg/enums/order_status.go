package enums

import (
	"fmt"
	"strings"
)

// OrderStatus tracks the lifecycle of a laundry order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusInProcess OrderStatus = "in_process"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPickedUp,
	OrderStatusInProcess,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Display metadata is a static table so lookups are total: any value outside
// the table falls back to gray with a title-cased raw label.
var orderStatusLabels = map[OrderStatus]string{
	OrderStatusPending:   "Pending",
	OrderStatusConfirmed: "Confirmed",
	OrderStatusPickedUp:  "Picked Up",
	OrderStatusInProcess: "In Process",
	OrderStatusReady:     "Ready",
	OrderStatusDelivered: "Delivered",
	OrderStatusCancelled: "Cancelled",
}

var orderStatusColors = map[OrderStatus]string{
	OrderStatusPending:   "#FFA500",
	OrderStatusConfirmed: "#2196F3",
	OrderStatusPickedUp:  "#9C27B0",
	OrderStatusInProcess: "#FF9800",
	OrderStatusReady:     "#4CAF50",
	OrderStatusDelivered: "#8BC34A",
	OrderStatusCancelled: "#F44336",
}

// FallbackColor is used for any status outside the known display tables.
const FallbackColor = "#9E9E9E"

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderStatus.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (o OrderStatus) IsTerminal() bool {
	return o == OrderStatusDelivered || o == OrderStatusCancelled
}

// Label returns the display label for the status, falling back to the
// title-cased raw value for unknown input.
func (o OrderStatus) Label() string {
	if label, ok := orderStatusLabels[o]; ok {
		return label
	}
	return titleCaseRaw(string(o))
}

// Color returns the display color for the status, gray when unknown.
func (o OrderStatus) Color() string {
	if color, ok := orderStatusColors[o]; ok {
		return color
	}
	return FallbackColor
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}

func titleCaseRaw(value string) string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
