package orders

import (
	"time"

	"github.com/communityexpress/laundry-client/pkg/db/models"
	"github.com/communityexpress/laundry-client/pkg/enums"
)

// legalNext is the forward transition table. Cancellation is handled
// separately: it jumps straight to cancelled from an early state.
var legalNext = map[enums.OrderStatus][]enums.OrderStatus{
	enums.OrderStatusPending:   {enums.OrderStatusConfirmed, enums.OrderStatusCancelled},
	enums.OrderStatusConfirmed: {enums.OrderStatusPickedUp, enums.OrderStatusCancelled},
	enums.OrderStatusPickedUp:  {enums.OrderStatusInProcess},
	enums.OrderStatusInProcess: {enums.OrderStatusReady},
	enums.OrderStatusReady:     {enums.OrderStatusDelivered},
	enums.OrderStatusDelivered: {},
	enums.OrderStatusCancelled: {},
}

// cancellableStatuses are the only states cancel may leave from.
var cancellableStatuses = map[enums.OrderStatus]struct{}{
	enums.OrderStatusPending:   {},
	enums.OrderStatusConfirmed: {},
}

// CanTransition reports whether moving from one status to the next is legal.
func CanTransition(from, to enums.OrderStatus) bool {
	for _, candidate := range legalNext[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the legal successors of a status.
func NextStatuses(from enums.OrderStatus) []enums.OrderStatus {
	next := legalNext[from]
	out := make([]enums.OrderStatus, len(next))
	copy(out, next)
	return out
}

// CanCancel reports whether an order in the given status may be cancelled.
func CanCancel(status enums.OrderStatus) bool {
	_, ok := cancellableStatuses[status]
	return ok
}

// milestoneAt returns the recorded timestamp for the status milestone.
func milestoneAt(order *models.LaundryOrder, status enums.OrderStatus) *time.Time {
	switch status {
	case enums.OrderStatusConfirmed:
		return order.ConfirmedAt
	case enums.OrderStatusPickedUp:
		return order.PickedUpAt
	case enums.OrderStatusReady:
		return order.ReadyAt
	case enums.OrderStatusDelivered:
		return order.DeliveredAt
	case enums.OrderStatusCancelled:
		return order.CancelledAt
	default:
		return nil
	}
}

// stampMilestone records when the order entered the status, keeping any
// server-provided value.
func stampMilestone(order *models.LaundryOrder, status enums.OrderStatus, at time.Time) {
	if milestoneAt(order, status) != nil {
		return
	}
	switch status {
	case enums.OrderStatusConfirmed:
		order.ConfirmedAt = &at
	case enums.OrderStatusPickedUp:
		order.PickedUpAt = &at
	case enums.OrderStatusReady:
		order.ReadyAt = &at
	case enums.OrderStatusDelivered:
		order.DeliveredAt = &at
	case enums.OrderStatusCancelled:
		order.CancelledAt = &at
	}
}
