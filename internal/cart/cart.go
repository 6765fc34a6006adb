package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/communityexpress/laundry-client/internal/catalog"
)

// TaxRate is the flat rate applied on top of subtotal plus fixed charges.
var TaxRate = decimal.RequireFromString("0.18")

// Line is one selected item with its quantity and optional note.
type Line struct {
	Item         catalog.LaundryItem
	Quantity     int
	Instructions string
}

// LineTotal returns quantity times the unit price.
func (l Line) LineTotal() decimal.Decimal {
	return l.Item.PricePerPiece.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals is the monetary breakdown for the current cart contents.
type Totals struct {
	Subtotal       decimal.Decimal
	PickupCharge   decimal.Decimal
	DeliveryCharge decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// Cart accumulates selected items for one booking session. It holds no
// network or storage state and is owned by a single screen flow.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem inserts a line for the item, or bumps the quantity when the item
// is already present. Quantities below one count as one.
func (c *Cart) AddItem(item catalog.LaundryItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: quantity})
}

// UpdateQuantity replaces the stored quantity; zero or below removes the line.
func (c *Cart) UpdateQuantity(itemID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the line; removing an absent item is a no-op.
func (c *Cart) RemoveItem(itemID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetInstructions attaches the free-text note to a line; no-op when the
// item is not in the cart.
func (c *Cart) SetInstructions(itemID uuid.UUID, text string) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Instructions = text
			return
		}
	}
}

// Lines returns the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether no lines are present.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Quantity returns the stored quantity for the item, zero when absent.
func (c *Cart) Quantity(itemID uuid.UUID) int {
	for _, line := range c.lines {
		if line.Item.ID == itemID {
			return line.Quantity
		}
	}
	return 0
}

// Totals computes the breakdown against the vendor's fixed charges. It is
// pure over current cart state; an empty cart yields all zeros.
func (c *Cart) Totals(vendor catalog.LaundryVendor) Totals {
	if c.IsEmpty() {
		return Totals{
			Subtotal:       decimal.Zero,
			PickupCharge:   decimal.Zero,
			DeliveryCharge: decimal.Zero,
			TaxAmount:      decimal.Zero,
			Total:          decimal.Zero,
		}
	}

	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.LineTotal())
	}

	taxable := subtotal.Add(vendor.PickupCharge).Add(vendor.DeliveryCharge)
	tax := taxable.Mul(TaxRate).Round(2)

	return Totals{
		Subtotal:       subtotal,
		PickupCharge:   vendor.PickupCharge,
		DeliveryCharge: vendor.DeliveryCharge,
		TaxAmount:      tax,
		Total:          taxable.Add(tax),
	}
}

// CanCheckout reports whether the cart is non-empty and the total clears
// the vendor's minimum order amount.
func (c *Cart) CanCheckout(vendor catalog.LaundryVendor) bool {
	if c.IsEmpty() {
		return false
	}
	return c.Totals(vendor).Total.GreaterThanOrEqual(vendor.MinimumOrderAmount)
}
