package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/communityexpress/laundry-client/internal/catalog"
	"github.com/communityexpress/laundry-client/pkg/enums"
)

func testItem(name string, price string) catalog.LaundryItem {
	return catalog.LaundryItem{
		ID:            uuid.New(),
		Name:          name,
		Category:      enums.LaundryCategoryWash,
		PricePerPiece: decimal.RequireFromString(price),
		IsAvailable:   true,
	}
}

func testVendor(pickup, delivery, minimum string) catalog.LaundryVendor {
	return catalog.LaundryVendor{
		ID:                 uuid.New(),
		BusinessName:       "Fresh Fold",
		PickupCharge:       decimal.RequireFromString(pickup),
		DeliveryCharge:     decimal.RequireFromString(delivery),
		MinimumOrderAmount: decimal.RequireFromString(minimum),
		IsActive:           true,
	}
}

func TestAddItemMergesExistingLine(t *testing.T) {
	t.Parallel()

	c := New()
	shirt := testItem("Shirt", "20")
	c.AddItem(shirt, 2)
	c.AddItem(shirt, 3)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(testItem("Towel", "10"), 0)
	if got := c.Lines()[0].Quantity; got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	t.Parallel()

	c := New()
	shirt := testItem("Shirt", "20")
	c.AddItem(shirt, 2)

	c.UpdateQuantity(shirt.ID, 0)
	if !c.IsEmpty() {
		t.Fatalf("quantity zero should remove the line")
	}

	// removing again must stay a no-op
	c.RemoveItem(shirt.ID)
	c.RemoveItem(shirt.ID)
	if !c.IsEmpty() {
		t.Fatalf("double remove changed state")
	}
}

func TestUpdateQuantityReplacesValue(t *testing.T) {
	t.Parallel()

	c := New()
	shirt := testItem("Shirt", "20")
	c.AddItem(shirt, 2)
	c.UpdateQuantity(shirt.ID, 7)
	if got := c.Quantity(shirt.ID); got != 7 {
		t.Fatalf("expected quantity 7, got %d", got)
	}
}

func TestSetInstructions(t *testing.T) {
	t.Parallel()

	c := New()
	shirt := testItem("Shirt", "20")
	c.AddItem(shirt, 1)

	c.SetInstructions(shirt.ID, "no starch")
	if got := c.Lines()[0].Instructions; got != "no starch" {
		t.Fatalf("instructions not stored, got %q", got)
	}

	// absent item is a no-op
	c.SetInstructions(uuid.New(), "ignored")
	if len(c.Lines()) != 1 {
		t.Fatalf("set on absent item should not add a line")
	}
}

func TestTotalsEmptyCartIsAllZero(t *testing.T) {
	t.Parallel()

	c := New()
	totals := c.Totals(testVendor("10", "5", "50"))
	for name, value := range map[string]decimal.Decimal{
		"subtotal": totals.Subtotal,
		"pickup":   totals.PickupCharge,
		"delivery": totals.DeliveryCharge,
		"tax":      totals.TaxAmount,
		"total":    totals.Total,
	} {
		if !value.IsZero() {
			t.Fatalf("%s should be zero for an empty cart, got %s", name, value)
		}
	}
	if c.CanCheckout(testVendor("0", "0", "0")) {
		t.Fatalf("empty cart can never check out")
	}
}

func TestTotalsBreakdown(t *testing.T) {
	t.Parallel()

	// Shirt 20 x 3 with pickup 10, delivery 0: tax = (60+10)*0.18 = 12.6
	c := New()
	c.AddItem(testItem("Shirt", "20"), 3)
	vendor := testVendor("10", "0", "50")

	totals := c.Totals(vendor)
	if !totals.Subtotal.Equal(decimal.RequireFromString("60")) {
		t.Fatalf("subtotal = %s, want 60", totals.Subtotal)
	}
	if !totals.TaxAmount.Equal(decimal.RequireFromString("12.6")) {
		t.Fatalf("tax = %s, want 12.6", totals.TaxAmount)
	}
	if !totals.Total.Equal(decimal.RequireFromString("82.6")) {
		t.Fatalf("total = %s, want 82.6", totals.Total)
	}
	if !totals.Total.Equal(totals.Subtotal.Add(totals.PickupCharge).Add(totals.DeliveryCharge).Add(totals.TaxAmount)) {
		t.Fatalf("total must equal the sum of its parts")
	}

	if !c.CanCheckout(vendor) {
		t.Fatalf("82.6 should clear a minimum of 50")
	}
	if c.CanCheckout(testVendor("10", "0", "100")) {
		t.Fatalf("82.6 should not clear a minimum of 100")
	}
}

func TestTotalsNoRoundingDriftAcrossMutations(t *testing.T) {
	t.Parallel()

	c := New()
	kurta := testItem("Kurta", "33.33")
	saree := testItem("Saree", "14.99")
	c.AddItem(kurta, 3)
	c.AddItem(saree, 7)
	c.RemoveItem(saree.ID)
	c.AddItem(saree, 7)
	c.UpdateQuantity(kurta.ID, 3)

	totals := c.Totals(testVendor("0", "0", "0"))
	want := decimal.RequireFromString("33.33").Mul(decimal.NewFromInt(3)).
		Add(decimal.RequireFromString("14.99").Mul(decimal.NewFromInt(7)))
	if !totals.Subtotal.Equal(want) {
		t.Fatalf("subtotal drifted: %s != %s", totals.Subtotal, want)
	}
}

func TestTotalsRecomputedAfterEveryMutation(t *testing.T) {
	t.Parallel()

	c := New()
	shirt := testItem("Shirt", "20")
	vendor := testVendor("0", "0", "0")

	c.AddItem(shirt, 1)
	first := c.Totals(vendor)
	c.AddItem(shirt, 1)
	second := c.Totals(vendor)

	if !second.Subtotal.Equal(first.Subtotal.Mul(decimal.NewFromInt(2))) {
		t.Fatalf("totals must track mutations: %s then %s", first.Subtotal, second.Subtotal)
	}
}

func TestCheckoutAtExactMinimum(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(testItem("Shirt", "20"), 3)
	// total is exactly 82.6
	if !c.CanCheckout(testVendor("10", "0", "82.6")) {
		t.Fatalf("a total equal to the minimum should allow checkout")
	}
}
