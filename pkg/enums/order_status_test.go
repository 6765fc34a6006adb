package enums

import "testing"

func TestOrderStatusDisplayIsTotal(t *testing.T) {
	for _, status := range validOrderStatuses {
		if status.Color() == FallbackColor {
			t.Fatalf("known status %s should have a dedicated color", status)
		}
		if status.Label() == "" {
			t.Fatalf("known status %s should have a label", status)
		}
	}

	unknown := OrderStatus("quality_check")
	if unknown.Color() != FallbackColor {
		t.Fatalf("unknown status should map to the fallback color, got %s", unknown.Color())
	}
	if unknown.Label() != "Quality Check" {
		t.Fatalf("unknown status should title-case the raw value, got %q", unknown.Label())
	}
	if OrderStatus("").Label() != "" {
		t.Fatalf("empty status should yield an empty label")
	}
}

func TestOrderStatusExpectedLabels(t *testing.T) {
	tests := map[OrderStatus]string{
		OrderStatusPending:   "Pending",
		OrderStatusConfirmed: "Confirmed",
		OrderStatusPickedUp:  "Picked Up",
		OrderStatusInProcess: "In Process",
		OrderStatusReady:     "Ready",
		OrderStatusDelivered: "Delivered",
		OrderStatusCancelled: "Cancelled",
	}
	for status, want := range tests {
		if got := status.Label(); got != want {
			t.Fatalf("status %s label = %q, want %q", status, got, want)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, status := range validOrderStatuses {
		terminal := status == OrderStatusDelivered || status == OrderStatusCancelled
		if status.IsTerminal() != terminal {
			t.Fatalf("status %s terminal = %v, want %v", status, status.IsTerminal(), terminal)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	if parsed, err := ParseOrderStatus("picked_up"); err != nil || parsed != OrderStatusPickedUp {
		t.Fatalf("expected picked_up to parse, got %v %v", parsed, err)
	}
	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Fatalf("unknown status should not parse")
	}
}
