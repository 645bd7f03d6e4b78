package model

import "testing"

func TestOrderDeliveryStatusView(t *testing.T) {
	cases := []struct {
		status OrderStatus
		want   DeliveryStatus
	}{
		{OrderStatusPending, DeliveryStatusPending},
		{OrderStatusConfirmed, DeliveryStatusPending},
		{OrderStatusProcessing, DeliveryStatusPending},
		{OrderStatusShipped, DeliveryStatusInTransit},
		{OrderStatusDelivered, DeliveryStatusDelivered},
		{OrderStatusCancelled, DeliveryStatusFailed},
		{OrderStatusRefunded, DeliveryStatusPending},
	}

	for _, tc := range cases {
		order := Order{Status: tc.status}
		if got := order.DeliveryStatus(); got != tc.want {
			t.Fatalf("status %q: expected delivery %q, got %q", tc.status, tc.want, got)
		}
	}
}

func TestValidPaymentStatus(t *testing.T) {
	valid := []PaymentStatus{
		PaymentStatusPending,
		PaymentStatusPaid,
		PaymentStatusFailed,
		PaymentStatusRefunded,
		PaymentStatusPartiallyRefunded,
	}
	for _, s := range valid {
		if !ValidPaymentStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidPaymentStatus("approved") {
		t.Fatal("expected gateway vocabulary to be rejected")
	}
}

func TestValidDeliveryStatus(t *testing.T) {
	valid := []DeliveryStatus{
		DeliveryStatusPending,
		DeliveryStatusInTransit,
		DeliveryStatusDelivered,
		DeliveryStatusFailed,
	}
	for _, s := range valid {
		if !ValidDeliveryStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidDeliveryStatus("shipped") {
		t.Fatal("expected order vocabulary to be rejected")
	}
}

func TestProductLowStock(t *testing.T) {
	p := Product{StockQuantity: 3, LowStockThreshold: 5}
	if !p.LowStock() {
		t.Fatal("expected low stock below threshold")
	}
	p.StockQuantity = 5
	if !p.LowStock() {
		t.Fatal("expected low stock at threshold")
	}
	p.StockQuantity = 6
	if p.LowStock() {
		t.Fatal("expected regular stock above threshold")
	}
}
