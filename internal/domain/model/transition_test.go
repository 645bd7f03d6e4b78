package model

import "testing"

func TestDeriveOrderStatusPaymentEvents(t *testing.T) {
	cases := []struct {
		value string
		want  OrderStatus
		ok    bool
	}{
		{"paid", OrderStatusConfirmed, true},
		{"failed", OrderStatusCancelled, true},
		{"refunded", OrderStatusRefunded, true},
		{"pending", "", false},
		{"partially_refunded", "", false},
		{"garbage", "", false},
	}

	for _, tc := range cases {
		got, ok := DeriveOrderStatus(StatusEvent{Kind: EventPayment, Value: tc.value})
		if ok != tc.ok {
			t.Fatalf("payment %q: expected ok=%v, got %v", tc.value, tc.ok, ok)
		}
		if ok && got != tc.want {
			t.Fatalf("payment %q: expected %q, got %q", tc.value, tc.want, got)
		}
	}
}

func TestDeriveOrderStatusDeliveryEvents(t *testing.T) {
	cases := []struct {
		value string
		want  OrderStatus
		ok    bool
	}{
		{"in_transit", OrderStatusShipped, true},
		{"delivered", OrderStatusDelivered, true},
		{"failed", OrderStatusCancelled, true},
		{"pending", "", false},
		{"garbage", "", false},
	}

	for _, tc := range cases {
		got, ok := DeriveOrderStatus(StatusEvent{Kind: EventDelivery, Value: tc.value})
		if ok != tc.ok {
			t.Fatalf("delivery %q: expected ok=%v, got %v", tc.value, tc.ok, ok)
		}
		if ok && got != tc.want {
			t.Fatalf("delivery %q: expected %q, got %q", tc.value, tc.want, got)
		}
	}
}

func TestDeriveOrderStatusUnknownKind(t *testing.T) {
	if _, ok := DeriveOrderStatus(StatusEvent{Kind: "inventory", Value: "paid"}); ok {
		t.Fatal("expected unknown event kind to be ignored")
	}
}
