package domain

import (
	"testing"
	"time"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ShipmentStatus
		to   ShipmentStatus
		want bool
	}{
		{"quote ready to paid", StatusQuoteReady, StatusPaid, true},
		{"paid to in transit", StatusPaid, StatusInTransit, true},
		{"in transit to out for delivery", StatusInTransit, StatusOutForDelivery, true},
		{"in transit to delivered", StatusInTransit, StatusDelivered, true},
		{"out for delivery to delivered", StatusOutForDelivery, StatusDelivered, true},
		{"quote ready cannot skip to in transit", StatusQuoteReady, StatusInTransit, false},
		{"paid cannot go back to quote ready", StatusPaid, StatusQuoteReady, false},
		{"delivered is terminal", StatusDelivered, StatusInTransit, false},
		{"no self transition", StatusPaid, StatusPaid, false},
		{"unknown status has no transitions", ShipmentStatus("archived"), StatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestKnown(t *testing.T) {
	for _, s := range []ShipmentStatus{StatusQuoteReady, StatusPaid, StatusInTransit, StatusOutForDelivery, StatusDelivered} {
		if !s.Known() {
			t.Errorf("expected %s to be a known status", s)
		}
	}
	if ShipmentStatus("archived").Known() {
		t.Error("expected archived to be unknown")
	}
	if ShipmentStatus("").Known() {
		t.Error("expected empty status to be unknown")
	}
}

func TestActiveStatusesExcludeDelivered(t *testing.T) {
	for _, s := range ActiveStatuses {
		if s == StatusDelivered {
			t.Fatal("delivered must not appear in the active status set")
		}
	}
	if len(ActiveStatuses) != 4 {
		t.Errorf("expected 4 active statuses, got %d", len(ActiveStatuses))
	}
}

func TestEffectiveUpdatedAt(t *testing.T) {
	now := time.Date(2026, 2, 19, 15, 4, 0, 0, time.UTC)
	created := now.Add(-48 * time.Hour)
	updated := now.Add(-time.Hour)

	sh := &Shipment{CreatedAt: created, UpdatedAt: updated}
	if got := sh.EffectiveUpdatedAt(now); !got.Equal(updated) {
		t.Errorf("expected updated_at %v, got %v", updated, got)
	}

	sh = &Shipment{CreatedAt: created}
	if got := sh.EffectiveUpdatedAt(now); !got.Equal(created) {
		t.Errorf("expected created_at fallback %v, got %v", created, got)
	}

	sh = &Shipment{}
	if got := sh.EffectiveUpdatedAt(now); !got.Equal(now) {
		t.Errorf("expected now fallback %v, got %v", now, got)
	}
}
