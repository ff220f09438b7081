package ports

import (
	"context"
	"time"

	"github.com/skyparcel/admin-api/internal/core/domain"
)

// ListShipmentsInput carries the console's filter state. Both filters apply
// together: a row must match the search text and the status selection.
type ListShipmentsInput struct {
	// Search is matched case-insensitively as a substring of the tracking
	// number, pickup location, delivery location, or document id.
	Search string
	// Status narrows the list to one status. Empty or "all" means no filter.
	Status string
}

// ShipmentRow is the display projection for one table row.
type ShipmentRow struct {
	ID             string
	TrackingNumber string
	Status         string
	StatusDisplay  domain.StatusDisplay
	RouteSummary   string
	TotalWeight    string // e.g. "19.5 kg"
	UpdatedAt      time.Time
	UpdatedDate    string
	UpdatedTime    string
}

// ListShipmentsResult is returned by ListShipments.
type ListShipmentsResult struct {
	Items []ShipmentRow
	Total int
}

// UpdateStatusInput carries a requested status transition.
type UpdateStatusInput struct {
	ID     string
	Status string
	Notes  string
}

// StatusUpdateResult echoes the applied patch so the console can merge it
// into its local list without refetching. UpdatedAt is the service clock's
// approximation of the database server timestamp.
type StatusUpdateResult struct {
	ID             string
	Status         string
	PreviousStatus string
	TrackingNumber string
	Notes          string
	UpdatedAt      time.Time
}

// ShipmentService defines the console's use-case operations.
type ShipmentService interface {
	ListShipments(ctx context.Context, input ListShipmentsInput) (*ListShipmentsResult, error)
	GetShipment(ctx context.Context, id string) (*domain.Shipment, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*StatusUpdateResult, error)
}
