package ports

import (
	"context"

	"github.com/skyparcel/admin-api/internal/core/domain"
)

// StatusPatch is the partial update applied to a shipment document on a
// status transition. Empty TrackingNumber and Notes leave the stored fields
// untouched; updated_at is always stamped by the database server clock.
type StatusPatch struct {
	Status         domain.ShipmentStatus
	TrackingNumber string
	Notes          string
	Event          domain.TimelineEvent
}

// ShipmentRepository defines persistence operations for shipments.
type ShipmentRepository interface {
	// ListByStatuses returns all shipments whose status is in the given set,
	// sorted by updated_at descending.
	ListByStatuses(ctx context.Context, statuses []domain.ShipmentStatus) ([]*domain.Shipment, error)
	FindByID(ctx context.Context, id string) (*domain.Shipment, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	// ApplyStatusPatch writes the patch to the document with the given id,
	// appending the patch event to the timeline.
	ApplyStatusPatch(ctx context.Context, id string, patch StatusPatch) error
}
