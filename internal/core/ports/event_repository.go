package ports

import (
	"context"

	"github.com/skyparcel/admin-api/internal/core/domain"
)

// EventRepository appends timeline entries to shipment documents.
type EventRepository interface {
	// AppendTimelineEvent pushes the event onto the shipment's events array
	// and bumps updated_at on the server clock.
	AppendTimelineEvent(ctx context.Context, trackingNumber string, event domain.TimelineEvent) error
}
