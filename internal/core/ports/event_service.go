package ports

import (
	"context"
	"time"
)

// TimelineEventInput is the DTO passed from the transport layer to EventService.
type TimelineEventInput struct {
	TrackingNumber string
	Description    string
	Location       string
	Timestamp      time.Time
}

// EventService processes incoming timeline events from ops feeds.
type EventService interface {
	Process(ctx context.Context, event TimelineEventInput) error
}
