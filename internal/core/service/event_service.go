package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyparcel/admin-api/internal/core/domain"
	"github.com/skyparcel/admin-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis). Ops feeds redeliver,
// so the same timeline entry can arrive more than once.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, trackingNumber, description string, ts time.Time) (bool, error)
	Mark(ctx context.Context, trackingNumber, description string, ts time.Time) error
}

type eventService struct {
	shipmentRepo ports.ShipmentRepository
	eventRepo    ports.EventRepository
	dedup        DedupChecker
	log          zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(
	shipmentRepo ports.ShipmentRepository,
	eventRepo ports.EventRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.EventService {
	return &eventService{
		shipmentRepo: shipmentRepo,
		eventRepo:    eventRepo,
		dedup:        dedup,
		log:          log,
	}
}

// Process validates, deduplicates, and appends a single timeline event to
// the shipment it belongs to.
func (s *eventService) Process(ctx context.Context, in ports.TimelineEventInput) error {
	// Idempotency check — silently skip redeliveries.
	isDup, err := s.dedup.IsDuplicate(ctx, in.TrackingNumber, in.Description, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("tracking", in.TrackingNumber).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("tracking", in.TrackingNumber).Msg("duplicate timeline event skipped")
		return nil
	}

	// The shipment must exist before anything is appended.
	if _, err := s.shipmentRepo.FindByTrackingNumber(ctx, in.TrackingNumber); err != nil {
		return fmt.Errorf("process event: %w", err)
	}

	// Mark before writing so a crashed retry does not double-append.
	if markErr := s.dedup.Mark(ctx, in.TrackingNumber, in.Description, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("tracking", in.TrackingNumber).Msg("failed to set dedup key")
	}

	event := domain.TimelineEvent{
		Timestamp:   in.Timestamp.UTC(),
		Description: in.Description,
		Location:    in.Location,
	}
	if err := s.eventRepo.AppendTimelineEvent(ctx, in.TrackingNumber, event); err != nil {
		return fmt.Errorf("process event: append: %w", err)
	}

	s.log.Info().
		Str("tracking", in.TrackingNumber).
		Str("location", in.Location).
		Msg("timeline event appended")

	return nil
}
