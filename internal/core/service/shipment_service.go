package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyparcel/admin-api/internal/core/domain"
	"github.com/skyparcel/admin-api/internal/core/ports"
)

type ShipmentService struct {
	repo   ports.ShipmentRepository
	logger zerolog.Logger
}

func NewShipmentService(repo ports.ShipmentRepository, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, logger: logger}
}

// ListShipments runs the console's working-list query: every shipment in an
// active status (delivered excluded), newest update first. The search text
// and status filters are applied in memory over the fetched set, matching
// how the console filters without a round trip per keystroke.
func (s *ShipmentService) ListShipments(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
	shipments, err := s.repo.ListByStatuses(ctx, domain.ActiveStatuses)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list shipments")
		return nil, fmt.Errorf("list shipments: %w", err)
	}

	now := time.Now().UTC()
	rows := make([]ports.ShipmentRow, 0, len(shipments))
	for _, sh := range shipments {
		if !matchesFilters(sh, input) {
			continue
		}
		rows = append(rows, toRow(sh, now))
	}

	return &ports.ListShipmentsResult{Items: rows, Total: len(rows)}, nil
}

// GetShipment returns the full aggregate for the detail modal.
func (s *ShipmentService) GetShipment(ctx context.Context, id string) (*domain.Shipment, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment %s: %w", id, err)
	}
	return sh, nil
}

// UpdateStatus applies a status transition. The transition is checked
// against the allowed-transition table before anything is written; the UI's
// button gating is not the only enforcement point. A tracking number is
// minted exactly once, on the first move into in_transit.
func (s *ShipmentService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*ports.StatusUpdateResult, error) {
	next := domain.ShipmentStatus(input.Status)
	if !next.Known() {
		return nil, fmt.Errorf("update status: %w: %q", domain.ErrUnknownStatus, input.Status)
	}

	sh, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if !sh.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("update status: %w (from %s to %s)", domain.ErrInvalidTransition, sh.Status, next)
	}

	now := time.Now().UTC()
	patch := ports.StatusPatch{
		Status: next,
		Notes:  strings.TrimSpace(input.Notes),
		Event: domain.TimelineEvent{
			Timestamp:   now,
			Description: "Status changed to " + next.Display().Label,
		},
	}
	if next == domain.StatusInTransit && sh.TrackingNumber == "" {
		patch.TrackingNumber = generateTrackingNumber(now)
	}

	if err := s.repo.ApplyStatusPatch(ctx, input.ID, patch); err != nil {
		s.logger.Error().Err(err).Str("shipment_id", input.ID).Str("status", input.Status).Msg("failed to apply status patch")
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info().
		Str("shipment_id", input.ID).
		Str("from", string(sh.Status)).
		Str("to", string(next)).
		Str("tracking_number", patch.TrackingNumber).
		Msg("shipment status updated")

	// UpdatedAt approximates the server-clock stamp the database applied;
	// the next full fetch replaces it with the authoritative value.
	return &ports.StatusUpdateResult{
		ID:             input.ID,
		Status:         string(next),
		PreviousStatus: string(sh.Status),
		TrackingNumber: patch.TrackingNumber,
		Notes:          patch.Notes,
		UpdatedAt:      now,
	}, nil
}

func matchesFilters(sh *domain.Shipment, input ports.ListShipmentsInput) bool {
	if input.Status != "" && input.Status != "all" && string(sh.Status) != input.Status {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(input.Search))
	if q == "" {
		return true
	}
	for _, field := range []string{
		sh.TrackingNumber,
		sh.Route.Pickup.Location,
		sh.Route.Delivery.Location,
		sh.ID,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func toRow(sh *domain.Shipment, now time.Time) ports.ShipmentRow {
	updated := sh.EffectiveUpdatedAt(now)
	return ports.ShipmentRow{
		ID:             sh.ID,
		TrackingNumber: sh.TrackingNumber,
		Status:         string(sh.Status),
		StatusDisplay:  sh.Status.Display(),
		RouteSummary:   sh.Route.RouteSummary(),
		TotalWeight:    domain.FormatWeight(sh.TotalWeight()) + " kg",
		UpdatedAt:      updated,
		UpdatedDate:    domain.FormatDate(updated),
		UpdatedTime:    domain.FormatTime(updated),
	}
}

// generateTrackingNumber returns a tracking number in the format
// SP<two-digit year><six-digit random>, e.g. SP26384172.
func generateTrackingNumber(now time.Time) string {
	return fmt.Sprintf("SP%02d%06d", now.Year()%100, randomSixDigits(now))
}

func randomSixDigits(now time.Time) int {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from the clock
		return 100000 + int(now.UnixNano()%900000)
	}
	return 100000 + int(binary.BigEndian.Uint32(b)%900000)
}
