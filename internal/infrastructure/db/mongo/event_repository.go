package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skyparcel/admin-api/internal/core/domain"
	"github.com/skyparcel/admin-api/internal/core/ports"
)

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	db *mongo.Database
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{db: db}
}

// AppendTimelineEvent pushes the event onto the shipment's events array and
// bumps updated_at on the server clock.
func (r *EventRepository) AppendTimelineEvent(ctx context.Context, trackingNumber string, event domain.TimelineEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	entry := bson.M{
		"timestamp":   event.Timestamp.UTC(),
		"description": event.Description,
	}
	if event.Location != "" {
		entry["location"] = event.Location
	}

	update := bson.M{
		"$push":        bson.M{"events": entry},
		"$currentDate": bson.M{"updated_at": true},
	}

	res, err := r.db.Collection(collectionShipments).UpdateOne(ctx, bson.M{"tracking_number": trackingNumber}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}
