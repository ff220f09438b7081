package domain

import (
	"errors"
	"time"
)

// ShipmentStatus represents the lifecycle state of a shipment. It is stored
// as a plain string, so documents written by older tooling may carry values
// outside the known set; display code must tolerate them.
type ShipmentStatus string

const (
	StatusQuoteReady     ShipmentStatus = "quote_ready"
	StatusPaid           ShipmentStatus = "paid"
	StatusInTransit      ShipmentStatus = "in_transit"
	StatusOutForDelivery ShipmentStatus = "out_for_delivery"
	StatusDelivered      ShipmentStatus = "delivered"
)

// validTransitions defines the allowed state machine transitions. Every
// status write is checked against this table before it reaches the database.
var validTransitions = map[ShipmentStatus][]ShipmentStatus{
	StatusQuoteReady:     {StatusPaid},
	StatusPaid:           {StatusInTransit},
	StatusInTransit:      {StatusOutForDelivery, StatusDelivered},
	StatusOutForDelivery: {StatusDelivered},
}

// ActiveStatuses are the statuses shown on the ops console by default.
// Delivered shipments are excluded from the working list.
var ActiveStatuses = []ShipmentStatus{
	StatusQuoteReady,
	StatusPaid,
	StatusInTransit,
	StatusOutForDelivery,
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrShipmentNotFound = errors.New("shipment not found")
var ErrUnknownStatus = errors.New("unknown shipment status")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Known reports whether the status is one of the recognised lifecycle states.
func (s ShipmentStatus) Known() bool {
	switch s {
	case StatusQuoteReady, StatusPaid, StatusInTransit, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// Client is the customer the shipment belongs to.
type Client struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Company string `json:"company,omitempty" bson:"company,omitempty"`
}

// Dimensions represents the physical size of a package.
type Dimensions struct {
	LengthCm FlexFloat `json:"length_cm" bson:"length_cm"`
	WidthCm  FlexFloat `json:"width_cm" bson:"width_cm"`
	HeightCm FlexFloat `json:"height_cm" bson:"height_cm"`
}

// Package is a single piece in a shipment. Weight is a FlexFloat because
// legacy documents stored weights as strings.
type Package struct {
	Description    string     `json:"description" bson:"description"`
	Weight         FlexFloat  `json:"weight" bson:"weight"`
	Dimensions     Dimensions `json:"dimensions" bson:"dimensions"`
	Category       string     `json:"category,omitempty" bson:"category,omitempty"`
	CustomsContent string     `json:"customs_content,omitempty" bson:"customs_content,omitempty"`
}

// RouteLeg is a ground leg of the route (pickup or final delivery).
type RouteLeg struct {
	Location  string     `json:"location" bson:"location"`
	Facility  string     `json:"facility,omitempty" bson:"facility,omitempty"`
	Scheduled *time.Time `json:"scheduled,omitempty" bson:"scheduled,omitempty"`
	Actual    *time.Time `json:"actual,omitempty" bson:"actual,omitempty"`
}

// AirLeg is a flight segment between two airports.
type AirLeg struct {
	RouteLeg         `bson:",inline"`
	FlightNumber     string `json:"flight_number" bson:"flight_number"`
	Aircraft         string `json:"aircraft,omitempty" bson:"aircraft,omitempty"`
	DepartureAirport string `json:"departure_airport" bson:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport" bson:"arrival_airport"`
}

// Route is the full pickup → air → delivery path of a shipment. AirLegs may
// be empty for ground-only moves.
type Route struct {
	Pickup   RouteLeg `json:"pickup" bson:"pickup"`
	AirLegs  []AirLeg `json:"air_legs" bson:"air_legs"`
	Delivery RouteLeg `json:"delivery" bson:"delivery"`
}

// Quote is the price breakdown presented to the client. Amounts are
// FlexFloat: some historical documents carry pre-formatted strings.
type Quote struct {
	Base         FlexFloat `json:"base" bson:"base"`
	AirFee       FlexFloat `json:"air_fee" bson:"air_fee"`
	ClearanceFee FlexFloat `json:"clearance_fee" bson:"clearance_fee"`
	Insurance    FlexFloat `json:"insurance" bson:"insurance"`
	Total        FlexFloat `json:"total" bson:"total"`
}

// TimelineEvent is a single entry in a shipment's history feed.
type TimelineEvent struct {
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
	Description string    `json:"description" bson:"description"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
}

// Shipment is the core aggregate root.
type Shipment struct {
	ID             string          `json:"id" bson:"_id,omitempty"`
	TrackingNumber string          `json:"tracking_number,omitempty" bson:"tracking_number,omitempty"`
	Status         ShipmentStatus  `json:"status" bson:"status"`
	Client         Client          `json:"client" bson:"client"`
	Packages       []Package       `json:"packages" bson:"packages"`
	Route          Route           `json:"route" bson:"route"`
	Quote          *Quote          `json:"quote,omitempty" bson:"quote,omitempty"`
	Events         []TimelineEvent `json:"events" bson:"events"`
	Notes          string          `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" bson:"updated_at"`
}

// EffectiveUpdatedAt returns updated_at, falling back to created_at and
// finally to now for documents that predate either field.
func (s *Shipment) EffectiveUpdatedAt(now time.Time) time.Time {
	if !s.UpdatedAt.IsZero() {
		return s.UpdatedAt
	}
	if !s.CreatedAt.IsZero() {
		return s.CreatedAt
	}
	return now
}
