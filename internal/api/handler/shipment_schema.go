package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=quote_ready paid in_transit out_for_delivery delivered"`
	Notes  string `json:"notes"`
}

// --- Response types ---
// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// service changes.

// shipmentRowResponse is one table row in the console's working list, with
// every derived display string precomputed.
type shipmentRowResponse struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	StatusColor    string    `json:"status_color"`
	StatusIcon     string    `json:"status_icon"`
	RouteSummary   string    `json:"route_summary"`
	TotalWeight    string    `json:"total_weight"`
	UpdatedAt      time.Time `json:"updated_at"`
	UpdatedDate    string    `json:"updated_date"`
	UpdatedTime    string    `json:"updated_time"`
}

type listShipmentsResponse struct {
	Data  []shipmentRowResponse `json:"data"`
	Total int                   `json:"total"`
}

type clientResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
}

type dimensionsResponse struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

type packageResponse struct {
	Description    string             `json:"description"`
	Weight         float64            `json:"weight"`
	Dimensions     dimensionsResponse `json:"dimensions"`
	Category       string             `json:"category,omitempty"`
	CustomsContent string             `json:"customs_content,omitempty"`
}

type routeLegResponse struct {
	Location  string     `json:"location"`
	Facility  string     `json:"facility,omitempty"`
	Scheduled *time.Time `json:"scheduled,omitempty"`
	Actual    *time.Time `json:"actual,omitempty"`
}

type airLegResponse struct {
	routeLegResponse
	FlightNumber     string `json:"flight_number"`
	Aircraft         string `json:"aircraft,omitempty"`
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
}

type routeResponse struct {
	Pickup   routeLegResponse `json:"pickup"`
	AirLegs  []airLegResponse `json:"air_legs"`
	Delivery routeLegResponse `json:"delivery"`
}

type quoteResponse struct {
	Base         float64 `json:"base"`
	AirFee       float64 `json:"air_fee"`
	ClearanceFee float64 `json:"clearance_fee"`
	Insurance    float64 `json:"insurance"`
	Total        float64 `json:"total"`
}

type timelineEventResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
}

// getShipmentResponse is the full detail view backing the console's modal.
// Quote is omitted entirely when the shipment has none.
type getShipmentResponse struct {
	ID             string                  `json:"id"`
	TrackingNumber string                  `json:"tracking_number,omitempty"`
	Status         string                  `json:"status"`
	StatusLabel    string                  `json:"status_label"`
	StatusColor    string                  `json:"status_color"`
	StatusIcon     string                  `json:"status_icon"`
	Client         clientResponse          `json:"client"`
	Packages       []packageResponse       `json:"packages"`
	Route          routeResponse           `json:"route"`
	RouteSummary   string                  `json:"route_summary"`
	TotalWeight    string                  `json:"total_weight"`
	Quote          *quoteResponse          `json:"quote,omitempty"`
	Events         []timelineEventResponse `json:"events"`
	Notes          string                  `json:"notes,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// updateStatusResponse echoes the applied patch so the console can merge it
// into local state without a refetch.
type updateStatusResponse struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status"`
	StatusLabel    string    `json:"status_label"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}
