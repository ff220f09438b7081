package handler

import "time"

type timelineEventRequest struct {
	TrackingNumber string    `json:"tracking_number" validate:"required"`
	Description    string    `json:"description"     validate:"required"`
	Location       string    `json:"location"`
	Timestamp      time.Time `json:"timestamp"       validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
