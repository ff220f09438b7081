package handler

import (
	"time"

	"github.com/skyparcel/admin-api/internal/core/domain"
	"github.com/skyparcel/admin-api/internal/core/ports"
)

func toListResponse(r *ports.ListShipmentsResult) listShipmentsResponse {
	rows := make([]shipmentRowResponse, len(r.Items))
	for i, row := range r.Items {
		rows[i] = shipmentRowResponse{
			ID:             row.ID,
			TrackingNumber: row.TrackingNumber,
			Status:         row.Status,
			StatusLabel:    row.StatusDisplay.Label,
			StatusColor:    row.StatusDisplay.Color,
			StatusIcon:     row.StatusDisplay.Icon,
			RouteSummary:   row.RouteSummary,
			TotalWeight:    row.TotalWeight,
			UpdatedAt:      row.UpdatedAt,
			UpdatedDate:    row.UpdatedDate,
			UpdatedTime:    row.UpdatedTime,
		}
	}
	return listShipmentsResponse{Data: rows, Total: r.Total}
}

func toGetResponse(s *domain.Shipment) getShipmentResponse {
	display := s.Status.Display()
	resp := getShipmentResponse{
		ID:             s.ID,
		TrackingNumber: s.TrackingNumber,
		Status:         string(s.Status),
		StatusLabel:    display.Label,
		StatusColor:    display.Color,
		StatusIcon:     display.Icon,
		Client: clientResponse{
			Name:    s.Client.Name,
			Email:   s.Client.Email,
			Phone:   s.Client.Phone,
			Company: s.Client.Company,
		},
		Packages:     toPackagesResponse(s.Packages),
		Route:        toRouteResponse(s.Route),
		RouteSummary: s.Route.RouteSummary(),
		TotalWeight:  domain.FormatWeight(s.TotalWeight()) + " kg",
		Events:       toEventsResponse(s.Events),
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.EffectiveUpdatedAt(time.Now().UTC()),
	}
	if s.Quote != nil {
		resp.Quote = &quoteResponse{
			Base:         s.Quote.Base.Float64(),
			AirFee:       s.Quote.AirFee.Float64(),
			ClearanceFee: s.Quote.ClearanceFee.Float64(),
			Insurance:    s.Quote.Insurance.Float64(),
			Total:        s.Quote.Total.Float64(),
		}
	}
	return resp
}

func toPackagesResponse(pkgs []domain.Package) []packageResponse {
	out := make([]packageResponse, len(pkgs))
	for i, p := range pkgs {
		out[i] = packageResponse{
			Description: p.Description,
			Weight:      p.Weight.Float64(),
			Dimensions: dimensionsResponse{
				LengthCm: p.Dimensions.LengthCm.Float64(),
				WidthCm:  p.Dimensions.WidthCm.Float64(),
				HeightCm: p.Dimensions.HeightCm.Float64(),
			},
			Category:       p.Category,
			CustomsContent: p.CustomsContent,
		}
	}
	return out
}

func toRouteResponse(r domain.Route) routeResponse {
	airLegs := make([]airLegResponse, len(r.AirLegs))
	for i, leg := range r.AirLegs {
		airLegs[i] = airLegResponse{
			routeLegResponse: toLegResponse(leg.RouteLeg),
			FlightNumber:     leg.FlightNumber,
			Aircraft:         leg.Aircraft,
			DepartureAirport: leg.DepartureAirport,
			ArrivalAirport:   leg.ArrivalAirport,
		}
	}
	return routeResponse{
		Pickup:   toLegResponse(r.Pickup),
		AirLegs:  airLegs,
		Delivery: toLegResponse(r.Delivery),
	}
}

func toLegResponse(l domain.RouteLeg) routeLegResponse {
	return routeLegResponse{
		Location:  l.Location,
		Facility:  l.Facility,
		Scheduled: l.Scheduled,
		Actual:    l.Actual,
	}
}

func toEventsResponse(events []domain.TimelineEvent) []timelineEventResponse {
	out := make([]timelineEventResponse, len(events))
	for i, e := range events {
		out[i] = timelineEventResponse{
			Timestamp:   e.Timestamp,
			Description: e.Description,
			Location:    e.Location,
		}
	}
	return out
}

func toUpdateResponse(r *ports.StatusUpdateResult) updateStatusResponse {
	return updateStatusResponse{
		ID:             r.ID,
		Status:         r.Status,
		PreviousStatus: r.PreviousStatus,
		StatusLabel:    domain.ShipmentStatus(r.Status).Display().Label,
		TrackingNumber: r.TrackingNumber,
		Notes:          r.Notes,
		UpdatedAt:      r.UpdatedAt,
	}
}
