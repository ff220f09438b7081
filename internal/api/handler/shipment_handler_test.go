package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyparcel/admin-api/internal/core/domain"
	"github.com/skyparcel/admin-api/internal/core/ports"
)

// stubShipmentService implements ports.ShipmentService for handler tests.
type stubShipmentService struct {
	listInput  ports.ListShipmentsInput
	listResult *ports.ListShipmentsResult
	shipment   *domain.Shipment
	updateErr  error
	update     *ports.StatusUpdateResult
}

func (s *stubShipmentService) ListShipments(_ context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
	s.listInput = input
	if s.listResult == nil {
		return &ports.ListShipmentsResult{Items: []ports.ShipmentRow{}}, nil
	}
	return s.listResult, nil
}

func (s *stubShipmentService) GetShipment(_ context.Context, id string) (*domain.Shipment, error) {
	if s.shipment == nil || s.shipment.ID != id {
		return nil, domain.ErrShipmentNotFound
	}
	return s.shipment, nil
}

func (s *stubShipmentService) UpdateStatus(_ context.Context, input ports.UpdateStatusInput) (*ports.StatusUpdateResult, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	if s.update != nil {
		return s.update, nil
	}
	return &ports.StatusUpdateResult{ID: input.ID, Status: input.Status, UpdatedAt: time.Now()}, nil
}

func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", domain.RoleOps)
	return c, rec
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestListShipmentsHandler(t *testing.T) {
	svc := &stubShipmentService{
		listResult: &ports.ListShipmentsResult{
			Items: []ports.ShipmentRow{{
				ID:             "s1",
				TrackingNumber: "SP26123456",
				Status:         "in_transit",
				StatusDisplay:  domain.StatusInTransit.Display(),
				RouteSummary:   "Oslo, Norway → 2 flights → Nairobi, Kenya",
				TotalWeight:    "19.5 kg",
				UpdatedAt:      time.Now(),
				UpdatedDate:    "2/19/2026",
				UpdatedTime:    "3:04 PM",
			}},
			Total: 1,
		},
	}
	h := NewShipmentHandler(svc)
	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/v1/shipments?search=oslo&status=in_transit", "")

	if err := h.List(c); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.listInput.Search != "oslo" || svc.listInput.Status != "in_transit" {
		t.Errorf("filters not forwarded: %+v", svc.listInput)
	}

	var body listShipmentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Total != 1 || len(body.Data) != 1 {
		t.Fatalf("body = %+v", body)
	}
	row := body.Data[0]
	if row.StatusLabel != "In Transit" || row.StatusColor != "geekblue" || row.StatusIcon != "plane" {
		t.Errorf("status display = %+v", row)
	}
	if row.TotalWeight != "19.5 kg" {
		t.Errorf("total weight = %q", row.TotalWeight)
	}
}

func TestListShipmentsHandlerNoClaims(t *testing.T) {
	h := NewShipmentHandler(&stubShipmentService{})
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/v1/shipments", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestGetShipmentHandler(t *testing.T) {
	svc := &stubShipmentService{
		shipment: &domain.Shipment{
			ID:     "s1",
			Status: domain.StatusPaid,
			Route: domain.Route{
				Pickup:   domain.RouteLeg{Location: "Oslo, Norway"},
				Delivery: domain.RouteLeg{Location: "Nairobi, Kenya"},
			},
			Packages: []domain.Package{{Weight: 12}, {Weight: 7.5}},
			Quote:    &domain.Quote{Base: 100, Total: 180},
		},
	}
	h := NewShipmentHandler(svc)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/", "")
	c.SetPath("/v1/shipments/:id")
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	var body getShipmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.ID != "s1" || body.StatusLabel != "Paid" {
		t.Errorf("body = %+v", body)
	}
	if body.RouteSummary != "Oslo, Norway → Ground → Nairobi, Kenya" {
		t.Errorf("route summary = %q", body.RouteSummary)
	}
	if body.TotalWeight != "19.5 kg" {
		t.Errorf("total weight = %q", body.TotalWeight)
	}
	if body.Quote == nil || body.Quote.Total != 180 {
		t.Errorf("quote = %+v", body.Quote)
	}
}

func TestGetShipmentHandlerNotFound(t *testing.T) {
	h := NewShipmentHandler(&stubShipmentService{})
	e := newTestEcho()
	c, _ := newTestContext(e, http.MethodGet, "/", "")
	c.SetPath("/v1/shipments/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound, got %v", err)
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	svc := &stubShipmentService{
		update: &ports.StatusUpdateResult{
			ID:             "s1",
			Status:         "in_transit",
			PreviousStatus: "paid",
			TrackingNumber: "SP26123456",
			UpdatedAt:      time.Now(),
		},
	}
	h := NewShipmentHandler(svc)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPatch, "/", `{"status":"in_transit","notes":"loaded"}`)
	c.SetPath("/v1/shipments/:id/status")
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	var body updateStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Status != "in_transit" || body.PreviousStatus != "paid" {
		t.Errorf("body = %+v", body)
	}
	if body.TrackingNumber != "SP26123456" {
		t.Errorf("tracking number = %q", body.TrackingNumber)
	}
	if body.StatusLabel != "In Transit" {
		t.Errorf("status label = %q", body.StatusLabel)
	}
}

func TestUpdateStatusHandlerRejectsBadStatus(t *testing.T) {
	h := NewShipmentHandler(&stubShipmentService{})
	e := newTestEcho()
	c, _ := newTestContext(e, http.MethodPatch, "/", `{"status":"lost"}`)
	c.SetPath("/v1/shipments/:id/status")
	c.SetParamNames("id")
	c.SetParamValues("s1")

	err := h.UpdateStatus(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestUpdateStatusHandlerMissingStatus(t *testing.T) {
	h := NewShipmentHandler(&stubShipmentService{})
	e := newTestEcho()
	c, _ := newTestContext(e, http.MethodPatch, "/", `{"notes":"no status"}`)
	c.SetPath("/v1/shipments/:id/status")
	c.SetParamNames("id")
	c.SetParamValues("s1")

	err := h.UpdateStatus(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if !strings.Contains(fmt.Sprintf("%v", he.Message), "status is required") {
		t.Errorf("message = %v", he.Message)
	}
}

func TestUpdateStatusHandlerServiceError(t *testing.T) {
	svc := &stubShipmentService{updateErr: fmt.Errorf("update status: %w (from quote_ready to in_transit)", domain.ErrInvalidTransition)}
	h := NewShipmentHandler(svc)
	e := newTestEcho()
	c, _ := newTestContext(e, http.MethodPatch, "/", `{"status":"in_transit"}`)
	c.SetPath("/v1/shipments/:id/status")
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := h.UpdateStatus(c); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition to propagate, got %v", err)
	}
}
