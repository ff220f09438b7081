package domain

import (
	"fmt"
	"strconv"
	"time"
)

// StatusDisplay is the presentation mapping for a status: the badge label,
// colour tag, and icon name rendered by the console.
type StatusDisplay struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var statusDisplays = map[ShipmentStatus]StatusDisplay{
	StatusQuoteReady:     {Label: "Quote Ready", Color: "gold", Icon: "file-text"},
	StatusPaid:           {Label: "Paid", Color: "blue", Icon: "credit-card"},
	StatusInTransit:      {Label: "In Transit", Color: "geekblue", Icon: "plane"},
	StatusOutForDelivery: {Label: "Out for Delivery", Color: "orange", Icon: "truck"},
	StatusDelivered:      {Label: "Delivered", Color: "green", Icon: "check-circle"},
}

// Display returns the presentation mapping for a status. Unrecognised
// statuses get a generic badge carrying the raw value as its label.
func (s ShipmentStatus) Display() StatusDisplay {
	if d, ok := statusDisplays[s]; ok {
		return d
	}
	return StatusDisplay{Label: string(s), Color: "default", Icon: "question-circle"}
}

// RouteSummary renders the one-line route description shown in the list
// view: pickup, the air portion ("<n> flights", or "Ground" when the move
// has no flight segments), and delivery.
func (r Route) RouteSummary() string {
	mid := "Ground"
	if n := len(r.AirLegs); n > 0 {
		mid = fmt.Sprintf("%d flights", n)
	}
	return fmt.Sprintf("%s → %s → %s", r.Pickup.Location, mid, r.Delivery.Location)
}

// TotalWeight sums the package weights in kilograms. Absent or unparseable
// weights contribute zero (FlexFloat decodes them as 0).
func (s *Shipment) TotalWeight() float64 {
	var total float64
	for _, p := range s.Packages {
		total += p.Weight.Float64()
	}
	return total
}

// FormatWeight renders a weight to one decimal place, e.g. "19.5".
func FormatWeight(kg float64) string {
	return strconv.FormatFloat(kg, 'f', 1, 64)
}

// FormatDate renders the short date used in table cells, e.g. "2/19/2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// FormatTime renders the short clock time used in table cells, e.g. "3:04 PM".
func FormatTime(t time.Time) string {
	return t.Format("3:04 PM")
}
