package events

// Event types published by the reservation engine.
const (
	TypeBookingCreated   = "booking_created"
	TypeBookingCancelled = "booking_cancelled"
)

// BookingEvent is the payload published for every booking state change.
type BookingEvent struct {
	Type          string   `json:"type"`
	ReservationID string   `json:"reservation_id"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	Passenger     string   `json:"passenger"`
	Seats         int      `json:"seats"`
	TotalCost     float64  `json:"total_cost"`
	Legs          []string `json:"legs"`
}
