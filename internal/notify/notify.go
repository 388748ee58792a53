package notify

import (
	"context"
	"log"

	"github.com/Domenick1991/flightnet/internal/events"
)

// Notifier turns booking events into passenger notifications. It currently
// logs them; a real delivery channel would slot in here.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Notify(ctx context.Context, event events.BookingEvent) error {
	log.Printf("notify %s: %s %s (%s -> %s, %d seat(s), %.2f)",
		event.Passenger, event.Type, event.ReservationID,
		event.Origin, event.Destination, event.Seats, event.TotalCost)
	return nil
}
