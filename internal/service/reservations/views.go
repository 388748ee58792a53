package reservations

import (
	"github.com/Domenick1991/flightnet/internal/domain"
	"github.com/Domenick1991/flightnet/internal/routing"
)

// The engine mutex is the single serialization point for shared flight
// state, so nothing crossing the service boundary may alias it. Every
// public method snapshots into the value types below while still holding
// the lock; callers get a point-in-time copy they can read at leisure.

// FlightView is a point-in-time copy of one flight's state.
type FlightView struct {
	Code           string
	Origin         string
	Destination    string
	TotalCapacity  int
	BookedSeats    int
	AvailableSeats int
	BasePrice      float64
	CurrentPrice   float64
}

// AirportView is a copy of an airport's descriptive record.
type AirportView struct {
	Code string
	Name string
	City string
}

// RouteView is a snapshot of a route's legs in travel order.
type RouteView []FlightView

// ReservationView is a snapshot of a stored reservation.
type ReservationView struct {
	ID        string
	Passenger string
	Seats     int
	TotalCost float64
	Legs      RouteView
}

func snapshotFlight(f *domain.Flight) FlightView {
	return FlightView{
		Code:           f.Code,
		Origin:         f.Origin.Code,
		Destination:    f.Destination.Code,
		TotalCapacity:  f.TotalCapacity,
		BookedSeats:    f.BookedSeats,
		AvailableSeats: f.AvailableSeats(),
		BasePrice:      f.BasePrice,
		CurrentPrice:   f.CurrentPrice,
	}
}

func snapshotAirport(a *domain.Airport) AirportView {
	return AirportView{Code: a.Code, Name: a.Name, City: a.City}
}

func snapshotRoute(r routing.Route) RouteView {
	view := make(RouteView, 0, len(r))
	for _, leg := range r {
		view = append(view, snapshotFlight(leg))
	}
	return view
}

func snapshotReservation(r *domain.Reservation) ReservationView {
	return ReservationView{
		ID:        r.ID,
		Passenger: r.PassengerName,
		Seats:     r.Seats,
		TotalCost: r.TotalCost,
		Legs:      snapshotRoute(r.Legs),
	}
}
