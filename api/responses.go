package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flightnet/internal/domain"
	"github.com/Domenick1991/flightnet/internal/service/reservations"
)

type airportResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

type flightResponse struct {
	Code           string  `json:"code"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	TotalCapacity  int     `json:"total_capacity"`
	BookedSeats    int     `json:"booked_seats"`
	AvailableSeats int     `json:"available_seats"`
	BasePrice      float64 `json:"base_price"`
	CurrentPrice   float64 `json:"current_price"`
}

type routeResponse struct {
	Legs []flightResponse `json:"legs"`
}

type reservationResponse struct {
	ID        string   `json:"id"`
	Passenger string   `json:"passenger"`
	Seats     int      `json:"seats"`
	TotalCost float64  `json:"total_cost"`
	Legs      []string `json:"legs"`
}

// The converters take the service's snapshot views, never live domain
// records, so nothing serialized here can race the booking engine.

func toAirportResponse(a reservations.AirportView) airportResponse {
	return airportResponse{Code: a.Code, Name: a.Name, City: a.City}
}

func toFlightResponse(f reservations.FlightView) flightResponse {
	return flightResponse{
		Code:           f.Code,
		Origin:         f.Origin,
		Destination:    f.Destination,
		TotalCapacity:  f.TotalCapacity,
		BookedSeats:    f.BookedSeats,
		AvailableSeats: f.AvailableSeats,
		BasePrice:      f.BasePrice,
		CurrentPrice:   f.CurrentPrice,
	}
}

func toRouteResponse(r reservations.RouteView) routeResponse {
	legs := make([]flightResponse, 0, len(r))
	for _, leg := range r {
		legs = append(legs, toFlightResponse(leg))
	}
	return routeResponse{Legs: legs}
}

func toReservationResponse(r reservations.ReservationView) reservationResponse {
	legs := make([]string, 0, len(r.Legs))
	for _, leg := range r.Legs {
		legs = append(legs, leg.Code)
	}
	return reservationResponse{
		ID:        r.ID,
		Passenger: r.Passenger,
		Seats:     r.Seats,
		TotalCost: r.TotalCost,
		Legs:      legs,
	}
}

// errorStatus maps the domain error taxonomy onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateAirport):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownAirport):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoDirectFlight):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoAvailableRoute):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
