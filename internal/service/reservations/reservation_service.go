// Package reservations implements the booking engine: candidate route
// selection, seat commitment with dynamic re-pricing, and cancellation.
package reservations

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/Domenick1991/flightnet/internal/domain"
	"github.com/Domenick1991/flightnet/internal/events"
	"github.com/Domenick1991/flightnet/internal/network"
	"github.com/Domenick1991/flightnet/internal/pricing"
	"github.com/Domenick1991/flightnet/internal/routing"
)

// defaultMaxStops bounds route discovery during booking to one intermediate
// airport. It is engine policy, not a caller preference.
const defaultMaxStops = 1

// reservationIDFormat mints ids like RES0001 from the engine's counter.
const reservationIDFormat = "RES%04d"

// BookingUseCase is the reservation lifecycle surface.
type BookingUseCase interface {
	Book(ctx context.Context, input BookInput) (ReservationView, error)
	Cancel(ctx context.Context, id string) bool
	Reservation(id string) (ReservationView, bool)
	TotalReservations() int
}

// SearchUseCase is the read-only route and seat query surface.
type SearchUseCase interface {
	FindRoutes(start, end string, maxStops int) ([]RouteView, error)
	FindCheapestAvailableRoute(origin, dest string, seats int) (RouteView, bool)
	AvailableSeats(origin, dest string) (int, error)
}

// NetworkUseCase exposes network construction and lookup through the
// engine, so every mutation and read of shared flight state funnels through
// one serialized owner.
type NetworkUseCase interface {
	AddAirport(code, name, city string) error
	AddFlight(code, origin, dest string, capacity int, basePrice float64) (FlightView, error)
	Airport(code string) (AirportView, bool)
	AllFlights() []FlightView
	DirectFlight(origin, dest string) (FlightView, bool)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookInput struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Passenger   string `json:"passenger"`
	Seats       int    `json:"seats"`
}

// Service owns the reservation store and the id counter. The network and
// finder structures carry no locks of their own; the service mutex is the
// single serialization point for all access to shared flight state.
type Service struct {
	mu     sync.Mutex
	net    *network.Network
	finder *routing.Finder

	producer           Producer
	bookingTopic       string
	notificationsTopic string
	maxStops           int

	reservations []*domain.Reservation
	nextID       int
}

type ServiceOption func(*Service)

// WithEventProducer enables booking-event publishing. Publish failures are
// logged, never surfaced to the caller.
func WithEventProducer(p Producer, bookingTopic string) ServiceOption {
	return func(s *Service) {
		s.producer = p
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) ServiceOption {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

// WithMaxStops overrides the engine's hop budget for route discovery.
func WithMaxStops(n int) ServiceOption {
	return func(s *Service) {
		if n >= 0 {
			s.maxStops = n
		}
	}
}

func NewService(net *network.Network, opts ...ServiceOption) *Service {
	s := &Service{
		net:      net,
		finder:   routing.NewFinder(net),
		maxStops: defaultMaxStops,
		nextID:   1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Book reserves seats on the cheapest available route between two airports.
// Capacity is validated on every leg before any leg is mutated, so a failed
// booking never leaves a flight partially updated.
func (s *Service) Book(ctx context.Context, input BookInput) (ReservationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Passenger == "" {
		return ReservationView{}, fmt.Errorf("%w: passenger name is empty", domain.ErrInvalidInput)
	}
	if input.Seats <= 0 {
		return ReservationView{}, fmt.Errorf("%w: seats must be positive", domain.ErrInvalidInput)
	}
	if !s.net.HasAirport(input.Origin) {
		return ReservationView{}, fmt.Errorf("%w: %s", domain.ErrUnknownAirport, input.Origin)
	}
	if !s.net.HasAirport(input.Destination) {
		return ReservationView{}, fmt.Errorf("%w: %s", domain.ErrUnknownAirport, input.Destination)
	}

	route, ok := s.cheapestRouteLocked(input.Origin, input.Destination, input.Seats)
	if !ok {
		return ReservationView{}, fmt.Errorf("%w: %d seat(s) from %s to %s",
			domain.ErrNoAvailableRoute, input.Seats, input.Origin, input.Destination)
	}

	// Cost is locked at pre-mutation prices, then seats commit and every
	// leg is re-priced.
	totalCost := route.Cost(input.Seats)
	for _, leg := range route {
		leg.BookedSeats += input.Seats
	}
	for _, leg := range route {
		pricing.Reprice(leg)
	}

	reservation := &domain.Reservation{
		ID:            fmt.Sprintf(reservationIDFormat, s.nextID),
		Legs:          route,
		PassengerName: input.Passenger,
		Seats:         input.Seats,
		TotalCost:     totalCost,
	}
	s.nextID++
	s.reservations = append(s.reservations, reservation)

	s.publish(ctx, events.TypeBookingCreated, reservation)
	return snapshotReservation(reservation), nil
}

// Cancel releases the reservation's seats on every leg, re-prices the legs
// and removes the record. Unknown ids report false with no side effects.
func (s *Service) Cancel(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reservations {
		if r.ID != id {
			continue
		}
		for _, leg := range r.Legs {
			leg.BookedSeats -= r.Seats
			pricing.Reprice(leg)
		}
		s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
		s.publish(ctx, events.TypeBookingCancelled, r)
		return true
	}
	return false
}

// FindCheapestAvailableRoute runs the booking selection read-only: it
// returns the route Book would commit to right now, without mutating
// anything or creating a reservation.
func (s *Service) FindCheapestAvailableRoute(origin, dest string, seats int) (RouteView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	route, ok := s.cheapestRouteLocked(origin, dest, seats)
	if !ok {
		return nil, false
	}
	return snapshotRoute(route), true
}

func (s *Service) cheapestRouteLocked(origin, dest string, seats int) (routing.Route, bool) {
	candidates, err := s.finder.FindRoutes(origin, dest, s.maxStops)
	if err != nil {
		return nil, false
	}

	var best routing.Route
	var bestCost float64
	for _, route := range candidates {
		if len(route) == 0 || !route.HasSeats(seats) {
			continue
		}
		cost := route.Cost(seats)
		// Strict less-than: ties keep the earlier candidate, which the
		// finder already ordered by fewest legs.
		if best == nil || cost < bestCost {
			best = route
			bestCost = cost
		}
	}
	return best, best != nil
}

// AvailableSeats reports free seats on the direct flight between two
// airports. It requires a direct edge to exist.
func (s *Service) AvailableSeats(origin, dest string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.net.DirectFlight(origin, dest)
	if !ok {
		return 0, fmt.Errorf("%w: %s to %s", domain.ErrNoDirectFlight, origin, dest)
	}
	return flight.AvailableSeats(), nil
}

func (s *Service) TotalReservations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

func (s *Service) Reservation(id string) (ReservationView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reservations {
		if r.ID == id {
			return snapshotReservation(r), true
		}
	}
	return ReservationView{}, false
}

// AddAirport registers an airport, serialized through the engine mutex.
func (s *Service) AddAirport(code, name, city string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.net.AddAirport(code, name, city)
}

// AddFlight adds a flight edge, serialized through the engine mutex.
func (s *Service) AddFlight(code, origin, dest string, capacity int, basePrice float64) (FlightView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.net.AddFlight(code, origin, dest, capacity, basePrice)
	if err != nil {
		return FlightView{}, err
	}
	return snapshotFlight(flight), nil
}

func (s *Service) Airport(code string) (AirportView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	airport, ok := s.net.Airport(code)
	if !ok {
		return AirportView{}, false
	}
	return snapshotAirport(airport), true
}

func (s *Service) AllFlights() []FlightView {
	s.mu.Lock()
	defer s.mu.Unlock()

	flights := s.net.AllFlights()
	views := make([]FlightView, 0, len(flights))
	for _, f := range flights {
		views = append(views, snapshotFlight(f))
	}
	return views
}

func (s *Service) DirectFlight(origin, dest string) (FlightView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.net.DirectFlight(origin, dest)
	if !ok {
		return FlightView{}, false
	}
	return snapshotFlight(flight), true
}

// FindRoutes exposes route discovery with a caller-chosen hop budget.
func (s *Service) FindRoutes(start, end string, maxStops int) ([]RouteView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	routes, err := s.finder.FindRoutes(start, end, maxStops)
	if err != nil {
		return nil, err
	}
	views := make([]RouteView, 0, len(routes))
	for _, route := range routes {
		views = append(views, snapshotRoute(route))
	}
	return views, nil
}

func (s *Service) publish(ctx context.Context, eventType string, r *domain.Reservation) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}

	legs := make([]string, 0, len(r.Legs))
	for _, leg := range r.Legs {
		legs = append(legs, leg.Code)
	}
	event := events.BookingEvent{
		Type:          eventType,
		ReservationID: r.ID,
		Origin:        r.Legs[0].Origin.Code,
		Destination:   r.Legs[len(r.Legs)-1].Destination.Code,
		Passenger:     r.PassengerName,
		Seats:         r.Seats,
		TotalCost:     r.TotalCost,
		Legs:          legs,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, r.ID, event); err != nil {
		log.Printf("publish %s for %s: %v", eventType, r.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, r.ID, event); err != nil {
			log.Printf("publish notification for %s: %v", r.ID, err)
		}
	}
}

var _ BookingUseCase = (*Service)(nil)
var _ SearchUseCase = (*Service)(nil)
var _ NetworkUseCase = (*Service)(nil)
