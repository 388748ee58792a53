// Package network owns the airport registry and the flight graph. It is the
// single authority on which airports exist and which flights leave them.
// Adjacency lists keep insertion order; route search and reporting rely on
// that order for deterministic results.
package network

import (
	"fmt"

	"github.com/Domenick1991/flightnet/internal/domain"
)

type Network struct {
	airports map[string]*domain.Airport
	order    []string // airport codes in registration order
	edges    map[string][]*domain.Flight
}

func New() *Network {
	return &Network{
		airports: make(map[string]*domain.Airport),
		edges:    make(map[string][]*domain.Flight),
	}
}

// AddAirport registers an airport and creates its empty outgoing-edge bucket.
func (n *Network) AddAirport(code, name, city string) error {
	if code == "" {
		return fmt.Errorf("%w: airport code is empty", domain.ErrInvalidInput)
	}
	if _, ok := n.airports[code]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateAirport, code)
	}
	n.airports[code] = &domain.Airport{Code: code, Name: name, City: city}
	n.order = append(n.order, code)
	n.edges[code] = nil
	return nil
}

// AddFlight appends a directed edge to the origin's outgoing list. A new
// flight starts with zero booked seats and its current price equal to the
// base price. On any error the network is left unchanged.
func (n *Network) AddFlight(code, originCode, destCode string, capacity int, basePrice float64) (*domain.Flight, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: flight code is empty", domain.ErrInvalidInput)
	}
	origin, ok := n.airports[originCode]
	if !ok {
		return nil, fmt.Errorf("%w: origin %s", domain.ErrUnknownAirport, originCode)
	}
	dest, ok := n.airports[destCode]
	if !ok {
		return nil, fmt.Errorf("%w: destination %s", domain.ErrUnknownAirport, destCode)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrInvalidInput)
	}
	if basePrice <= 0 {
		return nil, fmt.Errorf("%w: base price must be positive", domain.ErrInvalidInput)
	}

	flight := &domain.Flight{
		Code:          code,
		Origin:        origin,
		Destination:   dest,
		TotalCapacity: capacity,
		BasePrice:     basePrice,
		CurrentPrice:  basePrice,
	}
	n.edges[originCode] = append(n.edges[originCode], flight)
	return flight, nil
}

// Outgoing returns the flights departing code in insertion order. The
// returned slice is the network's own; callers must not modify it.
func (n *Network) Outgoing(code string) []*domain.Flight {
	return n.edges[code]
}

// DirectFlight returns the first outgoing flight of origin whose
// destination matches destCode.
func (n *Network) DirectFlight(originCode, destCode string) (*domain.Flight, bool) {
	for _, f := range n.edges[originCode] {
		if f.Destination.Code == destCode {
			return f, true
		}
	}
	return nil, false
}

// AllFlights returns every flight in the network, grouped by airport
// registration order and then by edge insertion order, so output is stable
// within a process run.
func (n *Network) AllFlights() []*domain.Flight {
	var all []*domain.Flight
	for _, code := range n.order {
		all = append(all, n.edges[code]...)
	}
	return all
}

func (n *Network) HasAirport(code string) bool {
	_, ok := n.airports[code]
	return ok
}

func (n *Network) Airport(code string) (*domain.Airport, bool) {
	a, ok := n.airports[code]
	return a, ok
}
