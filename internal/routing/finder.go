// Package routing discovers routes over the flight network with a bounded
// number of intermediate stops.
package routing

import (
	"fmt"
	"sort"

	"github.com/Domenick1991/flightnet/internal/domain"
	"github.com/Domenick1991/flightnet/internal/network"
)

// Route is an ordered sequence of flights forming consecutive legs from a
// start airport to an end airport.
type Route []*domain.Flight

// Cost returns the route's total price for the given seat count at current
// leg prices.
func (r Route) Cost(seats int) float64 {
	var total float64
	for _, leg := range r {
		total += leg.CurrentPrice * float64(seats)
	}
	return total
}

// HasSeats reports whether every leg can carry the given seat count. One
// itinerary carries the same passengers on all legs, so all legs must fit.
func (r Route) HasSeats(seats int) bool {
	for _, leg := range r {
		if !leg.HasSeats(seats) {
			return false
		}
	}
	return true
}

type Finder struct {
	net *network.Network
}

func NewFinder(net *network.Network) *Finder {
	return &Finder{net: net}
}

// searchNode is one frontier item of the breadth-first traversal.
type searchNode struct {
	airport string
	path    Route
	legs    int
}

// FindRoutes returns every simple path from start to end using at most
// maxStops intermediate airports, i.e. maxStops+1 legs. Results are sorted
// ascending by leg count; ties keep discovery order. Unknown endpoints give
// an empty result. The traversal never mutates the network.
func (f *Finder) FindRoutes(start, end string, maxStops int) ([]Route, error) {
	if maxStops < 0 {
		return nil, fmt.Errorf("%w: maxStops cannot be negative", domain.ErrInvalidInput)
	}
	if !f.net.HasAirport(start) || !f.net.HasAirport(end) {
		return nil, nil
	}

	maxLegs := maxStops + 1
	var routes []Route

	queue := []searchNode{{airport: start}}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		// A path that reaches the destination is complete; it is never
		// extended, even if a continuation through it could exist.
		if node.airport == end {
			routes = append(routes, node.path)
			continue
		}
		if node.legs >= maxLegs {
			continue
		}

		for _, flight := range f.net.Outgoing(node.airport) {
			next := flight.Destination.Code
			if visitsAirport(node.path, next) {
				continue
			}
			path := make(Route, len(node.path), len(node.path)+1)
			copy(path, node.path)
			path = append(path, flight)
			queue = append(queue, searchNode{airport: next, path: path, legs: node.legs + 1})
		}
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return len(routes[i]) < len(routes[j])
	})
	return routes, nil
}

// visitsAirport reports whether code already appears as the origin or
// destination of any leg in the path. Checking both ends rejects any cycle,
// including a return to the start.
func visitsAirport(path Route, code string) bool {
	for _, leg := range path {
		if leg.Origin.Code == code || leg.Destination.Code == code {
			return true
		}
	}
	return false
}
