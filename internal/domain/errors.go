package domain

import "errors"

var (
	// ErrInvalidInput covers empty identifiers, non-positive capacities,
	// prices or seat counts, and negative hop budgets.
	ErrInvalidInput = errors.New("flightnet: invalid input")

	// ErrDuplicateAirport is returned when registering an airport code twice.
	ErrDuplicateAirport = errors.New("flightnet: airport already registered")

	// ErrUnknownAirport is returned when an airport code was never registered.
	ErrUnknownAirport = errors.New("flightnet: unknown airport")

	// ErrNoAvailableRoute is returned when no candidate route has enough
	// seats on every leg.
	ErrNoAvailableRoute = errors.New("flightnet: no available route")

	// ErrNoDirectFlight is returned by direct-flight-only queries when no
	// edge connects the two airports.
	ErrNoDirectFlight = errors.New("flightnet: no direct flight")
)
