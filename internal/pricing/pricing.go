// Package pricing maps a flight's load factor to a price multiplier.
//
// Tiers (lower bounds inclusive):
//
//	load >= 0.8          -> 1.5
//	0.5 <= load < 0.8    -> 1.2
//	load < 0.5           -> 1.0
//
// The mapping is stateless and recomputed in full after every occupancy
// change, so repeated booking and cancellation cycles cannot drift.
package pricing

import "github.com/Domenick1991/flightnet/internal/domain"

const (
	highLoadThreshold = 0.8
	midLoadThreshold  = 0.5

	highLoadMultiplier = 1.5
	midLoadMultiplier  = 1.2
)

// Multiplier returns the price multiplier for a load factor.
func Multiplier(loadFactor float64) float64 {
	switch {
	case loadFactor >= highLoadThreshold:
		return highLoadMultiplier
	case loadFactor >= midLoadThreshold:
		return midLoadMultiplier
	default:
		return 1.0
	}
}

// Reprice recomputes a flight's current price from its occupancy. Must be
// called after every change to BookedSeats.
func Reprice(f *domain.Flight) {
	f.CurrentPrice = f.BasePrice * Multiplier(f.LoadFactor())
}
