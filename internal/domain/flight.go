package domain

import "fmt"

// Flight is a directed edge between two airports. BookedSeats and
// CurrentPrice are the only mutable fields; they must only change together,
// through operations that re-price after every occupancy change.
type Flight struct {
	Code          string
	Origin        *Airport
	Destination   *Airport
	TotalCapacity int
	BookedSeats   int
	BasePrice     float64
	CurrentPrice  float64
}

// AvailableSeats returns the number of seats not yet booked.
func (f *Flight) AvailableSeats() int {
	return f.TotalCapacity - f.BookedSeats
}

// LoadFactor returns the occupancy ratio in [0, 1], the sole input to
// dynamic pricing.
func (f *Flight) LoadFactor() float64 {
	if f.TotalCapacity == 0 {
		return 0
	}
	return float64(f.BookedSeats) / float64(f.TotalCapacity)
}

// HasSeats reports whether the flight can carry n more passengers.
func (f *Flight) HasSeats(n int) bool {
	return f.AvailableSeats() >= n
}

func (f *Flight) String() string {
	return fmt.Sprintf("%s: %s -> %s [%d/%d seats, %.2f]",
		f.Code, f.Origin.Code, f.Destination.Code, f.BookedSeats, f.TotalCapacity, f.CurrentPrice)
}
