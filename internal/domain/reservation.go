package domain

// Reservation records a committed booking. Legs holds every flight of the
// itinerary in travel order so that cancellation can release seats on all of
// them. TotalCost is locked at booking time and never recomputed.
type Reservation struct {
	ID            string
	Legs          []*Flight
	PassengerName string
	Seats         int
	TotalCost     float64
}
