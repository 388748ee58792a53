package domain

import "fmt"

// Airport is a vertex in the flight network, identified by its IATA code.
// Name and city are descriptive only; identity is the code alone.
type Airport struct {
	Code string
	Name string
	City string
}

func (a *Airport) String() string {
	return fmt.Sprintf("%s - %s (%s)", a.Code, a.Name, a.City)
}
