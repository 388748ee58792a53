package routing

import (
	"testing"

	"github.com/Domenick1991/flightnet/internal/domain"
	"github.com/Domenick1991/flightnet/internal/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildNetwork wires a small Europe-US network: ATH reaches JFK directly and
// through the LHR, CDG and FRA hubs.
func buildNetwork(t *testing.T) *network.Network {
	t.Helper()
	n := network.New()

	airports := []struct{ code, name, city string }{
		{"ATH", "Athens International", "Athens"},
		{"LHR", "London Heathrow", "London"},
		{"CDG", "Charles de Gaulle", "Paris"},
		{"FRA", "Frankfurt Airport", "Frankfurt"},
		{"JFK", "John F Kennedy", "New York"},
		{"BOS", "Boston Logan", "Boston"},
	}
	for _, a := range airports {
		require.NoError(t, n.AddAirport(a.code, a.name, a.city))
	}

	flights := []struct {
		code, origin, dest string
		capacity           int
		price              float64
	}{
		{"A3501", "ATH", "LHR", 180, 220},
		{"A3502", "ATH", "CDG", 180, 240},
		{"A3503", "ATH", "FRA", 160, 200},
		{"BA177", "LHR", "JFK", 250, 380},
		{"AF007", "CDG", "JFK", 280, 400},
		{"LH400", "FRA", "JFK", 300, 370},
		{"A3600", "ATH", "JFK", 200, 450},
		{"AA100", "JFK", "BOS", 150, 120},
	}
	for _, f := range flights {
		_, err := n.AddFlight(f.code, f.origin, f.dest, f.capacity, f.price)
		require.NoError(t, err)
	}
	return n
}

func routeCodes(r Route) []string {
	codes := make([]string, 0, len(r))
	for _, leg := range r {
		codes = append(codes, leg.Code)
	}
	return codes
}

func TestFindRoutesDirectOnly(t *testing.T) {
	finder := NewFinder(buildNetwork(t))

	routes, err := finder.FindRoutes("ATH", "JFK", 0)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"A3600"}, routeCodes(routes[0]))
}

func TestFindRoutesOneStop(t *testing.T) {
	finder := NewFinder(buildNetwork(t))

	routes, err := finder.FindRoutes("ATH", "JFK", 1)
	require.NoError(t, err)
	require.Len(t, routes, 4)

	// Fewest legs first, then edge insertion order of the traversal.
	assert.Equal(t, []string{"A3600"}, routeCodes(routes[0]))
	assert.Equal(t, []string{"A3501", "BA177"}, routeCodes(routes[1]))
	assert.Equal(t, []string{"A3502", "AF007"}, routeCodes(routes[2]))
	assert.Equal(t, []string{"A3503", "LH400"}, routeCodes(routes[3]))
}

func TestFindRoutesRespectsLegBudget(t *testing.T) {
	finder := NewFinder(buildNetwork(t))

	routes, err := finder.FindRoutes("ATH", "BOS", 1)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"A3600", "AA100"}, routeCodes(routes[0]))

	routes, err = finder.FindRoutes("ATH", "BOS", 2)
	require.NoError(t, err)
	require.Len(t, routes, 4)
	for _, r := range routes {
		assert.LessOrEqual(t, len(r), 3)
	}
}

func TestFindRoutesAvoidsCycles(t *testing.T) {
	n := network.New()
	for _, code := range []string{"AAA", "BBB", "CCC"} {
		require.NoError(t, n.AddAirport(code, code+" Airport", code))
	}
	// Triangle with a back edge to the start.
	for _, f := range []struct{ code, origin, dest string }{
		{"F1", "AAA", "BBB"},
		{"F2", "BBB", "AAA"},
		{"F3", "BBB", "CCC"},
		{"F4", "CCC", "BBB"},
	} {
		_, err := n.AddFlight(f.code, f.origin, f.dest, 100, 100)
		require.NoError(t, err)
	}

	routes, err := NewFinder(n).FindRoutes("AAA", "CCC", 5)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"F1", "F3"}, routeCodes(routes[0]))

	for _, r := range routes {
		seen := map[string]bool{}
		for _, leg := range r {
			assert.False(t, seen[leg.Destination.Code], "airport revisited")
			seen[leg.Origin.Code] = true
			seen[leg.Destination.Code] = true
		}
	}
}

func TestFindRoutesUnknownEndpoints(t *testing.T) {
	finder := NewFinder(buildNetwork(t))

	routes, err := finder.FindRoutes("XXX", "JFK", 1)
	require.NoError(t, err)
	assert.Empty(t, routes)

	routes, err = finder.FindRoutes("ATH", "XXX", 1)
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestFindRoutesNegativeStops(t *testing.T) {
	finder := NewFinder(buildNetwork(t))

	_, err := finder.FindRoutes("ATH", "JFK", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFindRoutesNoRouteWithinBudget(t *testing.T) {
	finder := NewFinder(buildNetwork(t))

	// BOS has no outgoing flights at all.
	routes, err := finder.FindRoutes("BOS", "ATH", 3)
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestRouteCostAndSeats(t *testing.T) {
	finder := NewFinder(buildNetwork(t))

	routes, err := finder.FindRoutes("ATH", "JFK", 1)
	require.NoError(t, err)
	require.NotEmpty(t, routes)

	connecting := routes[1] // A3501 + BA177
	assert.InDelta(t, 6000, connecting.Cost(10), 1e-9)
	assert.True(t, connecting.HasSeats(180))
	assert.False(t, connecting.HasSeats(181))
}
