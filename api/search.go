package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/flightnet/internal/service/reservations"
	"github.com/gin-gonic/gin"
)

// SearchHandler serves route discovery and seat availability queries.
type SearchHandler struct {
	service reservations.SearchUseCase
}

func NewSearchHandler(service reservations.SearchUseCase) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) Register(r *gin.Engine) {
	r.GET("/routes", h.findRoutes)
	r.GET("/routes/cheapest", h.findCheapest)
	r.GET("/flights/seats", h.availableSeats)
}

func (h *SearchHandler) findRoutes(c *gin.Context) {
	origin := c.Query("from")
	dest := c.Query("to")
	if origin == "" || dest == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	maxStops := 1
	if raw := c.Query("max_stops"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_stops"})
			return
		}
		maxStops = parsed
	}

	routes, err := h.service.FindRoutes(origin, dest, maxStops)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	resp := make([]routeResponse, 0, len(routes))
	for _, r := range routes {
		resp = append(resp, toRouteResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) findCheapest(c *gin.Context) {
	origin := c.Query("from")
	dest := c.Query("to")
	seats, err := strconv.Atoi(c.DefaultQuery("seats", "1"))
	if err != nil || seats <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seats"})
		return
	}
	if origin == "" || dest == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	route, ok := h.service.FindCheapestAvailableRoute(origin, dest, seats)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no available route"})
		return
	}
	c.JSON(http.StatusOK, toRouteResponse(route))
}

func (h *SearchHandler) availableSeats(c *gin.Context) {
	origin := c.Query("from")
	dest := c.Query("to")
	if origin == "" || dest == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	seats, err := h.service.AvailableSeats(origin, dest)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": origin, "to": dest, "available_seats": seats})
}
