package api

import (
	"net/http"

	"github.com/Domenick1991/flightnet/internal/service/reservations"
	"github.com/gin-gonic/gin"
)

// NetworkHandler serves airport registration and flight construction plus
// their lookups.
type NetworkHandler struct {
	service reservations.NetworkUseCase
}

type addAirportRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

type addFlightRequest struct {
	Code        string  `json:"code"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Capacity    int     `json:"capacity"`
	BasePrice   float64 `json:"base_price"`
}

func NewNetworkHandler(service reservations.NetworkUseCase) *NetworkHandler {
	return &NetworkHandler{service: service}
}

func (h *NetworkHandler) Register(r *gin.Engine) {
	r.POST("/airports", h.addAirport)
	r.GET("/airports/:code", h.getAirport)
	r.POST("/flights", h.addFlight)
	r.GET("/flights", h.listFlights)
	r.GET("/flights/direct", h.getDirectFlight)
}

func (h *NetworkHandler) addAirport(c *gin.Context) {
	var req addAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.AddAirport(req.Code, req.Name, req.City); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, airportResponse{Code: req.Code, Name: req.Name, City: req.City})
}

func (h *NetworkHandler) getAirport(c *gin.Context) {
	airport, ok := h.service.Airport(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "airport not found"})
		return
	}
	c.JSON(http.StatusOK, toAirportResponse(airport))
}

func (h *NetworkHandler) addFlight(c *gin.Context) {
	var req addFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.AddFlight(req.Code, req.Origin, req.Destination, req.Capacity, req.BasePrice)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toFlightResponse(flight))
}

func (h *NetworkHandler) listFlights(c *gin.Context) {
	flights := h.service.AllFlights()
	resp := make([]flightResponse, 0, len(flights))
	for _, f := range flights {
		resp = append(resp, toFlightResponse(f))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NetworkHandler) getDirectFlight(c *gin.Context) {
	origin := c.Query("from")
	dest := c.Query("to")
	if origin == "" || dest == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	flight, ok := h.service.DirectFlight(origin, dest)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no direct flight"})
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}
