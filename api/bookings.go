package api

import (
	"net/http"

	"github.com/Domenick1991/flightnet/internal/service/reservations"
	"github.com/gin-gonic/gin"
)

// BookingHandler serves the reservation lifecycle.
type BookingHandler struct {
	service reservations.BookingUseCase
}

func NewBookingHandler(service reservations.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(r *gin.Engine) {
	r.POST("/bookings", h.create)
	r.GET("/bookings/stats", h.stats)
	r.GET("/bookings/:id", h.get)
	r.DELETE("/bookings/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req reservations.BookInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.service.Book(c.Request.Context(), req)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toReservationResponse(reservation))
}

func (h *BookingHandler) get(c *gin.Context) {
	reservation, ok := h.service.Reservation(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id := c.Param("id")
	if !h.service.Cancel(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "cancelled"})
}

func (h *BookingHandler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"total_reservations": h.service.TotalReservations()})
}
