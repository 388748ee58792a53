package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine with all handlers registered.
func NewRouter(network *NetworkHandler, search *SearchHandler, bookings *BookingHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID())

	network.Register(r)
	search.Register(r)
	bookings.Register(r)
	return r
}
